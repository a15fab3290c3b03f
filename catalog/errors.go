package catalog

import "errors"

var (
	// ErrDatabaseExists is returned by CreateDatabase when the name is
	// already taken.
	ErrDatabaseExists = errors.New("catalog: database already exists")

	// ErrDatabaseNotFound is returned when a named database does not exist.
	ErrDatabaseNotFound = errors.New("catalog: database not found")

	// ErrTableExists is returned by CreateTable when the name is already
	// taken within that database.
	ErrTableExists = errors.New("catalog: table already exists")

	// ErrTableNotFound is returned when a named table does not exist.
	ErrTableNotFound = errors.New("catalog: table not found")

	// ErrTableKeyMismatch is returned by GetTable[K] when the stored
	// table's search-key type does not match the requested K.
	ErrTableKeyMismatch = errors.New("catalog: table's key type does not match requested type")

	// ErrUnsupportedKeyKind is wrapped in the error Dump (and so
	// SaveDatabase) returns when a table's search-key type is neither int
	// nor string; Restore reports an unknown key kind as ErrSnapshotIO.
	ErrUnsupportedKeyKind = errors.New("catalog: unsupported search key type")

	// ErrSnapshotIO wraps filesystem and encoding failures during
	// SaveDatabase/LoadDatabase (spec.md §7, "Snapshot I/O error").
	ErrSnapshotIO = errors.New("catalog: snapshot I/O error")
)
