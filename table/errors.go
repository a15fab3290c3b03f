package table

import "errors"

// Sentinel errors for Table operations (spec.md §7), following the
// errors.New + fmt.Errorf("%w", ...) sentinel pattern used throughout
// mjm918-tur/pkg/schema/schema.go.
var (
	// ErrSchemaViolation is returned when a record is not a mapping, or
	// a field's runtime type does not match its declared schema type.
	ErrSchemaViolation = errors.New("table: schema violation")

	// ErrDuplicateKey is returned by Insert when the search key already
	// exists in the table.
	ErrDuplicateKey = errors.New("table: duplicate key")

	// ErrNotFound is returned by Update/Delete when the search key is
	// absent. Get reports absence through its bool result instead.
	ErrNotFound = errors.New("table: record not found")

	// ErrSearchKeyImmutable is returned by Update when the new record's
	// search-key field differs from the id being updated.
	ErrSearchKeyImmutable = errors.New("table: search key cannot be modified during update")

	// ErrSearchKeyRequired is returned by any operation that needs the
	// search key field when the table was constructed without one
	// (spec.md §6: "search_key is required by Table semantics even
	// though it may be unset in raw construction").
	ErrSearchKeyRequired = errors.New("table: search key is required for this operation")
)
