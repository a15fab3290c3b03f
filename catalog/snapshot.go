package catalog

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bplusdb/table"
)

// formatVersion is bumped whenever tableBlob/dbBlob/envelope's shape
// changes. Restore can switch on it for migration (Design Note
// "Snapshot format versioning").
const formatVersion = 1

// snapExtension is appended to save paths that don't already carry it
// (spec.md §6: "add a .snap-style extension if absent").
const snapExtension = ".snap"

// keyKindInt / keyKindString are the only search-key types this
// catalog's snapshot format can serialize: encodeTableBlob and
// decodeTableBlob handle only *table.Table[int] and *table.Table[string].
const (
	keyKindInt    = "int"
	keyKindString = "string"
)

type tableBlob struct {
	KeyKind  string
	GobBytes []byte
}

type dbBlob struct {
	Order  []string
	Tables map[string]tableBlob
}

type envelope struct {
	FormatVersion int
	Order         []string
	Databases     map[string]dbBlob
}

// Dump serializes the entire catalog to a self-describing byte stream.
// Grounded on BibekPathak-shark-db/internal/catalog/catalog.go +
// internal/pager/pager.go's gob round trip of tree blobs.
func (c *Catalog) Dump() ([]byte, error) {
	env := envelope{
		FormatVersion: formatVersion,
		Order:         append([]string{}, c.order...),
		Databases:     make(map[string]dbBlob, len(c.dbs)),
	}
	for dbName, d := range c.dbs {
		tables := make(map[string]tableBlob, len(d.tables))
		for tblName, raw := range d.tables {
			blob, err := encodeTableBlob(raw)
			if err != nil {
				return nil, fmt.Errorf("catalog: encoding table %q.%q: %w: %w", dbName, tblName, ErrSnapshotIO, err)
			}
			tables[tblName] = blob
		}
		env.Databases[dbName] = dbBlob{Order: append([]string{}, d.order...), Tables: tables}
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(env); err != nil {
		return nil, fmt.Errorf("catalog: %w: %v", ErrSnapshotIO, err)
	}
	return buf.Bytes(), nil
}

// Restore replaces the catalog's contents from a byte stream produced
// by Dump. The in-memory catalog is left unchanged if decoding fails
// (spec.md §7).
func (c *Catalog) Restore(data []byte) error {
	var env envelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return fmt.Errorf("catalog: malformed snapshot: %w: %v", ErrSnapshotIO, err)
	}
	if env.FormatVersion != formatVersion {
		return fmt.Errorf("catalog: unsupported snapshot format version %d: %w", env.FormatVersion, ErrSnapshotIO)
	}

	dbs := make(map[string]*database, len(env.Databases))
	for dbName, db := range env.Databases {
		d := &database{tables: make(map[string]any, len(db.Tables)), order: append([]string{}, db.Order...)}
		for tblName, blob := range db.Tables {
			tbl, err := decodeTableBlob(blob)
			if err != nil {
				return fmt.Errorf("catalog: decoding table %q.%q: %w: %v", dbName, tblName, ErrSnapshotIO, err)
			}
			d.tables[tblName] = tbl
		}
		dbs[dbName] = d
	}

	c.dbs = dbs
	c.order = append([]string{}, env.Order...)
	return nil
}

func encodeTableBlob(raw any) (tableBlob, error) {
	var buf bytes.Buffer
	switch tbl := raw.(type) {
	case *table.Table[int]:
		if err := gob.NewEncoder(&buf).Encode(tbl); err != nil {
			return tableBlob{}, err
		}
		return tableBlob{KeyKind: keyKindInt, GobBytes: buf.Bytes()}, nil
	case *table.Table[string]:
		if err := gob.NewEncoder(&buf).Encode(tbl); err != nil {
			return tableBlob{}, err
		}
		return tableBlob{KeyKind: keyKindString, GobBytes: buf.Bytes()}, nil
	default:
		return tableBlob{}, ErrUnsupportedKeyKind
	}
}

func decodeTableBlob(blob tableBlob) (any, error) {
	switch blob.KeyKind {
	case keyKindInt:
		tbl := &table.Table[int]{}
		if err := gob.NewDecoder(bytes.NewReader(blob.GobBytes)).Decode(tbl); err != nil {
			return nil, err
		}
		return tbl, nil
	case keyKindString:
		tbl := &table.Table[string]{}
		if err := gob.NewDecoder(bytes.NewReader(blob.GobBytes)).Decode(tbl); err != nil {
			return nil, err
		}
		return tbl, nil
	default:
		return nil, ErrUnsupportedKeyKind
	}
}

// SaveDatabase dumps the catalog to path, creating missing parent
// directories and normalizing the file extension. Grounded on
// original_source/db_manager.py's save_database.
func (c *Catalog) SaveDatabase(path string) error {
	path = normalizeSnapPath(path)
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("catalog: creating directory %q: %w: %v", dir, ErrSnapshotIO, err)
		}
	}

	data, err := c.Dump()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("catalog: writing %q: %w: %v", path, ErrSnapshotIO, err)
	}
	return nil
}

// LoadDatabase replaces the catalog's contents with a snapshot loaded
// from path.
func (c *Catalog) LoadDatabase(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("catalog: %q not found: %w", path, ErrSnapshotIO)
		}
		return fmt.Errorf("catalog: reading %q: %w: %v", path, ErrSnapshotIO, err)
	}
	return c.Restore(data)
}

func normalizeSnapPath(path string) string {
	return NormalizeSnapshotPath(path)
}

// NormalizeSnapshotPath applies the same .snap-extension normalization
// SaveDatabase uses, so a caller can predict the path it wrote to
// before calling LoadDatabase.
func NormalizeSnapshotPath(path string) string {
	path = filepath.Clean(path)
	if !strings.HasSuffix(path, snapExtension) {
		path += snapExtension
	}
	return path
}
