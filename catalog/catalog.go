package catalog

import (
	"fmt"

	"bplusdb/bptree"
	"bplusdb/table"
)

// database is one named database: an ordered set of tables. The
// explicit order slice mirrors original_source/db_manager.py's reliance
// on Python dict insertion order for list_databases/list_tables.
type database struct {
	tables map[string]any
	order  []string
}

// Catalog is a two-level db_name -> table_name -> Table mapping
// (spec.md §4.10), grounded on original_source/db_manager.py's
// DatabaseManager and the Go shape of
// BibekPathak-shark-db/internal/catalog/catalog.go.
//
// Tables are stored type-erased (as `any`) because each table picks its
// own search-key type K; CreateTable/GetTable are free generic
// functions rather than generic methods, since Go methods cannot carry
// extra type parameters.
type Catalog struct {
	dbs   map[string]*database
	order []string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{dbs: make(map[string]*database)}
}

// CreateDatabase registers a new, empty database.
func (c *Catalog) CreateDatabase(name string) error {
	if _, ok := c.dbs[name]; ok {
		return fmt.Errorf("catalog: database %q: %w", name, ErrDatabaseExists)
	}
	c.dbs[name] = &database{tables: make(map[string]any)}
	c.order = append(c.order, name)
	return nil
}

// DeleteDatabase removes a database and every table it holds.
func (c *Catalog) DeleteDatabase(name string) error {
	if _, ok := c.dbs[name]; !ok {
		return fmt.Errorf("catalog: database %q: %w", name, ErrDatabaseNotFound)
	}
	delete(c.dbs, name)
	c.order = removeString(c.order, name)
	return nil
}

// ListDatabases returns database names in creation order.
func (c *Catalog) ListDatabases() []string {
	return append([]string{}, c.order...)
}

// ListTables returns table names within db in creation order.
func (c *Catalog) ListTables(db string) ([]string, error) {
	d, ok := c.dbs[db]
	if !ok {
		return nil, fmt.Errorf("catalog: database %q: %w", db, ErrDatabaseNotFound)
	}
	return append([]string{}, d.order...), nil
}

// DeleteTable removes one table from a database.
func (c *Catalog) DeleteTable(db, name string) error {
	d, ok := c.dbs[db]
	if !ok {
		return fmt.Errorf("catalog: database %q: %w", db, ErrDatabaseNotFound)
	}
	if _, ok := d.tables[name]; !ok {
		return fmt.Errorf("catalog: table %q: %w", name, ErrTableNotFound)
	}
	delete(d.tables, name)
	d.order = removeString(d.order, name)
	return nil
}

// CreateTable creates table `name` in database `db` with search keys of
// type K, and returns it for immediate use (spec.md §6:
// Catalog.create_table). order defaults to 8 when 0 is passed.
func CreateTable[K bptree.Ordered](c *Catalog, db, name string, schema table.Schema, order int, searchKey string) (*table.Table[K], error) {
	d, ok := c.dbs[db]
	if !ok {
		return nil, fmt.Errorf("catalog: database %q: %w", db, ErrDatabaseNotFound)
	}
	if _, ok := d.tables[name]; ok {
		return nil, fmt.Errorf("catalog: table %q: %w", name, ErrTableExists)
	}
	tbl, err := table.New[K](name, schema, order, searchKey)
	if err != nil {
		return nil, err
	}
	d.tables[name] = tbl
	d.order = append(d.order, name)
	return tbl, nil
}

// GetTable looks up a table and asserts its search-key type is K.
func GetTable[K bptree.Ordered](c *Catalog, db, name string) (*table.Table[K], error) {
	d, ok := c.dbs[db]
	if !ok {
		return nil, fmt.Errorf("catalog: database %q: %w", db, ErrDatabaseNotFound)
	}
	raw, ok := d.tables[name]
	if !ok {
		return nil, fmt.Errorf("catalog: table %q: %w", name, ErrTableNotFound)
	}
	tbl, ok := raw.(*table.Table[K])
	if !ok {
		return nil, fmt.Errorf("catalog: table %q: %w", name, ErrTableKeyMismatch)
	}
	return tbl, nil
}

func removeString(s []string, v string) []string {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
