package table

import (
	"encoding/gob"
	"fmt"

	"bplusdb/bptree"
)

func init() {
	// Record values are stored as `any`; gob needs every concrete type
	// that can appear in a field registered up front. These cover every
	// FieldType this package declares.
	gob.Register(int(0))
	gob.Register(float64(0))
	gob.Register("")
	gob.Register(false)
}

// Table is a schema-validated, search-key-indexed view over one
// bptree.Tree (spec.md §4.9). K is the search key's type — every
// concrete table picks one ordered type for its key (e.g. int ids or
// string ids), matching original_source/table.py where search_key
// names a single field.
type Table[K bptree.Ordered] struct {
	Name        string
	FieldSchema Schema
	Order       int
	SearchKey   string
	Data        *bptree.Tree[K, Record]
}

// New constructs a table over a fresh, empty tree. order defaults to 8
// per spec.md §6 if 0 is passed.
func New[K bptree.Ordered](name string, schema Schema, order int, searchKey string) (*Table[K], error) {
	if order == 0 {
		order = 8
	}
	tree, err := bptree.New[K, Record](order)
	if err != nil {
		return nil, err
	}
	return &Table[K]{
		Name:        name,
		FieldSchema: schema,
		Order:       order,
		SearchKey:   searchKey,
		Data:        tree,
	}, nil
}

func (t *Table[K]) validateRecord(record Record) error {
	if record == nil {
		return fmt.Errorf("table: record must be a mapping: %w", ErrSchemaViolation)
	}
	return t.FieldSchema.validate(record)
}

// searchKeyOf extracts and type-asserts the search-key field from a
// record. A type mismatch (e.g. a string where an int-keyed table
// expects an int) is reported as a schema violation.
func (t *Table[K]) searchKeyOf(record Record) (K, error) {
	var zero K
	if t.SearchKey == "" {
		return zero, ErrSearchKeyRequired
	}
	raw, ok := record[t.SearchKey]
	if !ok {
		return zero, fmt.Errorf("table: record missing search key %q: %w", t.SearchKey, ErrSchemaViolation)
	}
	k, ok := raw.(K)
	if !ok {
		return zero, fmt.Errorf("table: search key %q has wrong type: %w", t.SearchKey, ErrSchemaViolation)
	}
	return k, nil
}

// Insert validates the record, rejects duplicate search keys, then
// inserts (spec.md §4.9).
func (t *Table[K]) Insert(record Record) error {
	if err := t.validateRecord(record); err != nil {
		return err
	}
	key, err := t.searchKeyOf(record)
	if err != nil {
		return err
	}
	if _, found := t.Data.Search(key); found {
		return fmt.Errorf("table: key %v already present: %w", key, ErrDuplicateKey)
	}
	t.Data.Insert(key, record)
	return nil
}

// Get returns the record stored under id.
func (t *Table[K]) Get(id K) (Record, bool) {
	return t.Data.Search(id)
}

// GetAll returns every record in ascending search-key order.
func (t *Table[K]) GetAll() []bptree.Pair[K, Record] {
	return t.Data.GetAll()
}

// RangeQuery returns every record with lo <= search key <= hi.
func (t *Table[K]) RangeQuery(lo, hi K) []bptree.Pair[K, Record] {
	return t.Data.RangeQuery(lo, hi)
}

// Update validates the new record, requires the search key to be
// unchanged and the id to already exist, then replaces the payload
// in place (spec.md §4.9).
func (t *Table[K]) Update(id K, newRecord Record) error {
	if err := t.validateRecord(newRecord); err != nil {
		return err
	}
	newKey, err := t.searchKeyOf(newRecord)
	if err != nil {
		return err
	}
	if newKey != id {
		return ErrSearchKeyImmutable
	}
	if !t.Data.Update(id, newRecord) {
		return fmt.Errorf("table: key %v: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the record stored under id.
func (t *Table[K]) Delete(id K) error {
	if !t.Data.Delete(id) {
		return fmt.Errorf("table: key %v: %w", id, ErrNotFound)
	}
	return nil
}
