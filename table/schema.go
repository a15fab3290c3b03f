package table

import (
	"fmt"
	"reflect"
)

// FieldType tags the expected runtime type of a record field. Modeled
// on mjm918-tur/pkg/schema/schema.go's ConstraintType enum-with-String
// pattern.
type FieldType int

const (
	TypeInt FieldType = iota
	TypeFloat
	TypeString
	TypeBool
)

func (ft FieldType) String() string {
	switch ft {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

func (ft FieldType) kind() reflect.Kind {
	switch ft {
	case TypeInt:
		return reflect.Int
	case TypeFloat:
		return reflect.Float64
	case TypeString:
		return reflect.String
	case TypeBool:
		return reflect.Bool
	default:
		return reflect.Invalid
	}
}

// Schema maps a record field name to its expected type.
type Schema map[string]FieldType

// Record is a keyed mapping of field name to value, matching
// original_source/table.py's dict-shaped records.
type Record map[string]any

// validate checks every field present in record against the schema.
// Fields absent from record are not required to be present — matching
// original_source/table.py's validate_record, which only iterates
// record.items().
func (s Schema) validate(record Record) error {
	for field, value := range record {
		expected, ok := s[field]
		if !ok {
			return fmt.Errorf("table: field %q is not in schema: %w", field, ErrSchemaViolation)
		}
		got := reflect.TypeOf(value)
		if got == nil || got.Kind() != expected.kind() {
			return fmt.Errorf("table: field %q expects %s, got %v: %w", field, expected, got, ErrSchemaViolation)
		}
	}
	return nil
}
