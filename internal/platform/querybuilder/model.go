package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// InsertModel builds an INSERT from the db-tagged fields of a struct. A field
// tagged `db:"col,omitempty"` is left out when zero so the column default
// applies.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

type modelColumn struct {
	name      string
	index     int
	omitEmpty bool
}

// modelColumns caches parsed tags per struct type.
var modelColumns sync.Map // reflect.Type -> []modelColumn

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	columns := columnsOf(value.Type())
	cols := make([]string, 0, len(columns))
	vals := make([]any, 0, len(columns))
	for _, c := range columns {
		field := value.Field(c.index)
		if c.omitEmpty && field.IsZero() {
			continue
		}
		cols = append(cols, c.name)
		vals = append(vals, field.Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", value.Type())
	}
	return cols, vals, nil
}

func columnsOf(typ reflect.Type) []modelColumn {
	if cached, ok := modelColumns.Load(typ); ok {
		return cached.([]modelColumn)
	}

	columns := make([]modelColumn, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		columns = append(columns, modelColumn{
			name:      name,
			index:     i,
			omitEmpty: strings.TrimSpace(opts) == "omitempty",
		})
	}

	actual, _ := modelColumns.LoadOrStore(typ, columns)
	return actual.([]modelColumn)
}
