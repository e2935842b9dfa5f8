package logic

import (
	"fmt"
	"reflect"
	"strings"
)

// MapAccessor reads values from rows held as plain maps, which is how rows
// decoded from config files arrive
func MapAccessor(row map[string]any, dataIndex string) (any, bool) {
	v, ok := row[dataIndex]
	return v, ok
}

// FieldAccessor returns an Accessor that resolves dataIndex against struct
// fields or string-keyed maps using reflection. For structs, a field tagged
// `table:"<dataIndex>"` wins, then an exact field name, then a
// case-insensitive field name, so dataIndex "name" reads field Name.
func FieldAccessor[R any]() Accessor[R] {
	return func(row R, dataIndex string) (any, bool) {
		return lookup(reflect.ValueOf(row), dataIndex)
	}
}

func lookup(v reflect.Value, name string) (any, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		keyType := v.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(name).Convert(keyType))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true

	case reflect.Struct:
		index, ok := fieldIndex(v.Type(), name)
		if !ok {
			return nil, false
		}
		fv, err := v.FieldByIndexErr(index)
		if err != nil {
			// nil embedded pointer on the path
			return nil, false
		}
		return fv.Interface(), true
	}

	return nil, false
}

func fieldIndex(t reflect.Type, name string) ([]int, bool) {
	var exact, folded []int
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		if tag, ok := f.Tag.Lookup("table"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName == name {
				return f.Index, true
			}
		}
		if exact == nil && f.Name == name {
			exact = f.Index
		}
		if folded == nil && strings.EqualFold(f.Name, name) {
			folded = f.Index
		}
	}
	if exact != nil {
		return exact, true
	}
	if folded != nil {
		return folded, true
	}
	return nil, false
}

// StructuralKey identifies a row by its printed contents. Rows that print the
// same are the same row. Used when the caller supplies no KeyFunc.
func StructuralKey[R any](row R) string {
	return fmt.Sprintf("%#v", row)
}

// FieldKey returns a KeyFunc that identifies rows by the value under dataIndex.
// Rows missing the field fall back to StructuralKey.
func FieldKey[R any](accessor Accessor[R], dataIndex string) KeyFunc[R] {
	return func(row R) string {
		if v, ok := accessor(row, dataIndex); ok && v != nil {
			return fmt.Sprint(v)
		}
		return StructuralKey(row)
	}
}
