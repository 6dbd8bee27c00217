package debugs

import (
	"reflect"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/typeof/decodes"
	"go.starlark.net/starlark"
)

var errorType = reflect.TypeFor[error]()

// typedElems are element kinds whose slices classify as typed arrays.
var typedElems = map[reflect.Kind]bool{
	reflect.Int8:    true,
	reflect.Uint8:   true,
	reflect.Int16:   true,
	reflect.Uint16:  true,
	reflect.Int32:   true,
	reflect.Uint32:  true,
	reflect.Int64:   true,
	reflect.Uint64:  true,
	reflect.Float32: true,
	reflect.Float64: true,
}

// toStarlarkValue converts v to a native starlark value when the conversion keeps its type tag.
// Other values are wrapped in decodes.GoValue so type_of sees the Go value.
func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case starlark.Value:
		return v
	case []byte:
		// converts back to []byte
		return starlark.Bytes(v)
	}

	value := reflect.ValueOf(v)
	t := value.Type()
	if t.Implements(errorType) {
		return decodes.GoValue{Value: v}
	}

	switch t.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		if t.Name() != "" || typedElems[t.Elem().Kind()] {
			break
		}
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		if t.Name() != "" {
			break
		}
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			if err := d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			); err != nil {
				// unhashable key
				return decodes.GoValue{Value: v}
			}
		}
		return d

	case reflect.Struct:
		if t.Name() != "" {
			break
		}
		d := starlark.NewDict(t.NumField())
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Func:
		if !value.IsNil() {
			return starlarkutil.MakeFunc("", v)
		}

	}

	// pointers stay boxed, named types keep their names
	return decodes.GoValue{Value: v}
}
