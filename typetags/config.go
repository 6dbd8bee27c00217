package typetags

import "reflect"

type Config struct {
	// SpecificType reports declared type names instead of general categories
	SpecificType bool `json:"specific_type"`
	// OriginalCase keeps the capitalization of type names
	OriginalCase bool `json:"original_case"`
}

// Patch sets the non-nil fields only.
type Patch struct {
	SpecificType *bool
	OriginalCase *bool
}

var (
	specificTypeKeys = []string{"specificType", "specific_type"}
	originalCaseKeys = []string{"originalCase", "original_case"}
)

// apply copies boolean fields of partial to config, anything else is ignored.
// partial may be a Config, a Patch, any struct with the same field names, a
// string-keyed map, or pointers to those.
func (c *Config) apply(partial any) {
	v := reflect.ValueOf(partial)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {

	case reflect.Struct:
		setBool(&c.SpecificType, structField(v, "SpecificType"))
		setBool(&c.OriginalCase, structField(v, "OriginalCase"))

	case reflect.Map:
		keyType := v.Type().Key()
		if keyType.Kind() != reflect.String {
			return
		}
		lookup := func(key string) reflect.Value {
			return v.MapIndex(reflect.ValueOf(key).Convert(keyType))
		}
		for _, key := range specificTypeKeys {
			setBool(&c.SpecificType, lookup(key))
		}
		for _, key := range originalCaseKeys {
			setBool(&c.OriginalCase, lookup(key))
		}

	}
}

// structField returns the invalid Value when name is missing or promoted through a nil embedded pointer.
func structField(v reflect.Value, name string) reflect.Value {
	field, ok := v.Type().FieldByName(name)
	if !ok {
		return reflect.Value{}
	}
	ret, err := v.FieldByIndexErr(field.Index)
	if err != nil {
		return reflect.Value{}
	}
	return ret
}

func setBool(target *bool, v reflect.Value) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Bool {
		return
	}
	*target = v.Bool()
}
