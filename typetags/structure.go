package typetags

import (
	"math/big"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"
)

// coarse kinds, the result of a plain kind switch
const (
	kindUndefined = "undefined"
	kindBoolean   = "boolean"
	kindNumber    = "number"
	kindString    = "string"
	kindSymbol    = "symbol"
	kindFunction  = "function"
	kindObject    = "object"
)

// structure is what the runtime can tell about a value without looking inside it.
type structure struct {
	kind string
	// tag is the structural tag, independent of declared names
	tag string
	// name is the declared type name, falling back to tag for unnamed types
	name       string
	null       bool
	typedArray bool
}

var (
	nullStructure = structure{
		kind: kindObject,
		tag:  "Null",
		name: "Null",
		null: true,
	}
	undefinedStructure = structure{
		kind: kindUndefined,
		tag:  "Undefined",
		name: "Undefined",
	}
	symbolStructure = structure{
		kind: kindSymbol,
		tag:  "Symbol",
		name: "Symbol",
	}
)

var (
	errorType     = reflect.TypeFor[error]()
	timeType      = reflect.TypeFor[time.Time]()
	regexpType    = reflect.TypeFor[regexp.Regexp]()
	symbolType    = reflect.TypeFor[Symbol]()
	undefinedType = reflect.TypeFor[undefined]()
	clampedType   = reflect.TypeFor[Uint8ClampedArray]()
	bigIntType    = reflect.TypeFor[big.Int]()
	bigFloatType  = reflect.TypeFor[big.Float]()
	bigRatType    = reflect.TypeFor[big.Rat]()
)

var typedArrayTags = map[reflect.Kind]string{
	reflect.Int8:    "Int8Array",
	reflect.Uint8:   "Uint8Array",
	reflect.Int16:   "Int16Array",
	reflect.Uint16:  "Uint16Array",
	reflect.Int32:   "Int32Array",
	reflect.Uint32:  "Uint32Array",
	reflect.Int64:   "BigInt64Array",
	reflect.Uint64:  "BigUint64Array",
	reflect.Float32: "Float32Array",
	reflect.Float64: "Float64Array",
}

type cacheKey struct {
	t     reflect.Type
	boxed bool
}

var structureCache = sync.Map{} // map[cacheKey]structure

func inspect(value any) structure {
	v := reflect.ValueOf(value)
	boxed := false
	// addresses of pointers already walked, for pointers that reach themselves
	var seen map[uintptr]bool
	for {
		switch v.Kind() {
		case reflect.Invalid:
			return nullStructure
		case reflect.Interface:
			if v.IsNil() {
				return nullStructure
			}
			v = v.Elem()
			continue
		case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
			// nil slices and maps are usable empty values, not null
			if v.IsNil() {
				return nullStructure
			}
		}
		t := v.Type()
		if t.Implements(errorType) {
			return structure{
				kind: kindObject,
				tag:  "Error",
				name: errorName(t),
			}
		}
		if t.Kind() != reflect.Pointer {
			key := cacheKey{
				t:     t,
				boxed: boxed,
			}
			if cached, ok := structureCache.Load(key); ok {
				return cached.(structure)
			}
			ret := describe(t, boxed)
			structureCache.Store(key, ret)
			return ret
		}
		if t.Elem().Kind() == reflect.Pointer {
			if seen == nil {
				seen = make(map[uintptr]bool)
			}
			if seen[v.Pointer()] {
				return objectStructure("Object", nameOr(t, "Object"))
			}
			seen[v.Pointer()] = true
		}
		v = v.Elem()
		boxed = true
	}
}

// describe works on non-pointer types, boxed is set when the value was reached through pointers.
func describe(t reflect.Type, boxed bool) structure {
	switch t {
	case undefinedType:
		return undefinedStructure
	case symbolType:
		return symbolStructure
	case timeType:
		return objectStructure("Date", "Date")
	case regexpType:
		return objectStructure("RegExp", "RegExp")
	case bigIntType, bigFloatType, bigRatType:
		// arbitrary precision numbers are only usable through pointers, they are not boxed
		return primitiveStructure(kindNumber, "Number")
	case clampedType:
		return structure{
			kind:       kindObject,
			tag:        "Uint8ClampedArray",
			name:       "Uint8ClampedArray",
			typedArray: true,
		}
	}

	switch t.Kind() {

	case reflect.Bool:
		if boxed {
			return objectStructure("Boolean", "Boolean")
		}
		return primitiveStructure(kindBoolean, "Boolean")

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		if boxed {
			return objectStructure("Number", "Number")
		}
		return primitiveStructure(kindNumber, "Number")

	case reflect.String:
		if boxed {
			return objectStructure("String", "String")
		}
		return primitiveStructure(kindString, "String")

	case reflect.Func:
		return primitiveStructure(kindFunction, "Function")

	case reflect.Slice, reflect.Array:
		if tag, ok := typedArrayTags[t.Elem().Kind()]; ok {
			return structure{
				kind:       kindObject,
				tag:        tag,
				name:       nameOr(t, tag),
				typedArray: true,
			}
		}
		return objectStructure("Array", nameOr(t, "Array"))

	case reflect.Map, reflect.Struct:
		return objectStructure("Object", nameOr(t, "Object"))

	case reflect.UnsafePointer:
		return objectStructure("UnsafePointer", "UnsafePointer")

	}

	name := nameOr(t, kindName(t.Kind()))
	return objectStructure(name, name)
}

func primitiveStructure(kind string, name string) structure {
	return structure{
		kind: kind,
		tag:  name,
		name: name,
	}
}

func objectStructure(tag string, name string) structure {
	return structure{
		kind: kindObject,
		tag:  tag,
		name: name,
	}
}

func nameOr(t reflect.Type, fallback string) string {
	if name := t.Name(); name != "" {
		// generic instantiations carry their type arguments in the name
		if i := strings.IndexByte(name, '['); i > 0 {
			return name[:i]
		}
		return name
	}
	return fallback
}

// errorName reports the errors and fmt constructors as the base Error.
func errorName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.PkgPath() {
	case "", "errors", "fmt":
		return "Error"
	}
	return nameOr(t, "Error")
}

func kindName(kind reflect.Kind) string {
	str := kind.String()
	return strings.ToUpper(str[:1]) + str[1:]
}
