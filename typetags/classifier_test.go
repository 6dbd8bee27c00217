package typetags

import (
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"regexp"
	"strings"
	"testing"
	"time"
	"unsafe"
)

type CustomClass struct {
	Name string
}

type customError struct{}

func (customError) Error() string {
	return "custom"
}

type Samples []float32

type Headers map[string]string

func TestLiteralScenarios(t *testing.T) {
	c := NewClassifier(Config{})
	yes := Bool(true)
	no := Bool(false)

	check := func(got string, expected string) {
		t.Helper()
		if got != expected {
			t.Fatalf("expected %q, got %q", expected, got)
		}
	}

	check(c.TypeOf(Undefined, nil, nil), "undefined")
	check(c.TypeOf(nil, nil, nil), "null")
	check(c.TypeOf([]any{}, nil, nil), "array")
	check(c.TypeOf([]any{}, yes, yes), "Array")
	check(c.TypeOf([]int8{}, nil, nil), "typedarray")
	check(c.TypeOf([]int8{}, yes, nil), "int8array")
	check(c.TypeOf([]int8{}, yes, yes), "Int8Array")
	check(c.TypeOf(CustomClass{}, nil, nil), "object")
	check(c.TypeOf(&CustomClass{}, yes, nil), "customclass")
	check(c.TypeOf(&CustomClass{}, yes, yes), "CustomClass")
	check(c.TypeOf(Bool(true), no, yes), "Object")
	check(c.TypeOf(Bool(true), yes, nil), "boolean")
}

func TestPrimitives(t *testing.T) {
	c := NewClassifier(Config{})
	yes := Bool(true)
	no := Bool(false)

	type celsius float64
	values := []struct {
		value    any
		lower    string
		original string
	}{
		{Undefined, "undefined", "Undefined"},
		{nil, "null", "Null"},
		{true, "boolean", "Boolean"},
		{false, "boolean", "Boolean"},
		{-1, "number", "Number"},
		{0, "number", "Number"},
		{uint8(1), "number", "Number"},
		{3.14, "number", "Number"},
		{complex(1, 2), "number", "Number"},
		{celsius(36.6), "number", "Number"},
		{time.Second, "number", "Number"},
		{big.NewInt(42), "number", "Number"},
		{new(big.Rat), "number", "Number"},
		{"", "string", "String"},
		{"string", "string", "String"},
		{NewSymbol("foo"), "symbol", "Symbol"},
		{Symbol{}, "symbol", "Symbol"},
		{func() {}, "function", "Function"},
		{fmt.Sprintf, "function", "Function"},
	}

	for _, v := range values {
		t.Run(fmt.Sprintf("%s/%T", v.lower, v.value), func(t *testing.T) {
			for _, specific := range []*bool{nil, no, yes} {
				if got := c.TypeOf(v.value, specific, nil); got != v.lower {
					t.Fatalf("got %q", got)
				}
				if got := c.TypeOf(v.value, specific, yes); got != v.original {
					t.Fatalf("got %q", got)
				}
			}
		})
	}
}

func TestReferenceTypes(t *testing.T) {
	c := NewClassifier(Config{})
	yes := Bool(true)
	no := Bool(false)

	values := []struct {
		value       any
		general     string
		specific    string
		generalCase string
		specialCase string
	}{
		{[]any{}, "array", "array", "Array", "Array"},
		{[3]string{}, "array", "array", "Array", "Array"},
		{[]int(nil), "array", "array", "Array", "Array"},
		{map[string]any{}, "object", "object", "Object", "Object"},
		{map[int]bool(nil), "object", "object", "Object", "Object"},
		{struct{}{}, "object", "object", "Object", "Object"},
		{time.Now(), "date", "date", "Date", "Date"},
		{new(time.Time), "date", "date", "Date", "Date"},
		{regexp.MustCompile(`s+`), "regexp", "regexp", "RegExp", "RegExp"},
		{errors.New("foo"), "error", "error", "Error", "Error"},
		{fmt.Errorf("foo: %w", fs.ErrNotExist), "error", "error", "Error", "Error"},
		{&fs.PathError{}, "error", "patherror", "Error", "PathError"},
		{customError{}, "error", "customerror", "Error", "customError"},
		{Headers{}, "object", "headers", "Object", "Headers"},
		{make(chan int), "chan", "chan", "Chan", "Chan"},
		{unsafe.Pointer(new(int)), "unsafepointer", "unsafepointer", "UnsafePointer", "UnsafePointer"},
	}

	for _, v := range values {
		t.Run(fmt.Sprintf("%s/%T", v.specific, v.value), func(t *testing.T) {
			if got := c.TypeOf(v.value, no, no); got != v.general {
				t.Fatalf("got %q", got)
			}
			if got := c.TypeOf(v.value, yes, no); got != v.specific {
				t.Fatalf("got %q", got)
			}
			if got := c.TypeOf(v.value, no, yes); got != v.generalCase {
				t.Fatalf("got %q", got)
			}
			if got := c.TypeOf(v.value, yes, yes); got != v.specialCase {
				t.Fatalf("got %q", got)
			}
		})
	}
}

func TestRegExpConstructors(t *testing.T) {
	c := NewClassifier(Config{})
	compiled, err := regexp.Compile(`s+`)
	if err != nil {
		t.Fatal(err)
	}
	for _, original := range []bool{false, true} {
		for _, specific := range []bool{false, true} {
			a := c.TypeOf(compiled, &specific, &original)
			b := c.TypeOf(regexp.MustCompile(`s+`), &specific, &original)
			if a != b {
				t.Fatalf("got %q and %q", a, b)
			}
		}
	}
}

func TestBoxedPrimitives(t *testing.T) {
	c := NewClassifier(Config{})
	yes := Bool(true)
	no := Bool(false)

	str := "a string"
	num := 42
	values := []struct {
		value    any
		specific string
		original string
	}{
		{Bool(true), "boolean", "Boolean"},
		{&num, "number", "Number"},
		{&str, "string", "String"},
	}
	for _, v := range values {
		if got := c.TypeOf(v.value, nil, nil); got != "object" {
			t.Fatalf("got %q", got)
		}
		if got := c.TypeOf(v.value, no, yes); got != "Object" {
			t.Fatalf("got %q", got)
		}
		if got := c.TypeOf(v.value, yes, no); got != v.specific {
			t.Fatalf("got %q", got)
		}
		if got := c.TypeOf(v.value, yes, yes); got != v.original {
			t.Fatalf("got %q", got)
		}
	}

	// pointers to pointers are still boxed
	ptr := &num
	if got := c.TypeOf(&ptr, yes, nil); got != "number" {
		t.Fatalf("got %q", got)
	}
}

func TestTypedArrays(t *testing.T) {
	c := NewClassifier(Config{})
	yes := Bool(true)
	no := Bool(false)

	values := []struct {
		value any
		name  string
	}{
		{[]int8{}, "Int8Array"},
		{[]uint8{}, "Uint8Array"},
		{[]byte("foo"), "Uint8Array"},
		{Uint8ClampedArray{}, "Uint8ClampedArray"},
		{[]int16{}, "Int16Array"},
		{[]uint16{}, "Uint16Array"},
		{[]int32{}, "Int32Array"},
		{[]uint32{}, "Uint32Array"},
		{[]int64{}, "BigInt64Array"},
		{[]uint64{}, "BigUint64Array"},
		{[]float32{}, "Float32Array"},
		{[]float64{}, "Float64Array"},
		{[4]float64{}, "Float64Array"},
		{Samples{}, "Samples"},
	}
	for _, v := range values {
		t.Run(v.name, func(t *testing.T) {
			if got := c.TypeOf(v.value, nil, nil); got != "typedarray" {
				t.Fatalf("got %q", got)
			}
			if got := c.TypeOf(v.value, no, yes); got != "TypedArray" {
				t.Fatalf("got %q", got)
			}
			if got := c.TypeOf(v.value, yes, yes); got != v.name {
				t.Fatalf("got %q", got)
			}
		})
	}

	// platform sized ints are not fixed width
	if got := c.TypeOf([]int{}, nil, nil); got != "array" {
		t.Fatalf("got %q", got)
	}
}

func TestNilValues(t *testing.T) {
	c := NewClassifier(Config{})
	yes := Bool(true)

	var ptr *CustomClass
	var fn func()
	var ch chan int
	var err error
	var iface any = ptr
	values := []any{
		nil,
		ptr,
		fn,
		ch,
		err,
		iface,
		(*Symbol)(nil),
		(*fs.PathError)(nil),
	}
	for _, value := range values {
		if got := c.TypeOf(value, nil, nil); got != "null" {
			t.Fatalf("%T: got %q", value, got)
		}
		if got := c.TypeOf(value, yes, nil); got != "null" {
			t.Fatalf("%T: got %q", value, got)
		}
		if got := c.TypeOf(value, yes, yes); got != "Null" {
			t.Fatalf("%T: got %q", value, got)
		}
	}
}

func TestCaseOnlyDivergence(t *testing.T) {
	c := NewClassifier(Config{})
	no := Bool(false)
	yes := Bool(true)
	values := []any{
		Undefined, nil, true, 1, "", NewSymbol(""), func() {},
		[]any{}, map[string]int{}, CustomClass{}, time.Time{},
		regexp.MustCompile("a"), errors.New("a"), &fs.PathError{},
		[]uint16{}, Bool(true), make(chan bool),
	}
	for _, value := range values {
		lower := c.TypeOf(value, no, no)
		original := c.TypeOf(value, no, yes)
		if lower != strings.ToLower(original) {
			t.Fatalf("%T: %q vs %q", value, lower, original)
		}
	}
}

func TestPure(t *testing.T) {
	c := NewClassifier(Config{})
	value := &CustomClass{}
	first := c.TypeOf(value, Bool(true), Bool(true))
	for range 100 {
		if got := c.TypeOf(value, Bool(true), Bool(true)); got != first {
			t.Fatalf("got %q", got)
		}
	}
}

type selfPtr *selfPtr

type ping *pong

type pong *ping

func TestCyclicPointers(t *testing.T) {
	var p selfPtr
	p = &p
	if got := TypeOf(p, Bool(false), Bool(false)); got != "object" {
		t.Fatalf("got %q", got)
	}
	if got := TypeOf(p, Bool(true), Bool(true)); got != "selfPtr" {
		t.Fatalf("got %q", got)
	}

	var a ping
	var b pong
	a = &b
	b = &a
	if got := TypeOf(a, Bool(true), Bool(true)); got != "ping" {
		t.Fatalf("got %q", got)
	}

	// a repeated type without a repeated address ends in nil
	var c ping
	var d pong
	c = &d
	if got := TypeOf(c, Bool(false), Bool(false)); got != "null" {
		t.Fatalf("got %q", got)
	}
}
