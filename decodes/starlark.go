package decodes

import (
	"math/big"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var starlarkFileOptions = &syntax.FileOptions{
	Set: true,
}

// Starlark evaluates an expression.
func Starlark(text string) (any, error) {
	thread := &starlark.Thread{
		Name: "decode",
	}
	value, err := starlark.EvalOptions(starlarkFileOptions, thread, "<expr>", text, nil)
	if err != nil {
		return nil, err
	}
	return FromStarlark(value), nil
}

// Callable wraps a starlark callable as a Go function.
type Callable func(args ...starlark.Value) (starlark.Value, error)

// FromStarlark converts to plain Go values where one exists.
// Values without a Go counterpart, like sets, are returned unchanged.
// A list or dict that contains itself is converted once, inner references stay starlark values.
func FromStarlark(value starlark.Value) any {
	return fromStarlark(value, nil)
}

// visiting holds the lists and dicts being converted.
type visiting map[starlark.Value]bool

func (v visiting) enter(value starlark.Value) (visiting, bool) {
	if v[value] {
		return v, false
	}
	if v == nil {
		v = make(visiting)
	}
	v[value] = true
	return v, true
}

func fromStarlark(value starlark.Value, seen visiting) any {
	switch value := value.(type) {

	case nil, starlark.NoneType:
		return nil

	case GoValue:
		return value.Value

	case starlark.Bool:
		return bool(value)

	case starlark.Int:
		if i, ok := value.Int64(); ok {
			return i
		}
		return new(big.Int).Set(value.BigInt())

	case starlark.Float:
		return float64(value)

	case starlark.String:
		return string(value)

	case starlark.Bytes:
		return []byte(value)

	case *starlark.List:
		seen, ok := seen.enter(value)
		if !ok {
			return value
		}
		defer delete(seen, value)
		ret := make([]any, value.Len())
		for i := range value.Len() {
			ret[i] = fromStarlark(value.Index(i), seen)
		}
		return ret

	case starlark.Tuple:
		ret := make([]any, len(value))
		for i, elem := range value {
			ret[i] = fromStarlark(elem, seen)
		}
		return ret

	case *starlark.Dict:
		seen, ok := seen.enter(value)
		if !ok {
			return value
		}
		defer delete(seen, value)
		ret := make(map[string]any, value.Len())
		for _, item := range value.Items() {
			key, ok := starlark.AsString(item[0])
			if !ok {
				key = item[0].String()
			}
			ret[key] = fromStarlark(item[1], seen)
		}
		return ret

	case starlark.Callable:
		return Callable(func(args ...starlark.Value) (starlark.Value, error) {
			thread := &starlark.Thread{
				Name: value.Name(),
			}
			return starlark.Call(thread, value, args, nil)
		})

	}

	return value
}
