package debugs

import (
	"fmt"

	"github.com/reusee/typeof/decodes"
	"github.com/reusee/typeof/typetags"
	"github.com/reusee/typeof/vars"
	"go.starlark.net/starlark"
)

func classifierBuiltins(classifier *typetags.Classifier) starlark.StringDict {
	return starlark.StringDict{

		// type_of(value?, specific=None, original=None)
		"type_of": starlark.NewBuiltin("type_of", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var value starlark.Value
			var specific, original starlark.Value = starlark.None, starlark.None
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
				"value?", &value,
				"specific?", &specific,
				"original?", &original,
			); err != nil {
				return nil, err
			}
			v := typetags.Undefined
			if value != nil {
				v = decodes.FromStarlark(value)
			}
			return starlark.String(classifier.TypeOf(
				v,
				flag(specific),
				flag(original),
			)), nil
		}),

		"get_config": starlark.NewBuiltin("get_config", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
				return nil, err
			}
			config := classifier.GetConfig()
			return toStarlarkValue(map[string]any{
				"specific_type": config.SpecificType,
				"original_case": config.OriginalCase,
			}), nil
		}),

		// set_config(partial?, **fields)
		"set_config": starlark.NewBuiltin("set_config", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			if len(args) > 1 {
				return nil, fmt.Errorf("%s: got %d arguments, want at most 1", fn.Name(), len(args))
			}
			if len(args) == 1 {
				classifier.SetConfig(decodes.FromStarlark(args[0]))
			}
			if len(kwargs) > 0 {
				partial := make(map[string]any, len(kwargs))
				for _, kv := range kwargs {
					key, _ := starlark.AsString(kv[0])
					partial[key] = decodes.FromStarlark(kv[1])
				}
				classifier.SetConfig(partial)
			}
			return starlark.None, nil
		}),

		// uint8_clamped(ints) builds a Uint8ClampedArray, out of range ints saturate
		"uint8_clamped": starlark.NewBuiltin("uint8_clamped", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var elems starlark.Iterable
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "elems", &elems); err != nil {
				return nil, err
			}
			var ret typetags.Uint8ClampedArray
			iter := elems.Iterate()
			defer iter.Done()
			var elem starlark.Value
			for iter.Next(&elem) {
				var i int
				if err := starlark.AsInt(elem, &i); err != nil {
					// AsInt fails on ints out of the int range, which saturate too
					n, ok := elem.(starlark.Int)
					if !ok {
						return nil, fmt.Errorf("%s: %w", fn.Name(), err)
					}
					i = n.Sign() * 256
				}
				ret = append(ret, typetags.Clamp(i))
			}
			return decodes.GoValue{Value: ret}, nil
		}),
	}
}

// flag maps None and non-bool values to nil, which selects the config.
func flag(value starlark.Value) *bool {
	if b, ok := value.(starlark.Bool); ok {
		return vars.Ptr(bool(b))
	}
	return nil
}
