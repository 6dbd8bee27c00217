package decodes

import (
	"fmt"
	"slices"
)

// Decoder turns source text into a Go value.
type Decoder func(text string) (any, error)

var decoders = map[string]Decoder{
	"json": JSON,
	"yaml": YAML,
	"cue":  CUE,
	"star": Starlark,
}

// Formats lists the names accepted by ByFormat.
var Formats = func() []string {
	var ret []string
	for name := range decoders {
		ret = append(ret, name)
	}
	slices.Sort(ret)
	return ret
}()

func ByFormat(format string, text string) (any, error) {
	decode, ok := decoders[format]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	value, err := decode(text)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return value, nil
}
