package configs

import (
	"fmt"
	"iter"
)

// Setting is a decoded config value and the file it is set in.
type Setting[T any] struct {
	Value T
	Path  string
}

// All yields the value of c in every file setting it, in precedence order.
// Load and decode errors are yielded in place, iteration continues after them.
func All[T any](loader Loader, c Configurable) iter.Seq2[Setting[T], error] {
	return func(yield func(Setting[T], error) bool) {
		path := c.ConfigExpr()
		for value, err := range loader.IterCueValues(path) {
			setting := Setting[T]{
				Path: value.Path,
			}
			if err == nil {
				if decodeErr := value.Decode(&setting.Value); decodeErr != nil {
					err = fmt.Errorf("decode %s in %s: %w", path, value.Path, decodeErr)
				}
			}
			if !yield(setting, err) {
				return
			}
		}
	}
}
