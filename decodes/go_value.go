package decodes

import (
	"fmt"

	"go.starlark.net/starlark"
)

// GoValue carries a Go value through starlark untouched.
type GoValue struct {
	Value any
}

var _ starlark.Value = GoValue{}

func (g GoValue) String() string {
	return fmt.Sprintf("%v", g.Value)
}

func (g GoValue) Type() string {
	return fmt.Sprintf("go.%T", g.Value)
}

func (g GoValue) Freeze() {}

func (g GoValue) Truth() starlark.Bool {
	return g.Value != nil
}

func (g GoValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable: %s", g.Type())
}
