package debugs

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/reusee/typeof/logs"
	"github.com/reusee/typeof/typetags"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// predeclared is the classifier builtins plus globals converted to starlark.
func predeclared(classifier *typetags.Classifier, globals map[string]any) starlark.StringDict {
	ret := classifierBuiltins(classifier)
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

// Tap starts a starlark REPL on stdin with globals and the classifier builtins.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	classifier *typetags.Classifier,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()
		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(fileOptions, thread, predeclared(classifier, globals))
	}
}

// Eval executes src non-interactively and returns its globals.
// print() writes to out.
type Eval func(ctx context.Context, src string, globals map[string]any, out io.Writer) (starlark.StringDict, error)

func (Module) Eval(
	logger logs.Logger,
	classifier *typetags.Classifier,
) Eval {
	return func(ctx context.Context, src string, globals map[string]any, out io.Writer) (starlark.StringDict, error) {
		logger.DebugContext(ctx, "eval",
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		thread := &starlark.Thread{
			Name: "eval",
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(out, msg)
			},
		}
		ret, err := starlark.ExecFileOptions(
			fileOptions,
			thread,
			"eval.star",
			src,
			predeclared(classifier, globals),
		)
		if err != nil {
			return nil, fmt.Errorf("eval: %w", err)
		}
		return ret, nil
	}
}
