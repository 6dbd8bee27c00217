package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE config files lazily, files listed earlier take precedence.
// A file that fails to load is reported by the iterators and does not hide the other files.
type Loader struct {
	paths    []string
	getRoots func() ([]root, error)
}

type root struct {
	value cue.Value
	path  string
	err   error
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		paths: filePaths,
		getRoots: sync.OnceValues(func() (ret []root, err error) {
			schema, err := compileSchema(schemaSrc)
			if err != nil {
				return nil, err
			}
			for _, filePath := range filePaths {
				value, err := loadFile(filePath, schema)
				ret = append(ret, root{
					value: value,
					path:  filePath,
					err:   err,
				})
			}
			return
		}),
	}
}

// Paths returns the config files in precedence order.
func (l Loader) Paths() []string {
	return l.paths
}

func compileSchema(src string) (schema cue.Value, err error) {
	if src == "" {
		return
	}
	schema = cuecontext.New().CompileString("close({" + src + "})")
	if err := schema.Err(); err != nil {
		return schema, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func loadFile(filePath string, schema cue.Value) (value cue.Value, err error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return value, fmt.Errorf("read config %s: %w", filePath, err)
	}
	value = cuecontext.New().CompileBytes(
		content,
		cue.Filename(filePath),
	)
	if err = value.Err(); err != nil {
		return value, fmt.Errorf("compile config %s: %w", filePath, err)
	}
	if schema.Exists() {
		if err := schema.Unify(value).Validate(); err != nil {
			return value, fmt.Errorf("validate config %s: %w", filePath, err)
		}
	}
	return value, nil
}

// Value is a config value and the file it is set in.
type Value struct {
	cue.Value
	Path string
}

// IterCueValues yields the value of path in every file setting it, in precedence order.
// Files that failed to load yield their error in place.
func (l Loader) IterCueValues(path string) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(Value{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, r := range roots {
			if r.err != nil {
				if !yield(Value{Path: r.path}, r.err) {
					return
				}
				continue
			}
			value := r.value.LookupPath(cuePath)
			if value.Err() != nil || !value.Exists() {
				continue
			}
			if !yield(Value{
				Value: value,
				Path:  r.path,
			}, nil) {
				return
			}
		}
	}
}
