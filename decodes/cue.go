package decodes

import (
	"cuelang.org/go/cue/cuecontext"
)

// CUE evaluates an expression. The value must be concrete.
func CUE(text string) (ret any, err error) {
	value := cuecontext.New().CompileString(text)
	if err := value.Err(); err != nil {
		return nil, err
	}
	if err := value.Decode(&ret); err != nil {
		return nil, err
	}
	return ret, nil
}
