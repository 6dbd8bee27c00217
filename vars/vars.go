package vars

import (
	"fmt"
	"strings"
)

func Ptr[T any](v T) *T {
	return &v
}

// FirstNonZero returns the first non-zero value, or zero if all are.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}

// ParseBool accepts the spellings people type on command lines and in configs.
func ParseBool(str string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil
	case "false", "f", "no", "n", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", str)
}
