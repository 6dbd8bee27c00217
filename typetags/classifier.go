package typetags

import (
	"strings"
	"sync/atomic"
)

// Classifier maps values to type tags. The zero value is not usable, use NewClassifier.
type Classifier struct {
	config atomic.Pointer[Config]
}

func NewClassifier(config Config) *Classifier {
	ret := new(Classifier)
	ret.config.Store(&config)
	return ret
}

// GetConfig returns a copy of the current config.
func (c *Classifier) GetConfig() Config {
	return *c.config.Load()
}

// SetConfig overwrites the config fields present in partial with boolean values.
// Absent and non-boolean fields are left alone.
func (c *Classifier) SetConfig(partial any) {
	for {
		current := c.config.Load()
		next := *current
		next.apply(partial)
		if c.config.CompareAndSwap(current, &next) {
			return
		}
	}
}

// TypeOf returns the type tag of value. Nil flags fall back to the config.
func (c *Classifier) TypeOf(value any, specificType, originalCase *bool) string {
	config := c.config.Load()
	specific := config.SpecificType
	if specificType != nil {
		specific = *specificType
	}
	original := config.OriginalCase
	if originalCase != nil {
		original = *originalCase
	}
	return classify(inspect(value), specific, original)
}

func classify(s structure, specific bool, original bool) string {
	ret := s.kind

	if !original {
		if ret == kindObject {
			switch {
			case s.null:
				ret = "null"
			case s.tag == "Date":
				ret = "date"
			case s.tag == "RegExp":
				ret = "regexp"
			case s.tag == "Error":
				ret = "error"
			}
		}
	} else {
		switch {
		case ret == kindUndefined:
			ret = "Undefined"
		case s.null:
			ret = "Null"
		case ret == kindBoolean:
			ret = "Boolean"
		case ret == kindNumber:
			ret = "Number"
		case ret == kindString:
			ret = "String"
		case ret == kindSymbol:
			ret = "Symbol"
		case ret == kindFunction:
			ret = "Function"
		}
	}

	if specific {
		ret = s.name
	} else if !s.null && ret == kindObject {
		switch {
		case s.tag == "Array":
			ret = pick(original, "Array", "array")
		case s.tag == "Object":
			ret = pick(original, "Object", "object")
		case s.typedArray:
			ret = pick(original, "TypedArray", "typedarray")
		case s.tag == "Boolean", s.tag == "Number", s.tag == "String":
			ret = pick(original, "Object", "object")
		default:
			ret = s.tag
		}
	}

	if !original {
		ret = strings.ToLower(ret)
	}
	return ret
}

func pick(original bool, originalCase string, lowerCase string) string {
	if original {
		return originalCase
	}
	return lowerCase
}
