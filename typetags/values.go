package typetags

// Undefined stands for a missing value. Go has no undefined, so callers that
// need to classify "nothing given" pass this instead of nil, which is null.
var Undefined any = undefined{}

type undefined struct{}

// Symbol is a unique, optionally described token. Two symbols with the same
// description are still distinct values.
type Symbol struct {
	description string
}

func NewSymbol(description string) *Symbol {
	return &Symbol{
		description: description,
	}
}

func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

// Uint8ClampedArray is a byte buffer whose writes are expected to saturate at
// 0 and 255 instead of wrapping. It classifies apart from plain []uint8.
type Uint8ClampedArray []uint8

// Clamp converts an int to a clamped byte.
func Clamp(i int) uint8 {
	switch {
	case i < 0:
		return 0
	case i > 255:
		return 255
	}
	return uint8(i)
}
