package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

type Mode uint8

const (
	ModeDevelopment Mode = iota + 1
	ModeProduction
)

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeProduction:
		return "production"
	}
	return "unknown"
}

// Module provides Mode and the running test, if any.
// The zero Module is the production mode.
type Module struct {
	dscope.Module
	t *testing.T
}

func ForProduction() Module {
	return Module{}
}

func ForTest(t *testing.T) Module {
	return Module{
		t: t,
	}
}

func (m Module) T() *testing.T {
	return m.t
}

func (m Module) Mode() Mode {
	if m.t != nil {
		return ModeDevelopment
	}
	return ModeProduction
}
