package cmds

// Var defines name to set a value and name+"." to reset it to zero.
func Var[T any](name string, desc string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc("reset "+name))
	return &value
}

// Toggle defines name to set true and "!"+name to set false.
// The value stays nil until one of them runs, so callers can tell an explicit false from unset.
func Toggle(name string, desc string) **bool {
	var value *bool
	set := func(v bool) func() {
		return func() {
			value = &v
		}
	}
	Define(name, Func(set(true)).Desc(desc))
	Define("!"+name, Func(set(false)).Desc("negate "+name))
	return &value
}
