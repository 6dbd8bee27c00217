package cmds

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/typeof/vars"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	params      []param
}

// param is one positional argument of a command function.
type param struct {
	t        reflect.Type
	optional bool
}

func (p param) String() string {
	if p.optional {
		return "[<" + p.t.String() + ">]"
	}
	return "<" + p.t.String() + ">"
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

var errorType = reflect.TypeFor[error]()

// Func makes a command from fn.
// Parameters are positional arguments of bool, integer, float or string kinds, pointers to them are optional.
// fn may return an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()

	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("must return error, got %v", fnType.Out(0)))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value"))
	}

	command := &Command{
		Func: fnValue,
	}
	for i := range fnType.NumIn() {
		p := param{
			t: fnType.In(i),
		}
		if p.t.Kind() == reflect.Pointer {
			p.optional = true
			p.t = p.t.Elem()
		}
		if !argKinds[p.t.Kind()] {
			panic(fmt.Errorf("unsupported argument type: %v", fnType.In(i)))
		}
		command.params = append(command.params, p)
	}

	return command
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

func (c *Command) argsUsage() string {
	var args []string
	for _, p := range c.params {
		args = append(args, p.String())
	}
	return strings.Join(args, " ")
}

// bind consumes arguments for c from args.
// An optional argument is left unset when args is exhausted or the next word names a command.
func (c *Command) bind(args []string, isCommand func(string) bool) (callArgs []reflect.Value, rest []string, err error) {
	for _, p := range c.params {
		if len(args) == 0 || (p.optional && isCommand(args[0])) {
			if !p.optional {
				return nil, nil, fmt.Errorf("expecting %s, got nothing", p)
			}
			callArgs = append(callArgs, reflect.New(p.t))
			continue
		}
		value, err := parseArg(p.t, args[0])
		if err != nil {
			return nil, nil, err
		}
		args = args[1:]
		if p.optional {
			ptr := reflect.New(p.t)
			ptr.Elem().Set(value)
			value = ptr
		}
		callArgs = append(callArgs, value)
	}
	return callArgs, args, nil
}

var argKinds = map[reflect.Kind]bool{
	reflect.Bool:    true,
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Uint:    true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
	reflect.Float32: true,
	reflect.Float64: true,
	reflect.String:  true,
}

func parseArg(t reflect.Type, str string) (ret reflect.Value, err error) {
	ret = reflect.New(t).Elem()
	fail := func(what string, err error) (reflect.Value, error) {
		return ret, fmt.Errorf("convert %q to %s: %w", str, what, err)
	}

	switch t.Kind() {

	case reflect.Bool:
		v, err := vars.ParseBool(str)
		if err != nil {
			return fail("bool", err)
		}
		ret.SetBool(v)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return fail("int", err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return fail("unsigned int", err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return fail("float", err)
		}
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, fmt.Errorf("unsupported argument type: %v", t)
	}

	return ret, nil
}
