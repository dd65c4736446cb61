package arguments

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	scalar "github.com/alexflint/go-scalar"
)

// binding associates a registered flag with its converter and the
// description shown in the usage text.
type binding struct {
	description string
	value       Filler
}

// Arguments is a registry of named flags bound to caller-owned variables.
// Create one with New, populate it with Register and RegisterFlag, then call
// Parse. The registry references the bound variables, it never owns them.
// Methods must not be called concurrently.
type Arguments struct {
	flags map[string]binding
	name  string
}

// New returns an empty registry. program names the executable in the usage
// header; pass "" to omit the header entirely.
func New(program string) *Arguments {
	return &Arguments{
		flags: make(map[string]binding),
		name:  program,
	}
}

// UnknownFlagError indicates a flag token with no registered binding.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("invalid flag: %s", e.Name)
}

// Register binds dest under the given flag name. dest must be a non-nil
// pointer to a type that can be parsed from a string (booleans, integers,
// floats, strings, time.Duration, encoding.TextUnmarshaler implementations,
// and so on); when --name appears on the command line, one value token is
// converted and written through dest. If dest itself implements Filler it is
// stored as-is, so callers can supply converters with their own consumption
// rules.
//
// Registering a name that is already present silently replaces the earlier
// binding: the last registration wins. Register panics if dest is neither a
// Filler nor a pointer to a parseable type. It's good to check this here
// rather than wait until Parse because it means a program with an invalid
// binding always fails regardless of which flags its arguments exercise.
func (a *Arguments) Register(dest interface{}, name string, description string) {
	if f, ok := dest.(Filler); ok {
		a.flags[name] = binding{description: description, value: f}
		return
	}

	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("%T is not a pointer (did you forget an ampersand?)", dest))
	}
	if v.IsNil() {
		panic(fmt.Sprintf("%T is a nil pointer", dest))
	}
	if !scalar.CanParse(v.Type().Elem()) {
		panic(fmt.Sprintf("%s is not a supported flag type", v.Type().Elem()))
	}
	a.flags[name] = binding{description: description, value: &scalarValue{dest: v}}
}

// RegisterFlag binds dest as a presence flag: when --name appears, dest is
// set to true and no value token is consumed. Under Register's generic rule
// a bool would demand a trailing "true", which is not how presence flags are
// spelled, hence the separate method. The usage type label is "flag". As
// with Register, the last registration under a name wins.
func (a *Arguments) RegisterFlag(dest *bool, name string, description string) {
	a.flags[name] = binding{description: description, value: &boolFlag{dest: dest}}
}

// Parse processes args, which should be the raw argument list without the
// executable path. Tokens beginning with "--" are flag tokens, looked up by
// the name after the prefix; every other token is pooled, in order, for the
// flags' converters to draw from. Flags run in the order they appear on the
// command line, sharing one cursor over the pooled values, so a value may
// sit before or after the flag that consumes it. The value tokens left over
// after every flag has run are returned for the caller to interpret.
//
// The first failure stops parsing: an unregistered flag yields an
// *UnknownFlagError, and a converter failure is wrapped with the flag name
// so that errors.Is(err, ErrOutOfArgs) and errors.As with *ParseError see
// the cause. Variables written by flags processed before the failure keep
// their parsed values; nothing is rolled back. Parse writes no output and
// never terminates the process.
func (a *Arguments) Parse(args []string) ([]string, error) {
	var flagNames []string
	var values []string

	for _, arg := range args {
		if strings.HasPrefix(arg, "--") {
			flagNames = append(flagNames, arg[2:])
		} else {
			values = append(values, arg)
		}
	}

	cursor := &Cursor{values: values}
	for _, name := range flagNames {
		fl, ok := a.flags[name]
		if !ok {
			return nil, &UnknownFlagError{Name: name}
		}
		if err := fl.value.Fill(cursor); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	return cursor.rest(), nil
}

// MustParse processes the command line and exits upon failure.
func (a *Arguments) MustParse() []string {
	rest, err := a.Parse(flags())
	if err != nil {
		a.Fail(err.Error())
	}
	return rest
}

// flags gets all command line arguments other than the first (program name)
func flags() []string {
	if len(os.Args) == 0 { // os.Args could be empty
		return nil
	}
	return os.Args[1:]
}
