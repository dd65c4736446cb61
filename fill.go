package arguments

import (
	"errors"
	"fmt"
	"reflect"

	scalar "github.com/alexflint/go-scalar"
)

// ErrOutOfArgs indicates that a converter needed a value token but every
// value token had already been consumed.
var ErrOutOfArgs = errors.New("out of arguments")

// ParseError indicates that a value token could not be converted to the type
// of the bound variable.
type ParseError struct {
	Type string // label of the target type
	Err  error  // underlying conversion error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing %s", e.Type)
}

func (e *ParseError) Unwrap() error { return e.Err }

// A Cursor walks the value tokens of a single call to Parse. All converters
// invoked during that call draw from the same cursor, consuming tokens left
// to right.
type Cursor struct {
	values []string
	pos    int
}

// Next consumes and returns the next value token. It reports false when no
// tokens remain, leaving the cursor unchanged.
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.values) {
		return "", false
	}
	v := c.values[c.pos]
	c.pos++
	return v, true
}

// Len returns the number of value tokens not yet consumed.
func (c *Cursor) Len() int {
	return len(c.values) - c.pos
}

// rest returns the tokens never handed out by Next, in their original order.
func (c *Cursor) rest() []string {
	return c.values[c.pos:]
}

// Filler is the converter stored for each registered flag: when the flag
// appears on the command line, Fill consumes zero or more value tokens from
// the shared cursor and writes the converted result into a variable owned by
// the caller. TypeName reports the label shown in parentheses in the usage
// text.
//
// The built-in fillers cover scalar values (one token) and boolean presence
// flags (no tokens). Any value implementing Filler can be passed to Register
// to take part in parsing with its own consumption rule.
type Filler interface {
	Fill(values *Cursor) error
	TypeName() string
}

// scalarValue converts exactly one value token and writes it through the
// pointer to the caller's variable.
type scalarValue struct {
	dest reflect.Value
}

func (s *scalarValue) Fill(values *Cursor) error {
	item, ok := values.Next()
	if !ok {
		return ErrOutOfArgs
	}
	if err := scalar.ParseValue(s.dest, item); err != nil {
		return &ParseError{Type: s.TypeName(), Err: err}
	}
	return nil
}

func (s *scalarValue) TypeName() string {
	return s.dest.Type().Elem().String()
}

// boolFlag sets the pointed-to bool when its flag is present. It consumes no
// value tokens, so --verbose works without a trailing "true".
type boolFlag struct {
	dest *bool
}

func (b *boolFlag) Fill(values *Cursor) error {
	*b.dest = true
	return nil
}

func (b *boolFlag) TypeName() string {
	return "flag"
}
