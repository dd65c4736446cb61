package arguments

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// the width of the flag-name column
const colWidth = 20

// Fail prints usage information to stderr and exits with non-zero status
func (a *Arguments) Fail(msg string) {
	a.WriteUsage(os.Stderr)
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(-1)
}

// WriteUsage writes usage information to the given writer: a header naming
// the program when one was supplied to New, then one line per registered
// flag in lexicographic order showing the flag, its converter's type label
// and its description. It only reads the registry, so it may be called
// before or after Parse.
func (a *Arguments) WriteUsage(w io.Writer) {
	names := make([]string, 0, len(a.flags))
	for name := range a.flags {
		names = append(names, name)
	}
	sort.Strings(names)

	if a.name != "" {
		fmt.Fprintf(w, "usage:\n%s [flags] args...\n", a.name)
	}
	for _, name := range names {
		fl := a.flags[name]
		fmt.Fprintf(w, "\t--%-*s (%s) %s\n", colWidth, name, fl.value.TypeName(), fl.description)
	}
}

// Usage returns the usage text produced by WriteUsage.
func (a *Arguments) Usage() string {
	var b strings.Builder
	a.WriteUsage(&b)
	return b.String()
}
