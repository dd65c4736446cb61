/*
Package arguments implements a minimal command-line argument parser that
binds --name flags to variables owned by the caller.

Instead of collecting flag values as strings and converting them afterwards,
every registered variable carries a converter that consumes value tokens and
writes the typed result in place:

	var number int
	var name string
	var verbose bool

	args := arguments.New("args_tester")
	args.Register(&number, "number", "a number")
	args.Register(&name, "name", "a name")
	args.RegisterFlag(&verbose, "verbose", "enables verbose output")

	rest, err := args.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		fmt.Print(args.Usage())
		os.Exit(1)
	}

Tokens beginning with "--" name a flag; all other tokens are pooled, in
order, and consumed by the flags' converters in the order the flags appear
on the command line. A flag and its value therefore do not have to be
adjacent: "--number 1" and "1 --number" parse identically. Value tokens no
converter claimed come back from Parse as leftovers.

Register accepts a pointer to any type the go-scalar library can parse,
including caller-defined types implementing encoding.TextUnmarshaler, or any
value implementing Filler for converters with their own consumption rules.
Boolean presence flags registered with RegisterFlag consume no value token
at all: --verbose alone sets the bound variable to true.

The registry is not safe for concurrent use, and Parse neither prints nor
exits; presenting errors to the user is left to the embedding program (or to
the MustParse convenience wrapper).
*/
package arguments
