package main

import (
	"fmt"
	"os"

	arguments "github.com/Terramorpha/simple-arguments"
)

func main() {
	var (
		number  uint
		str     string
		boolean bool
		help    bool
	)

	args := arguments.New("args_tester")
	args.Register(&number, "number", "a number")
	args.Register(&boolean, "bool", "a boolean value")
	args.Register(&str, "string", "a string")
	args.RegisterFlag(&help, "help", "displays the help message")

	rest, err := args.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		fmt.Print(args.Usage())
		os.Exit(1)
	}

	if help {
		fmt.Print(args.Usage())
		return
	}
	fmt.Println(number, boolean, str)
	if len(rest) > 0 {
		fmt.Println("leftover arguments:", rest)
	}
}
