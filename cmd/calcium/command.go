package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zephyrtronium/calcium"
)

// command runs line if it is a command rather than an expression. Commands
// begin with a colon, which can never start an expression. The result is
// false if line is not a command.
func command(w io.Writer, ctx *calcium.Context, verb, line string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		return false
	}
	f := strings.Fields(line[1:])
	if len(f) == 0 {
		fmt.Fprintln(w, "commands: :list, :unset name...")
		return true
	}
	switch f[0] {
	case "list":
		list(w, ctx.Symbols(), verb)
	case "unset":
		if len(f) == 1 {
			fmt.Fprintln(w, "unset: no names given")
		}
		for _, name := range f[1:] {
			if !ctx.Symbols().Delete(name) {
				fmt.Fprintf(w, "unset: %s is not defined\n", name)
			}
		}
	default:
		fmt.Fprintf(w, "unknown command %q\n", f[0])
	}
	return true
}

// list writes each binding in s, one per line.
func list(w io.Writer, s *calcium.Symbols, verb string) {
	for _, name := range s.Names() {
		if op := s.LookupOperator(name); op != nil {
			fmt.Fprintf(w, "%s is %s\n", name, op.Symbol)
			continue
		}
		v, _ := s.Lookup(name)
		fmt.Fprintf(w, "%s = "+verb, name, v)
	}
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
