package main

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/calcium"
)

func TestCommand(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		out   string
		names []string
	}{
		{
			name:  "list",
			lines: []string{":list"},
			out:   "b = 2\nx = 1.5\nxor is ^\n",
			names: []string{"b", "x", "xor"},
		},
		{
			name:  "list-spaces",
			lines: []string{"  : list  "},
			out:   "b = 2\nx = 1.5\nxor is ^\n",
			names: []string{"b", "x", "xor"},
		},
		{
			name:  "unset",
			lines: []string{":unset x", ":list"},
			out:   "b = 2\nxor is ^\n",
			names: []string{"b", "xor"},
		},
		{
			name:  "unset-many",
			lines: []string{":unset x xor b"},
			out:   "",
			names: []string{},
		},
		{
			name:  "unset-undefined",
			lines: []string{":unset y"},
			out:   "unset: y is not defined\n",
			names: []string{"b", "x", "xor"},
		},
		{
			name:  "unset-nothing",
			lines: []string{":unset"},
			out:   "unset: no names given\n",
			names: []string{"b", "x", "xor"},
		},
		{
			name:  "unknown",
			lines: []string{":quit"},
			out:   "unknown command \"quit\"\n",
			names: []string{"b", "x", "xor"},
		},
		{
			name:  "help",
			lines: []string{":"},
			out:   "commands: :list, :unset name...\n",
			names: []string{"b", "x", "xor"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := calcium.NewContext(calcium.NoDefaults())
			ctx.Define("x", calcium.FloatValue(1.5))
			ctx.Define("b", calcium.IntValue(2))
			ctx.Symbols().DefineOperator("xor", calcium.OpBitXor)
			var b strings.Builder
			for _, line := range c.lines {
				if !command(&b, ctx, "%v\n", line) {
					t.Fatalf("%q is not a command", line)
				}
			}
			if got := b.String(); got != c.out {
				t.Errorf("wrong output:\n\twant %q\n\tgot  %q", c.out, got)
			}
			if got := ctx.Symbols().Names(); strings.Join(got, " ") != strings.Join(c.names, " ") {
				t.Errorf("wrong names after commands: want %q, got %q", c.names, got)
			}
		})
	}
}

func TestCommandExpressions(t *testing.T) {
	ctx := calcium.NewContext()
	for _, line := range []string{"1 + 2", "x = 3", "list", "unset", "(1)"} {
		var b strings.Builder
		if command(&b, ctx, "%v\n", line) {
			t.Errorf("%q treated as a command", line)
		}
		if b.Len() != 0 {
			t.Errorf("%q wrote %q", line, b.String())
		}
	}
}

func TestUnsetThenEval(t *testing.T) {
	ctx := calcium.NewContext()
	if _, err := ctx.Eval("x = 4"); err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	command(&b, ctx, "%v\n", ":unset x")
	if _, err := ctx.Eval("x + 1"); err == nil {
		t.Error("unset variable still evaluates")
	}
	if r, err := ctx.Eval("x = 1"); err != nil || r.Int64() != 1 {
		t.Errorf("redefining unset variable gave %v, %v", r, err)
	}
}
