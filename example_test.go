package calcium_test

import (
	"fmt"

	"github.com/zephyrtronium/calcium"
)

func Example() {
	ctx := calcium.NewContext()
	lines := []string{
		"x = 3",
		"y = x ** 2 + 1",
		"y / 4",
		"y / 4.0",
		"x++ * 2",
		"x",
		"(x + 1",
	}
	for _, line := range lines {
		r, err := ctx.Eval(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}

	// Output:
	// 3
	// 10
	// 2
	// 2.5
	// 6
	// 4
	// 1: open bracket ( with no close bracket
}

func ExampleTokenize() {
	line := "x += 2.5*(y)"
	for cursor := 0; ; {
		tok, next := calcium.Tokenize(line, cursor)
		if tok.Kind == calcium.TokenEnd {
			break
		}
		fmt.Printf("%-8v %q\n", tok.Kind, tok.Text(line))
		cursor = next
	}

	// Output:
	// Ident    "x"
	// Operator "+="
	// Real     "2.5"
	// Operator "*"
	// Operator "("
	// Ident    "y"
	// Operator ")"
}

func ExampleContext_Clone() {
	ctx := calcium.NewContext(calcium.SetVar("rate", calcium.FloatValue(0.25)))
	for _, n := range []int64{4, 10} {
		c := ctx.Clone(calcium.SetVar("n", calcium.IntValue(n)))
		r, _ := c.Eval("n * rate")
		fmt.Printf("%.2f\n", r)
	}

	// Output:
	// 1.00
	// 2.50
}
