package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/zephyrtronium/calcium"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, prompt string
		with                 [][2]string
		tokens               bool
		prec, size           int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%v", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.IntVar(&prec, "p", 64, "precision of real calculations in bits")
	flag.IntVar(&size, "stack", calcium.DefaultStackSize, "capacity of the evaluation stacks")
	flag.BoolVar(&tokens, "tokens", false, "print the tokens of each line instead of evaluating")
	flag.StringVar(&prompt, "prompt", ": ", "prompt to print before reading each line from a terminal")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if size <= 0 {
		log.Fatalf("stack size (%d) must be positive", size)
	}

	verb += "\n"
	ctx := calcium.NewContext(calcium.Prec(uint(prec)), calcium.StackSize(size))
	for _, d := range with {
		nm := d[0]
		r, err := ctx.Eval(d[1])
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		if err := ctx.Define(nm, r); err != nil {
			log.Fatal(err)
		}
	}

	do := func(line string) {
		if tokens {
			printTokens(os.Stdout, line)
			return
		}
		if command(os.Stdout, ctx, verb, line) {
			return
		}
		r, err := ctx.Eval(line)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf(verb, r)
	}

	for _, arg := range flag.Args() {
		do(arg)
	}
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f == nil {
		return
	}
	defer f.Close()
	interactive := f == os.Stdin && prompt != "" && isTerminal(f)
	sc := bufio.NewScanner(f)
	for {
		if interactive {
			fmt.Print(prompt)
		}
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		do(line)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// printTokens writes a table of the tokens in line.
func printTokens(w io.Writer, line string) {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintln(tw, "START\tEND\tKIND\tTEXT")
	cursor := 0
	for {
		tok, next := calcium.Tokenize(line, cursor)
		if tok.Kind == calcium.TokenEnd {
			break
		}
		fmt.Fprintf(tw, "%d\t%d\t%v\t%s\n", tok.Start, tok.Start+tok.Len, tok.Kind, tok.Text(line))
		cursor = next
	}
	tw.Flush()
}
