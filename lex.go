package calcium

import "strconv"

// Token is a classified span of input. Tokens are views into the input; they
// own no memory.
type Token struct {
	// Kind is the token's class.
	Kind TokenKind
	// Start and Len give the byte span of the token in the input.
	Start, Len int
	// Op is the operator for TokenOperator tokens. It is nil if the token's
	// leading symbol begins no known operator.
	Op *Operator
}

// Text returns the token's text within the input it was scanned from.
func (t Token) Text(input string) string {
	return input[t.Start : t.Start+t.Len]
}

func (t Token) String() string {
	return t.Kind.String() + "@" + strconv.Itoa(t.Start) + "+" + strconv.Itoa(t.Len)
}

// TokenKind is the class of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenInteger is a run of digits.
	TokenInteger
	// TokenReal is digits, a dot, and digits.
	TokenReal
	// TokenIdent is a variable or word operator name.
	TokenIdent
	// TokenOperator is a one- or two-byte operator spelling, including
	// brackets.
	TokenOperator
	// TokenString is a quoted string, quotes included.
	TokenString
	// TokenError is a quoted string that runs off the end of the input.
	TokenError
	// TokenIncomplete is a number that ends on its decimal point.
	TokenIncomplete
	// TokenEnd indicates the end of the input.
	TokenEnd
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// Byte classes. These are ASCII-only; every byte outside the other classes is
// a symbol, so the operator table decides what is valid.
const (
	classNone = iota
	classSpace
	classQuote
	classSymbol
	classAlpha
	classDigit
)

func class(c byte) int {
	switch {
	case c == ' ', c == '\t', c == '\n', c == '\r':
		return classSpace
	case c == '"', c == '\'':
		return classQuote
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '_':
		return classAlpha
	case '0' <= c && c <= '9':
		return classDigit
	default:
		return classSymbol
	}
}

// Tokenize scans the token beginning at or after cursor in input. The second
// result is the cursor just past the token. At the end of input, the result
// is a TokenEnd token with an empty span at len(input).
func Tokenize(input string, cursor int) (Token, int) {
	for cursor < len(input) && class(input[cursor]) == classSpace {
		cursor++
	}
	if cursor >= len(input) {
		return Token{Kind: TokenEnd, Start: len(input)}, len(input)
	}
	start := cursor
	switch class(input[cursor]) {
	case classQuote:
		delim := input[cursor]
		for cursor++; cursor < len(input); cursor++ {
			switch input[cursor] {
			case '\\':
				cursor++
			case delim:
				cursor++
				return Token{Kind: TokenString, Start: start, Len: cursor - start}, cursor
			}
		}
		return Token{Kind: TokenError, Start: start, Len: len(input) - start}, len(input)
	case classSymbol:
		var next byte
		if cursor+1 < len(input) && class(input[cursor+1]) == classSymbol {
			next = input[cursor+1]
		}
		op, n := lookupOperator(input[cursor], next)
		if op == nil {
			n = 1
		}
		return Token{Kind: TokenOperator, Start: start, Len: n, Op: op}, start + n
	case classAlpha:
		for cursor < len(input) && class(input[cursor]) == classAlpha {
			cursor++
		}
		return Token{Kind: TokenIdent, Start: start, Len: cursor - start}, cursor
	case classDigit:
		return scanNum(input, start)
	default:
		panic("calcium: unclassified byte " + strconv.QuoteRune(rune(input[cursor])))
	}
}

// scanNum scans an integer or real beginning at start, which must be a digit.
func scanNum(input string, start int) (Token, int) {
	kind := TokenInteger
	hint := false
	cursor := start
loop:
	for ; cursor < len(input); cursor++ {
		switch c := input[cursor]; {
		case '0' <= c && c <= '9':
			if hint {
				kind = TokenReal
			}
		case c == '.' && !hint:
			hint = true
		default:
			break loop
		}
	}
	if hint && kind == TokenInteger {
		kind = TokenIncomplete
	}
	return Token{Kind: kind, Start: start, Len: cursor - start}, cursor
}
