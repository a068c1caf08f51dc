package calcium

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Kind is the numeric kind of a Value.
type Kind int8

const (
	Int Kind = iota
	Real
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Real:
		return "real"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an integer or a real number. The zero Value is the integer 0.
// Values are immutable; a real Value never shares its big.Float with the
// caller.
type Value struct {
	kind Kind
	i    int64
	r    *big.Float
}

// IntValue creates an integer Value.
func IntValue(i int64) Value {
	return Value{kind: Int, i: i}
}

// RealValue creates a real Value holding a copy of x.
func RealValue(x *big.Float) Value {
	return Value{kind: Real, r: new(big.Float).Copy(x)}
}

// FloatValue creates a real Value from a float64. Panics with big.ErrNaN if f
// is NaN.
func FloatValue(f float64) Value {
	return Value{kind: Real, r: new(big.Float).SetFloat64(f)}
}

// boolValue converts a truth value to the integer 1 or 0.
func boolValue(b bool) Value {
	if b {
		return IntValue(1)
	}
	return IntValue(0)
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Int64 returns v as an integer. Reals are truncated toward zero, saturating
// at the int64 limits.
func (v Value) Int64() int64 {
	if v.kind == Real {
		i, _ := v.r.Int64()
		return i
	}
	return v.i
}

// Float returns a copy of v as a big.Float.
func (v Value) Float() *big.Float {
	if v.kind == Real {
		return new(big.Float).Copy(v.r)
	}
	return new(big.Float).SetInt64(v.i)
}

// Float64 returns the float64 nearest to v.
func (v Value) Float64() float64 {
	if v.kind == Real {
		f, _ := v.r.Float64()
		return f
	}
	return float64(v.i)
}

// real gets v as a big.Float without copying. The result must not be modified.
func (v Value) real(prec uint) *big.Float {
	if v.kind == Real {
		return v.r
	}
	return new(big.Float).SetPrec(prec).SetInt64(v.i)
}

// truth reports whether v is non-zero.
func (v Value) truth() bool {
	if v.kind == Real {
		return v.r.Sign() != 0
	}
	return v.i != 0
}

func (v Value) String() string {
	if v.kind == Real {
		return v.r.Text('g', -1)
	}
	return strconv.FormatInt(v.i, 10)
}

// Format implements fmt.Formatter. Reals format as *big.Float does. Integers
// format as int64 does, except that floating-point verbs format them as
// reals.
func (v Value) Format(s fmt.State, verb rune) {
	if v.kind == Real {
		v.r.Format(s, verb)
		return
	}
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		new(big.Float).SetInt64(v.i).Format(s, verb)
	case 'v', 's':
		fmt.Fprintf(s, directive(s, 'd'), v.i)
	default:
		fmt.Fprintf(s, directive(s, verb), v.i)
	}
}

// directive rebuilds the formatting directive that produced s.
func directive(s fmt.State, verb rune) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, c := range "+-# 0" {
		if s.Flag(int(c)) {
			b.WriteRune(c)
		}
	}
	if w, ok := s.Width(); ok {
		b.WriteString(strconv.Itoa(w))
	}
	if p, ok := s.Precision(); ok {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteRune(verb)
	return b.String()
}
