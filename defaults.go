package calcium

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constants are the values defined in every new context unless NoDefaults is
// given. f must set out to the constant at out's precision; its return value
// is ignored.
var constants = []struct {
	name string
	f    func(out *big.Float) *big.Float
}{
	{"pi", bigfloat.Pi},
	{"e", func(out *big.Float) *big.Float {
		var one big.Float
		one.SetInt64(1)
		return bigfloat.Exp(out, &one)
	}},
}

// wordOperators are the names bound to operators in every new context unless
// NoDefaults is given.
var wordOperators = []struct {
	name string
	id   OpID
}{
	{"and", OpAnd},
	{"or", OpOr},
	{"not", OpNot},
	{"mod", OpMod},
	{"xor", OpBitXor},
}

func installDefaults(s *Symbols, prec uint) {
	for _, c := range constants {
		r := new(big.Float).SetPrec(prec)
		r.Set(c.f(r))
		s.set(c.name, Value{kind: Real, r: r}, nil)
	}
	for _, w := range wordOperators {
		s.set(w.name, Value{}, Op(w.id))
	}
}
