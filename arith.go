package calcium

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// baseOp gets the operator that a compound assignment applies.
func baseOp(op *Operator) *Operator {
	switch op.ID {
	case OpAddAssign, OpInc:
		return &operators[OpAdd]
	case OpSubAssign, OpDec:
		return &operators[OpSub]
	case OpMulAssign:
		return &operators[OpMul]
	case OpDivAssign:
		return &operators[OpDiv]
	case OpModAssign:
		return &operators[OpMod]
	default:
		return op
	}
}

// binary computes a binary operator other than plain assignment. Compound
// assignments compute their base operator. col is the operator's position,
// for errors.
func binary(op *Operator, x, y Value, prec uint, col int) (Value, error) {
	op = baseOp(op)
	switch op.ID {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow:
		if x.kind == Int && y.kind == Int {
			return intArith(op, x.i, y.i, col)
		}
		return realArith(op, x.real(prec), y.real(prec), prec, col)
	case OpLt:
		return boolValue(cmp(x, y, prec) < 0), nil
	case OpLe:
		return boolValue(cmp(x, y, prec) <= 0), nil
	case OpGt:
		return boolValue(cmp(x, y, prec) > 0), nil
	case OpGe:
		return boolValue(cmp(x, y, prec) >= 0), nil
	case OpEq:
		return boolValue(cmp(x, y, prec) == 0), nil
	case OpNe:
		return boolValue(cmp(x, y, prec) != 0), nil
	case OpAnd:
		return boolValue(x.truth() && y.truth()), nil
	case OpOr:
		return boolValue(x.truth() || y.truth()), nil
	case OpBitAnd, OpBitOr, OpBitXor, OpShl, OpShr:
		if x.kind != Int || y.kind != Int {
			return Value{}, &TypeError{Col: col, Op: op.Symbol}
		}
		return bitwise(op, x.i, y.i, col)
	default:
		panic("calcium: not a binary operator: " + op.Symbol)
	}
}

// unary computes a unary operator. Increment and decrement compute their
// results without binding them.
func unary(op *Operator, x Value, prec uint, col int) (Value, error) {
	switch op.ID {
	case OpNeg:
		if x.kind == Real {
			return Value{kind: Real, r: new(big.Float).Neg(x.r)}, nil
		}
		return IntValue(-x.i), nil
	case OpPlus:
		return x, nil
	case OpNot:
		return boolValue(!x.truth()), nil
	case OpBitNot:
		if x.kind != Int {
			return Value{}, &TypeError{Col: col, Op: op.Symbol}
		}
		return IntValue(^x.i), nil
	case OpInc, OpDec:
		return binary(op, x, IntValue(1), prec, col)
	default:
		panic("calcium: not a unary operator: " + op.Symbol)
	}
}

func intArith(op *Operator, x, y int64, col int) (Value, error) {
	switch op.ID {
	case OpAdd:
		return IntValue(x + y), nil
	case OpSub:
		return IntValue(x - y), nil
	case OpMul:
		return IntValue(x * y), nil
	case OpDiv:
		if y == 0 {
			return Value{}, &DivisionError{Col: col, Op: op.Symbol}
		}
		return IntValue(x / y), nil
	case OpMod:
		if y == 0 {
			return Value{}, &DivisionError{Col: col, Op: op.Symbol}
		}
		return IntValue(x % y), nil
	case OpPow:
		r, ok := ipow(x, y)
		if !ok {
			return Value{}, &DivisionError{Col: col, Op: op.Symbol}
		}
		return IntValue(r), nil
	default:
		panic("calcium: not an arithmetic operator: " + op.Symbol)
	}
}

// ipow computes b**e. Negative exponents truncate toward zero the way
// integer division does. The result is false if b is 0 and e is negative.
func ipow(b, e int64) (int64, bool) {
	if e < 0 {
		switch b {
		case 0:
			return 0, false
		case 1:
			return 1, true
		case -1:
			if e&1 == 0 {
				return 1, true
			}
			return -1, true
		default:
			return 0, true
		}
	}
	r := int64(1)
	for e > 0 {
		if e&1 != 0 {
			r *= b
		}
		b *= b
		e >>= 1
	}
	return r, true
}

func realArith(op *Operator, x, y *big.Float, prec uint, col int) (v Value, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		// Operations on infinities which have no result panic with ErrNaN.
		if _, ok := r.(big.ErrNaN); !ok {
			panic(r)
		}
		v, err = Value{}, &DomainError{Col: col, X: Value{kind: Real, r: x}, Func: op.Symbol}
	}()
	r := new(big.Float).SetPrec(prec)
	switch op.ID {
	case OpAdd:
		r.Add(x, y)
	case OpSub:
		r.Sub(x, y)
	case OpMul:
		r.Mul(x, y)
	case OpDiv:
		if y.Sign() == 0 {
			return Value{}, &DivisionError{Col: col, Op: op.Symbol}
		}
		r.Quo(x, y)
	case OpMod:
		if y.Sign() == 0 {
			return Value{}, &DivisionError{Col: col, Op: op.Symbol}
		}
		// x - y*trunc(x/y), so the result has the sign of x.
		q := new(big.Float).SetPrec(prec).Quo(x, y)
		if q.IsInf() {
			return Value{}, &DomainError{Col: col, X: Value{kind: Real, r: x}, Func: op.Symbol}
		}
		// A quotient with no fraction bits is already truncated.
		if !q.IsInt() {
			n, _ := q.Int(nil)
			q.SetInt(n)
		}
		q.Mul(q, y)
		r.Sub(x, q)
	case OpPow:
		return realPow(op, x, y, prec, col)
	default:
		panic("calcium: not an arithmetic operator: " + op.Symbol)
	}
	return Value{kind: Real, r: r}, nil
}

func realPow(op *Operator, x, y *big.Float, prec uint, col int) (Value, error) {
	r := new(big.Float).SetPrec(prec)
	switch {
	case y.Sign() == 0:
		r.SetInt64(1)
		return Value{kind: Real, r: r}, nil
	case x.Sign() == 0:
		if y.Sign() < 0 {
			return Value{}, &DivisionError{Col: col, Op: op.Symbol}
		}
		return Value{kind: Real, r: r}, nil
	}
	neg := false
	if x.Signbit() {
		// A negative base only has a real power for integer exponents.
		if !y.IsInt() {
			return Value{}, &DomainError{Col: col, X: Value{kind: Real, r: x}, Func: op.Symbol}
		}
		n, _ := y.Int(nil)
		neg = n.Bit(0) != 0
		x = new(big.Float).Neg(x)
	}
	r.Set(bigfloat.Pow(r, x, y))
	if neg {
		r.Neg(r)
	}
	return Value{kind: Real, r: r}, nil
}

// cmp compares x and y, promoting to real if either is.
func cmp(x, y Value, prec uint) int {
	if x.kind == Int && y.kind == Int {
		switch {
		case x.i < y.i:
			return -1
		case x.i > y.i:
			return 1
		default:
			return 0
		}
	}
	return x.real(prec).Cmp(y.real(prec))
}

func bitwise(op *Operator, x, y int64, col int) (Value, error) {
	switch op.ID {
	case OpBitAnd:
		return IntValue(x & y), nil
	case OpBitOr:
		return IntValue(x | y), nil
	case OpBitXor:
		return IntValue(x ^ y), nil
	case OpShl, OpShr:
		if y < 0 {
			return Value{}, &DomainError{Col: col, X: IntValue(y), Func: op.Symbol}
		}
		if op.ID == OpShl {
			return IntValue(x << uint64(y)), nil
		}
		return IntValue(x >> uint64(y)), nil
	default:
		panic("calcium: not a bitwise operator: " + op.Symbol)
	}
}
