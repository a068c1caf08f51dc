package calcium

import "strconv"

// OpID identifies an operator.
type OpID uint8

const (
	OpNone OpID = iota

	OpGroupOpen  // ( or [
	OpGroupClose // ) or ]

	OpAdd  // +
	OpSub  // -
	OpMul  // *
	OpDiv  // /
	OpMod  // %
	OpPow  // **
	OpNeg  // prefix -
	OpPlus // prefix +
	OpInc  // ++
	OpDec  // --

	OpLt // <
	OpLe // <=
	OpGt // >
	OpGe // >=
	OpEq // ==
	OpNe // !=

	OpBitAnd // &
	OpBitOr  // |
	OpBitXor // ^
	OpBitNot // ~
	OpShl    // <<
	OpShr    // >>

	OpAnd // &&
	OpOr  // ||
	OpNot // !

	OpAssign    // =
	OpAddAssign // +=
	OpSubAssign // -=
	OpMulAssign // *=
	OpDivAssign // /=
	OpModAssign // %=

	opCount
)

// String returns the canonical spelling of the operator.
func (id OpID) String() string {
	if id == OpNone || id >= opCount {
		return "OpID(" + strconv.Itoa(int(id)) + ")"
	}
	return operators[id].Symbol
}

// Assoc is the associativity of an operator.
type Assoc int8

const (
	Left Assoc = iota
	Right
)

// Arity is the number of operands an operator takes.
type Arity int8

const (
	Unary  Arity = 1
	Binary Arity = 2
)

// Operator describes one operator. Operators are static; the only valid
// *Operator values are the ones this package hands out.
type Operator struct {
	// ID is the operator's identity.
	ID OpID
	// Symbol is the operator's canonical spelling.
	Symbol string
	// Prec is the precedence. Higher binds tighter.
	Prec int8
	// Assoc is the associativity among operators of equal precedence.
	Assoc Assoc
	// Arity is the number of operands consumed.
	Arity Arity
}

func (op *Operator) String() string {
	return op.Symbol
}

// assigns reports whether the operator binds a variable.
func (op *Operator) assigns() bool {
	switch op.ID {
	case OpAssign, OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign, OpModAssign, OpInc, OpDec:
		return true
	}
	return false
}

// prefix reports whether the operator may appear where an operand is
// expected.
func (op *Operator) prefix() bool {
	switch op.ID {
	case OpNeg, OpPlus, OpNot, OpBitNot, OpInc, OpDec:
		return true
	}
	return false
}

const (
	precGroup int8 = iota
	precAssign
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precComparison
	precShift
	precAdditive
	precMultiplicative
	precPower
	precUnary
)

// operators holds the descriptor for each OpID.
var operators = [opCount]Operator{
	OpGroupOpen:  {OpGroupOpen, "(", precGroup, Left, Unary},
	OpGroupClose: {OpGroupClose, ")", precGroup, Left, Unary},

	OpAdd:  {OpAdd, "+", precAdditive, Left, Binary},
	OpSub:  {OpSub, "-", precAdditive, Left, Binary},
	OpMul:  {OpMul, "*", precMultiplicative, Left, Binary},
	OpDiv:  {OpDiv, "/", precMultiplicative, Left, Binary},
	OpMod:  {OpMod, "%", precMultiplicative, Left, Binary},
	OpPow:  {OpPow, "**", precPower, Right, Binary},
	OpNeg:  {OpNeg, "-", precUnary, Right, Unary},
	OpPlus: {OpPlus, "+", precUnary, Right, Unary},
	OpInc:  {OpInc, "++", precUnary, Right, Unary},
	OpDec:  {OpDec, "--", precUnary, Right, Unary},

	OpLt: {OpLt, "<", precComparison, Left, Binary},
	OpLe: {OpLe, "<=", precComparison, Left, Binary},
	OpGt: {OpGt, ">", precComparison, Left, Binary},
	OpGe: {OpGe, ">=", precComparison, Left, Binary},
	OpEq: {OpEq, "==", precEquality, Left, Binary},
	OpNe: {OpNe, "!=", precEquality, Left, Binary},

	OpBitAnd: {OpBitAnd, "&", precBitAnd, Left, Binary},
	OpBitOr:  {OpBitOr, "|", precBitOr, Left, Binary},
	OpBitXor: {OpBitXor, "^", precBitXor, Left, Binary},
	OpBitNot: {OpBitNot, "~", precUnary, Right, Unary},
	OpShl:    {OpShl, "<<", precShift, Left, Binary},
	OpShr:    {OpShr, ">>", precShift, Left, Binary},

	OpAnd: {OpAnd, "&&", precAnd, Left, Binary},
	OpOr:  {OpOr, "||", precOr, Left, Binary},
	OpNot: {OpNot, "!", precUnary, Right, Unary},

	OpAssign:    {OpAssign, "=", precAssign, Right, Binary},
	OpAddAssign: {OpAddAssign, "+=", precAssign, Right, Binary},
	OpSubAssign: {OpSubAssign, "-=", precAssign, Right, Binary},
	OpMulAssign: {OpMulAssign, "*=", precAssign, Right, Binary},
	OpDivAssign: {OpDivAssign, "/=", precAssign, Right, Binary},
	OpModAssign: {OpModAssign, "%=", precAssign, Right, Binary},
}

// Square brackets group the same way as parentheses, but they need their own
// descriptors so that a close can be matched against its open.
var (
	squareOpen  = Operator{OpGroupOpen, "[", precGroup, Left, Unary}
	squareClose = Operator{OpGroupClose, "]", precGroup, Left, Unary}
)

// Op returns the descriptor for an operator ID, or nil if there is none.
func Op(id OpID) *Operator {
	if id == OpNone || id >= opCount {
		return nil
	}
	return &operators[id]
}

// spelling is one way to write an operator given its leading symbol. ext is
// the second symbol byte, or 0 for the single-byte spelling.
type spelling struct {
	ext byte
	op  *Operator
}

// optable maps a leading symbol byte to its spellings.
var optable = map[byte][]spelling{
	'+': {{0, &operators[OpAdd]}, {'+', &operators[OpInc]}, {'=', &operators[OpAddAssign]}},
	'-': {{0, &operators[OpSub]}, {'-', &operators[OpDec]}, {'=', &operators[OpSubAssign]}},
	'*': {{0, &operators[OpMul]}, {'*', &operators[OpPow]}, {'=', &operators[OpMulAssign]}},
	'/': {{0, &operators[OpDiv]}, {'=', &operators[OpDivAssign]}},
	'%': {{0, &operators[OpMod]}, {'=', &operators[OpModAssign]}},
	'<': {{0, &operators[OpLt]}, {'=', &operators[OpLe]}, {'<', &operators[OpShl]}},
	'>': {{0, &operators[OpGt]}, {'=', &operators[OpGe]}, {'>', &operators[OpShr]}},
	'=': {{0, &operators[OpAssign]}, {'=', &operators[OpEq]}},
	'!': {{0, &operators[OpNot]}, {'=', &operators[OpNe]}},
	'&': {{0, &operators[OpBitAnd]}, {'&', &operators[OpAnd]}},
	'|': {{0, &operators[OpBitOr]}, {'|', &operators[OpOr]}},
	'^': {{0, &operators[OpBitXor]}},
	'~': {{0, &operators[OpBitNot]}},
	'(': {{0, &operators[OpGroupOpen]}},
	')': {{0, &operators[OpGroupClose]}},
	'[': {{0, &squareOpen}},
	']': {{0, &squareClose}},
}

// lookupOperator finds the operator spelled by lead, possibly extended by
// next. The second result is the number of bytes the spelling uses. If lead
// does not begin any operator, the result is nil, 0.
func lookupOperator(lead, next byte) (*Operator, int) {
	sp := optable[lead]
	if len(sp) == 0 {
		return nil, 0
	}
	if next != 0 {
		for _, s := range sp {
			if s.ext == next {
				return s.op, 2
			}
		}
	}
	for _, s := range sp {
		if s.ext == 0 {
			return s.op, 1
		}
	}
	panic("calcium: no base spelling for " + strconv.QuoteRune(rune(lead)))
}

// prefixForm gets the operator to use when op appears where an operand is
// expected. If op cannot be prefix, the result is nil.
func prefixForm(op *Operator) *Operator {
	switch op.ID {
	case OpSub:
		return &operators[OpNeg]
	case OpAdd:
		return &operators[OpPlus]
	}
	if op.prefix() {
		return op
	}
	return nil
}

// closes reports whether the group close op matches the open.
func closes(open, op *Operator) bool {
	return (open == &squareOpen) == (op == &squareClose)
}
