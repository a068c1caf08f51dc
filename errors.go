package calcium

import "strconv"

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the invalid token.
	Text string
	// Kind is the type of token. This may be "number", "identifier",
	// "operator", "string", or "unterminated string".
	Kind string
	// Col is the 1-based byte position of the token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator in a position where it
// cannot be used. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator's spelling.
	Operator string
	// Unary is whether the evaluator expected an operand, and therefore a
	// prefix operator, at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operand directly following another
// operand with no operator between them. It implements InputError.
type OperandError struct {
	// Col is the position of the second operand.
	Col int
	// Text is the second operand.
	Text string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operator before "+strconv.Quote(err.Text))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression or an
// operator missing its right operand.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// ResultError is an error indicating that evaluation left more than one
// value, i.e. that operators were missing.
type ResultError struct {
	// Col is the end of the input.
	Col int
	// Count is the number of values left.
	Count int
}

func (err *ResultError) Error() string {
	return errpos(err.Col, "ambiguous result: "+strconv.Itoa(err.Count)+" values left")
}

func (err *ResultError) Pos() int {
	return err.Col
}

// StackError is an error indicating that an expression needed more stack
// than the context has, or, with ErrUnderflow, an operator which found too
// few operands. It unwraps to ErrOverflow or ErrUnderflow.
type StackError struct {
	// Col is the position of the token being evaluated.
	Col int
	// Err is ErrOverflow or ErrUnderflow.
	Err error
}

func (err *StackError) Error() string {
	return errpos(err.Col, err.Err.Error())
}

func (err *StackError) Unwrap() error {
	return err.Err
}

func (err *StackError) Pos() int {
	return err.Col
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation context, or from an attempt to define an invalid name.
type NameError struct {
	// Name is the name that was missing or invalid.
	Name string
	// Col is the position of the name in the input, or 0 if the name did not
	// come from evaluating input.
	Col int
	// Reason explains why an invalid name is invalid. It is empty for
	// undefined variables.
	Reason string
}

func (err *NameError) Error() string {
	var msg string
	if err.Reason != "" {
		msg = "invalid name " + strconv.Quote(err.Name) + ": " + err.Reason
	} else {
		msg = "undefined variable: " + strconv.Quote(err.Name)
	}
	if err.Col == 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *NameError) Pos() int {
	return err.Col
}

// DivisionError is an error indicating division by zero, including remainder
// by zero and raising zero to a negative power.
type DivisionError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op string
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero in "+err.Op)
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// TypeError is an error indicating a real operand to an operator which takes
// only integers.
type TypeError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op string
}

func (err *TypeError) Error() string {
	return errpos(err.Col, "operator "+err.Op+" requires integer operands")
}

func (err *TypeError) Pos() int {
	return err.Col
}

// AssignError is an error indicating an assignment, increment, or decrement
// of something other than a variable.
type AssignError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op string
}

func (err *AssignError) Error() string {
	return errpos(err.Col, "operator "+err.Op+" requires a variable operand")
}

func (err *AssignError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operator is applied to operands
// outside its domain.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// X is the out-of-domain operand.
	X Value
	// Func is the operator.
	Func string
}

func (err *DomainError) Error() string {
	return errpos(err.Col, err.X.String()+" outside domain of "+err.Func)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based byte offset of the
	// start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*ResultError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*TypeError)(nil)
	_ InputError = (*AssignError)(nil)
	_ InputError = (*DomainError)(nil)
)
