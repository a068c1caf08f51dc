package calcium

import (
	"math/big"
	"strconv"
)

// Eval evaluates one line and returns its result. If an error occurs, the
// line has no effect on the context's variables; assignments take effect only
// when the whole line succeeds. The context's stacks are reset before and
// after each call, so an error never affects the next line.
func (ctx *Context) Eval(line string) (Value, error) {
	ctx.reset()
	e := evaluator{ctx: ctx, line: line, want: true}
	r, err := e.run()
	if err != nil {
		ctx.reset()
		return Value{}, err
	}
	for _, w := range ctx.writes {
		ctx.syms.set(w.name, w.v, nil)
	}
	ctx.reset()
	return r, nil
}

// evaluator is the state of a single call to Eval.
type evaluator struct {
	ctx  *Context
	line string
	// want is set when the next token must begin an operand: at the start of
	// the line, after an open bracket, and after an operator.
	want bool
}

func (e *evaluator) run() (Value, error) {
	cursor := 0
	for {
		tok, next := Tokenize(e.line, cursor)
		col := tok.Start + 1
		var err error
		switch tok.Kind {
		case TokenEnd:
			return e.end(col)
		case TokenInteger, TokenReal:
			err = e.number(tok)
		case TokenIdent:
			err = e.ident(tok, next)
		case TokenOperator:
			err = e.operator(tok.Op, tok.Text(e.line), col)
		case TokenIncomplete:
			err = &LexError{Text: tok.Text(e.line), Kind: "number", Col: col}
		case TokenString:
			err = &LexError{Text: tok.Text(e.line), Kind: "string", Col: col}
		case TokenError:
			err = &LexError{Text: tok.Text(e.line), Kind: "unterminated string", Col: col}
		default:
			panic("calcium: unexpected token " + tok.String())
		}
		if err != nil {
			return Value{}, err
		}
		cursor = next
	}
}

func (e *evaluator) number(tok Token) error {
	text := tok.Text(e.line)
	col := tok.Start + 1
	if !e.want {
		return &OperandError{Col: col, Text: text}
	}
	var v Value
	if tok.Kind == TokenInteger {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return &LexError{Text: text, Kind: "number", Col: col}
		}
		v = IntValue(i)
	} else {
		r, _, err := new(big.Float).SetPrec(e.ctx.prec).Parse(text, 10)
		if err != nil {
			return &LexError{Text: text, Kind: "number", Col: col}
		}
		v = Value{kind: Real, r: r}
	}
	return e.push(operand{v: v, col: col})
}

// ident handles an identifier token. next is the cursor after it.
func (e *evaluator) ident(tok Token, next int) error {
	name := tok.Text(e.line)
	col := tok.Start + 1
	if len(name) > MaxNameLen {
		return &LexError{Text: name, Kind: "identifier", Col: col}
	}
	v, op, ok := e.lookup(name)
	if op != nil {
		return e.operator(op, name, col)
	}
	if !e.want {
		return &OperandError{Col: col, Text: name}
	}
	if !ok {
		// An unbound name is only allowed as the target of =.
		la, _ := Tokenize(e.line, next)
		if la.Kind != TokenOperator || la.Op == nil || la.Op.ID != OpAssign {
			return &NameError{Name: name, Col: col}
		}
		return e.push(operand{name: name, unbound: true, col: col})
	}
	return e.push(operand{v: v, name: name, col: col})
}

// lookup finds the current binding of a name, including assignments made
// earlier in the line.
func (e *evaluator) lookup(name string) (Value, *Operator, bool) {
	w := e.ctx.writes
	for i := len(w) - 1; i >= 0; i-- {
		if w[i].name == name {
			return w[i].v, nil, true
		}
	}
	p := e.ctx.syms.lookup(name)
	if p == nil {
		return Value{}, nil, false
	}
	return p.val, p.op, true
}

// bind records an assignment.
func (e *evaluator) bind(name string, v Value) {
	e.ctx.writes = append(e.ctx.writes, binding{name: name, v: v})
}

// operator handles an operator token or an identifier bound to an operator.
// text is the operator's spelling in the input.
func (e *evaluator) operator(op *Operator, text string, col int) error {
	if op == nil {
		return &LexError{Text: text, Kind: "operator", Col: col}
	}
	switch op.ID {
	case OpGroupOpen:
		return e.open(op, text, col)
	case OpGroupClose:
		return e.close(op, text, col)
	}
	if e.want {
		pf := prefixForm(op)
		if pf == nil {
			return &OperatorError{Col: col, Operator: text, Unary: true}
		}
		// Nothing to the left can belong to a prefix operator, so there is
		// nothing to collapse.
		return e.pushOp(pending{op: pf, col: col})
	}
	switch {
	case op.ID == OpInc, op.ID == OpDec:
		return e.postfix(op, col)
	case op.Arity == Unary:
		return &OperatorError{Col: col, Operator: text}
	}
	if err := e.collapse(op); err != nil {
		return err
	}
	e.want = true
	return e.pushOp(pending{op: op, col: col})
}

func (e *evaluator) open(op *Operator, text string, col int) error {
	if !e.want {
		return &OperandError{Col: col, Text: text}
	}
	if err := e.pushOp(pending{op: op, col: col}); err != nil {
		return err
	}
	if err := e.ctx.scopes.push(e.ctx.ops.len()); err != nil {
		return &StackError{Col: col, Err: err}
	}
	return nil
}

func (e *evaluator) close(op *Operator, text string, col int) error {
	if e.ctx.scopes.empty() {
		return &BracketError{Col: col, Right: text}
	}
	if e.want {
		return &EmptyExpressionError{Col: col, End: text}
	}
	for {
		p, err := e.ctx.ops.pop()
		if err != nil {
			panic("calcium: open scope with no bracket")
		}
		if p.op.ID == OpGroupOpen {
			if !closes(p.op, op) {
				return &BracketError{Col: col, Left: p.op.Symbol, Right: text}
			}
			break
		}
		if err := e.apply(p); err != nil {
			return err
		}
	}
	e.ctx.scopes.pop()
	return nil
}

// postfix applies a postfix increment or decrement to the operand on top of
// the stack, which must be a variable. The result is the variable's old value.
func (e *evaluator) postfix(op *Operator, col int) error {
	x, err := e.ctx.values.pop()
	if err != nil {
		return &StackError{Col: col, Err: err}
	}
	if x.name == "" {
		return &AssignError{Col: col, Op: op.Symbol}
	}
	if x.unbound {
		return &NameError{Name: x.name, Col: x.col}
	}
	r, err := unary(op, x.v, e.ctx.prec, col)
	if err != nil {
		return err
	}
	e.bind(x.name, r)
	return e.push(operand{v: x.v, col: x.col})
}

// level returns the height of the operator stack at the start of the
// innermost open group.
func (e *evaluator) level() int {
	l, err := e.ctx.scopes.peek()
	if err != nil {
		return 0
	}
	return l
}

// collapse applies every pending operator in the current group which binds at
// least as tightly as op.
func (e *evaluator) collapse(op *Operator) error {
	base := e.level()
	for e.ctx.ops.len() > base {
		prev, _ := e.ctx.ops.peek()
		if prev.op.Prec < op.Prec || prev.op.Prec == op.Prec && op.Assoc == Right {
			break
		}
		e.ctx.ops.pop()
		if err := e.apply(prev); err != nil {
			return err
		}
	}
	return nil
}

// apply pops an operator's operands, computes it, and pushes the result.
func (e *evaluator) apply(p pending) error {
	op := p.op
	if op.Arity == Unary {
		x, err := e.ctx.values.pop()
		if err != nil {
			return &StackError{Col: p.col, Err: err}
		}
		if op.assigns() && x.name == "" {
			return &AssignError{Col: p.col, Op: op.Symbol}
		}
		if x.unbound {
			return &NameError{Name: x.name, Col: x.col}
		}
		r, err := unary(op, x.v, e.ctx.prec, p.col)
		if err != nil {
			return err
		}
		if op.assigns() {
			e.bind(x.name, r)
		}
		return e.push(operand{v: r, col: x.col})
	}
	y, err := e.ctx.values.pop()
	if err != nil {
		return &StackError{Col: p.col, Err: err}
	}
	x, err := e.ctx.values.pop()
	if err != nil {
		return &StackError{Col: p.col, Err: err}
	}
	if y.unbound {
		return &NameError{Name: y.name, Col: y.col}
	}
	if !op.assigns() {
		if x.unbound {
			return &NameError{Name: x.name, Col: x.col}
		}
		r, err := binary(op, x.v, y.v, e.ctx.prec, p.col)
		if err != nil {
			return err
		}
		return e.push(operand{v: r, col: x.col})
	}
	if x.name == "" {
		return &AssignError{Col: p.col, Op: op.Symbol}
	}
	r := y.v
	if op.ID != OpAssign {
		if x.unbound {
			return &NameError{Name: x.name, Col: x.col}
		}
		r, err = binary(op, x.v, y.v, e.ctx.prec, p.col)
		if err != nil {
			return err
		}
	}
	e.bind(x.name, r)
	return e.push(operand{v: r, col: x.col})
}

// end applies everything left at the end of the line and gets the result.
func (e *evaluator) end(col int) (Value, error) {
	if e.want {
		return Value{}, &EmptyExpressionError{Col: col}
	}
	for !e.ctx.ops.empty() {
		p, _ := e.ctx.ops.pop()
		if p.op.ID == OpGroupOpen {
			return Value{}, &BracketError{Col: p.col, Left: p.op.Symbol}
		}
		if err := e.apply(p); err != nil {
			return Value{}, err
		}
	}
	switch n := e.ctx.values.len(); n {
	case 0:
		return Value{}, &EmptyExpressionError{Col: col}
	case 1:
		// ok
	default:
		return Value{}, &ResultError{Col: col, Count: n}
	}
	r, _ := e.ctx.values.pop()
	if r.unbound {
		return Value{}, &NameError{Name: r.name, Col: r.col}
	}
	return r.v, nil
}

func (e *evaluator) push(x operand) error {
	if err := e.ctx.values.push(x); err != nil {
		return &StackError{Col: x.col, Err: err}
	}
	e.want = false
	return nil
}

func (e *evaluator) pushOp(p pending) error {
	if err := e.ctx.ops.push(p); err != nil {
		return &StackError{Col: p.col, Err: err}
	}
	return nil
}
