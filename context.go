package calcium

import "math/big"

// Context is a context for evaluating expressions. It holds the symbol table
// and the engine's stacks. It is not safe to use a Context concurrently.
type Context struct {
	syms   *Symbols
	values stack[operand]
	ops    stack[pending]
	scopes stack[int]
	// writes holds assignments made by the line being evaluated. They are
	// committed to syms only if the line succeeds.
	writes []binding
	prec   uint
	size   int
}

// operand is an entry on the value stack. If name is non-empty, the operand
// came directly from a variable and can be assigned.
type operand struct {
	v    Value
	name string
	// unbound is set for a name with no binding yet, which is only valid as
	// the left side of =.
	unbound bool
	col     int
}

// pending is an entry on the operator stack.
type pending struct {
	op  *Operator
	col int
}

type binding struct {
	name string
	v    Value
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  Value
	}
	varsopt       map[string]Value
	precopt       uint
	sizeopt       int
	symsopt       struct{ syms *Symbols }
	nodefaultsopt struct{}
)

func (varopt) ctxOption()        {}
func (varsopt) ctxOption()       {}
func (precopt) ctxOption()       {}
func (sizeopt) ctxOption()       {}
func (symsopt) ctxOption()       {}
func (nodefaultsopt) ctxOption() {}

// SetVar sets the value of a variable in the context. The context panics if
// name is not a valid variable name.
func SetVar(name string, val Value) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]Value) ContextOption {
	return varsopt(vars)
}

// Prec sets the precision of real calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// StackSize sets the capacity of each of the context's stacks, which bounds
// the size of expressions it can evaluate.
func StackSize(n int) ContextOption {
	return sizeopt(n)
}

// WithSymbols makes the context use an existing symbol table instead of its
// own. Assignments through any context sharing the table are visible to all
// of them.
func WithSymbols(syms *Symbols) ContextOption {
	return symsopt{syms}
}

// NoDefaults creates the context's symbol table without the default constants
// and word operators. It has no effect on tables given with WithSymbols or
// copied by Clone.
func NoDefaults() ContextOption {
	return nodefaultsopt{}
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64. If no stack size is given, the default is DefaultStackSize.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64, size: DefaultStackSize}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. The copy has
// its own copy of ctx's symbol table unless WithSymbols is given. Changing the
// precision does not round existing values.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{prec: ctx.prec, size: ctx.size}
	defaults := true
	var syms *Symbols
	for _, opt := range opts {
		switch opt := opt.(type) {
		case precopt:
			n.prec = uint(opt)
		case sizeopt:
			if opt < 0 {
				panic("calcium: negative stack size")
			}
			n.size = int(opt)
		case symsopt:
			syms = opt.syms
		case nodefaultsopt:
			defaults = false
		}
	}
	switch {
	case syms != nil:
		n.syms = syms
	case ctx.syms != nil:
		n.syms = ctx.syms.Clone()
	default:
		n.syms = NewSymbols()
		if defaults {
			installDefaults(n.syms, n.prec)
		}
	}
	n.values = newStack[operand](n.size)
	n.ops = newStack[pending](n.size)
	n.scopes = newStack[int](n.size)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.mustDefine(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				n.mustDefine(k, v)
			}
		case precopt, sizeopt, symsopt, nodefaultsopt:
			// Already done. Do nothing.
		default:
			panic("calcium: unknown option type")
		}
	}
	return &n
}

func (ctx *Context) mustDefine(name string, v Value) {
	if err := ctx.Define(name, v); err != nil {
		panic("calcium: " + err.Error())
	}
}

// Define sets the value of a variable. Real values are rounded to the
// context's precision.
func (ctx *Context) Define(name string, v Value) error {
	return ctx.syms.Define(name, ctx.round(v))
}

// Lookup returns the value of a variable. The result is false if there is no
// such variable in the context.
func (ctx *Context) Lookup(name string) (Value, bool) {
	return ctx.syms.Lookup(name)
}

// Symbols returns the context's symbol table.
func (ctx *Context) Symbols() *Symbols {
	return ctx.syms
}

// Prec returns the precision to which real values are computed in the
// context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// StackSize returns the capacity of the context's stacks.
func (ctx *Context) StackSize() int {
	return ctx.size
}

func (ctx *Context) round(v Value) Value {
	if v.kind != Real || v.r.Prec() == ctx.prec {
		return v
	}
	return Value{kind: Real, r: new(big.Float).SetPrec(ctx.prec).Set(v.r)}
}

// reset empties the stacks and discards uncommitted assignments.
func (ctx *Context) reset() {
	ctx.values.reset()
	ctx.ops.reset()
	ctx.scopes.reset()
	for i := range ctx.writes {
		ctx.writes[i] = binding{}
	}
	ctx.writes = ctx.writes[:0]
}

// EvalString is a shortcut to evaluate one line in a new context.
func EvalString(src string, opts ...ContextOption) (Value, error) {
	return NewContext(opts...).Eval(src)
}
