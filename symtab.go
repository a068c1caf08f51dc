package calcium

// MaxNameLen is the length of the longest name a symbol table accepts.
const MaxNameLen = 31

// symBuckets is the number of hash buckets: one per ASCII letter of either
// case, plus underscore.
const symBuckets = 26 + 26 + 1

// symbol is a binding in a bucket chain. Exactly one of val and op is
// meaningful: if op is non-nil, the name is a word operator.
type symbol struct {
	key  string
	val  Value
	op   *Operator
	next *symbol
}

// Symbols is a table of variable and word operator bindings. Names are hashed
// by their first byte; names sharing a first byte are kept in a chain in the
// order they were first defined.
//
// Symbols does no locking. Contexts which share a table via WithSymbols must
// not evaluate concurrently unless the caller synchronizes them.
type Symbols struct {
	buckets [symBuckets]*symbol
	n       int
}

// NewSymbols creates an empty symbol table.
func NewSymbols() *Symbols {
	return &Symbols{}
}

func bucket(c byte) int {
	switch {
	case 'A' <= c && c <= 'Z':
		return int(c - 'A')
	case 'a' <= c && c <= 'z':
		return 26 + int(c-'a')
	case c == '_':
		return 52
	default:
		return -1
	}
}

// checkName returns an error if name cannot be written as an identifier.
func checkName(name string) error {
	switch {
	case name == "":
		return &NameError{Name: name, Reason: "empty"}
	case len(name) > MaxNameLen:
		return &NameError{Name: name, Reason: "longer than the maximum name length"}
	}
	for i := 0; i < len(name); i++ {
		if class(name[i]) != classAlpha {
			return &NameError{Name: name, Reason: "names contain only letters and underscores"}
		}
	}
	return nil
}

// Define binds a variable. If name is already bound, its binding is replaced
// in place.
func (s *Symbols) Define(name string, v Value) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.set(name, v, nil)
	return nil
}

// DefineOperator binds a name to an operator so that the name can be written
// in place of the operator's symbol, e.g. "mod" for "%". Brackets cannot be
// bound.
func (s *Symbols) DefineOperator(name string, id OpID) error {
	if err := checkName(name); err != nil {
		return err
	}
	op := Op(id)
	if op == nil || op.ID == OpGroupOpen || op.ID == OpGroupClose {
		return &NameError{Name: name, Reason: "cannot bind operator " + id.String()}
	}
	s.set(name, Value{}, op)
	return nil
}

// set binds name without checking it.
func (s *Symbols) set(name string, v Value, op *Operator) {
	b := bucket(name[0])
	p := &s.buckets[b]
	for *p != nil {
		if (*p).key == name {
			(*p).val = v
			(*p).op = op
			return
		}
		p = &(*p).next
	}
	// Copy the key so that the table doesn't keep input lines alive.
	*p = &symbol{key: string([]byte(name)), val: v, op: op}
	s.n++
}

// Delete removes the binding of name, whether a variable or a word operator.
// The result is false if name was not bound. The order of the remaining names
// is unchanged.
func (s *Symbols) Delete(name string) bool {
	if name == "" {
		return false
	}
	b := bucket(name[0])
	if b < 0 {
		return false
	}
	for p := &s.buckets[b]; *p != nil; p = &(*p).next {
		if (*p).key == name {
			*p = (*p).next
			s.n--
			return true
		}
	}
	return false
}

func (s *Symbols) lookup(name string) *symbol {
	if name == "" {
		return nil
	}
	b := bucket(name[0])
	if b < 0 {
		return nil
	}
	for p := s.buckets[b]; p != nil; p = p.next {
		if p.key == name {
			return p
		}
	}
	return nil
}

// Lookup returns the value of a variable. The result is false if there is no
// such variable, including if the name is bound to an operator.
func (s *Symbols) Lookup(name string) (Value, bool) {
	p := s.lookup(name)
	if p == nil || p.op != nil {
		return Value{}, false
	}
	return p.val, true
}

// LookupOperator returns the operator bound to a name, or nil if the name is
// not bound to an operator.
func (s *Symbols) LookupOperator(name string) *Operator {
	p := s.lookup(name)
	if p == nil {
		return nil
	}
	return p.op
}

// Len returns the number of bound names.
func (s *Symbols) Len() int {
	return s.n
}

// Names returns the bound names, ordered by bucket and then by order of
// definition within each bucket.
func (s *Symbols) Names() []string {
	names := make([]string, 0, s.n)
	for _, p := range s.buckets {
		for ; p != nil; p = p.next {
			names = append(names, p.key)
		}
	}
	return names
}

// Clone creates a copy of the table. Values are immutable, so the copy shares
// nothing mutable with s.
func (s *Symbols) Clone() *Symbols {
	n := Symbols{n: s.n}
	for i, p := range s.buckets {
		q := &n.buckets[i]
		for ; p != nil; p = p.next {
			*q = &symbol{key: p.key, val: p.val, op: p.op}
			q = &(*q).next
		}
	}
	return &n
}
