package calcium

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSymbolsDefine(t *testing.T) {
	s := NewSymbols()
	if err := s.Define("x", IntValue(1)); err != nil {
		t.Fatal(err)
	}
	if v, ok := s.Lookup("x"); !ok || v.Kind() != Int || v.Int64() != 1 {
		t.Errorf("x should be 1 but is %v, %t", v, ok)
	}
	if v, ok := s.Lookup("y"); ok {
		t.Errorf("table has y: %v", v)
	}
	if err := s.Define("x", FloatValue(2.5)); err != nil {
		t.Fatal(err)
	}
	if v, ok := s.Lookup("x"); !ok || v.Kind() != Real || v.Float64() != 2.5 {
		t.Errorf("x should be 2.5 but is %v, %t", v, ok)
	}
	if s.Len() != 1 {
		t.Errorf("redefinition changed length to %d", s.Len())
	}
}

func TestSymbolsBadNames(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"digit", "x1"},
		{"leading-digit", "1x"},
		{"space", "a b"},
		{"symbol", "a+b"},
		{"unicode", "π"},
		{"long", strings.Repeat("x", MaxNameLen+1)},
	}
	s := NewSymbols()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := s.Define(c.in, IntValue(0))
			var ne *NameError
			if !errors.As(err, &ne) {
				t.Fatalf("%q gave %v, not a NameError", c.in, err)
			}
			if ne.Name != c.in || ne.Reason == "" {
				t.Errorf("wrong error for %q: %#v", c.in, ne)
			}
			if s.Len() != 0 {
				t.Errorf("bad name defined")
			}
		})
	}
	if err := s.Define(strings.Repeat("x", MaxNameLen), IntValue(0)); err != nil {
		t.Errorf("longest name rejected: %v", err)
	}
}

func TestSymbolsOperators(t *testing.T) {
	s := NewSymbols()
	if err := s.DefineOperator("mod", OpMod); err != nil {
		t.Fatal(err)
	}
	if op := s.LookupOperator("mod"); op != Op(OpMod) {
		t.Errorf("mod is bound to %v", op)
	}
	if v, ok := s.Lookup("mod"); ok {
		t.Errorf("operator name has value %v", v)
	}
	if err := s.Define("mod", IntValue(3)); err != nil {
		t.Fatal(err)
	}
	if op := s.LookupOperator("mod"); op != nil {
		t.Errorf("mod is still bound to %v", op)
	}
	if v, ok := s.Lookup("mod"); !ok || v.Int64() != 3 {
		t.Errorf("mod should be 3 but is %v, %t", v, ok)
	}
	for _, id := range []OpID{OpNone, OpGroupOpen, OpGroupClose, opCount} {
		if err := s.DefineOperator("bad", id); err == nil {
			t.Errorf("bound operator %d", id)
		}
	}
}

func TestSymbolsNames(t *testing.T) {
	s := NewSymbols()
	for _, name := range []string{"b", "ac", "_", "Z", "ab", "a", "A"} {
		if err := s.Define(name, IntValue(0)); err != nil {
			t.Fatal(err)
		}
	}
	// Upper case, then lower case, then underscore; within a bucket, order of
	// definition.
	want := []string{"A", "Z", "ac", "ab", "a", "b", "_"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("wrong names:\n\twant %q\n\tgot  %q", want, got)
	}
	if s.Len() != len(want) {
		t.Errorf("wrong length: want %d, got %d", len(want), s.Len())
	}
	// Lookups must not reorder chains.
	s.Lookup("a")
	s.Lookup("ab")
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("lookups changed order:\n\twant %q\n\tgot  %q", want, got)
	}
}

func TestSymbolsClone(t *testing.T) {
	s := NewSymbols()
	s.Define("x", IntValue(1))
	s.Define("xy", IntValue(2))
	s.DefineOperator("xor", OpBitXor)
	c := s.Clone()
	if !reflect.DeepEqual(s.Names(), c.Names()) {
		t.Errorf("clone has different names: %q vs %q", s.Names(), c.Names())
	}
	c.Define("x", IntValue(3))
	c.Define("y", IntValue(4))
	if v, _ := s.Lookup("x"); v.Int64() != 1 {
		t.Errorf("defining in clone changed original to %v", v)
	}
	if _, ok := s.Lookup("y"); ok {
		t.Error("defining in clone added to original")
	}
	if op := c.LookupOperator("xor"); op != Op(OpBitXor) {
		t.Errorf("clone has xor bound to %v", op)
	}
}

func TestSymbolsDelete(t *testing.T) {
	s := NewSymbols()
	for _, name := range []string{"a", "ab", "ac", "ad", "b"} {
		if err := s.Define(name, IntValue(int64(len(name)))); err != nil {
			t.Fatal(err)
		}
	}
	s.DefineOperator("and", OpAnd)
	cases := []struct {
		name string
		ok   bool
		want []string
	}{
		{"ac", true, []string{"a", "ab", "ad", "and", "b"}},
		{"a", true, []string{"ab", "ad", "and", "b"}},
		{"and", true, []string{"ab", "ad", "b"}},
		{"ac", false, []string{"ab", "ad", "b"}},
		{"c", false, []string{"ab", "ad", "b"}},
		{"", false, []string{"ab", "ad", "b"}},
		{"1", false, []string{"ab", "ad", "b"}},
		{"b", true, []string{"ab", "ad"}},
	}
	for _, c := range cases {
		if ok := s.Delete(c.name); ok != c.ok {
			t.Errorf("deleting %q gave %t", c.name, ok)
		}
		if got := s.Names(); !reflect.DeepEqual(got, c.want) {
			t.Errorf("after deleting %q:\n\twant %q\n\tgot  %q", c.name, c.want, got)
		}
		if s.Len() != len(c.want) {
			t.Errorf("after deleting %q, length is %d", c.name, s.Len())
		}
	}
	if _, ok := s.Lookup("a"); ok {
		t.Error("a is still defined")
	}
	if v, ok := s.Lookup("ad"); !ok || v.Int64() != 2 {
		t.Errorf("ad should be 2 but is %v, %t", v, ok)
	}
	if op := s.LookupOperator("and"); op != nil {
		t.Errorf("and is still bound to %v", op)
	}
	// A deleted name is appended again when redefined.
	s.Define("a", IntValue(9))
	if got, want := s.Names(), []string{"ab", "ad", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("redefined names:\n\twant %q\n\tgot  %q", want, got)
	}
}

func TestSymbolsDeleteClone(t *testing.T) {
	s := NewSymbols()
	s.Define("x", IntValue(1))
	s.Define("xy", IntValue(2))
	c := s.Clone()
	c.Delete("x")
	if v, ok := s.Lookup("x"); !ok || v.Int64() != 1 {
		t.Errorf("deleting from clone changed original to %v, %t", v, ok)
	}
	if s.Len() != 2 || c.Len() != 1 {
		t.Errorf("wrong lengths: original %d, clone %d", s.Len(), c.Len())
	}
}
