package simplex_test

import (
	"testing"

	"github.com/zephyrtronium/simplex"
)

func TestParseAtom(t *testing.T) {
	cases := []struct {
		src  string
		ok   bool
		head string
		str  string
	}{
		{"42", true, "Integer", "42"},
		{"-7", true, "Integer", "-7"},
		{"100.000", true, "Integer", "100"},
		{"100.201", true, "Real", "100.201"},
		{"+Inf", true, "Real", "+Inf"},
		{`"hi"`, true, "String", `"hi"`},
		{`"42"`, true, "String", `"42"`},
		{`"a\"b"`, true, "String", `"a\"b"`},
		{"x", true, "Symbol", "x"},
		{"Inf", true, "Symbol", "Inf"},
		{"$x1", true, "Symbol", "$x1"},
		{"Simplex`Atom", true, "Symbol", "Simplex`Atom"},
		{"", false, "", ""},
		{"1x", false, "", ""},
		{`"open`, false, "", ""},
		{"a`", false, "", ""},
		{"a b", false, "", ""},
		{"Plus[1]", false, "", ""},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			a, ok := simplex.ParseAtom(c.src)
			if ok != c.ok {
				t.Fatalf("%q: want ok=%t, got %t", c.src, c.ok, ok)
			}
			if !ok {
				return
			}
			if h := a.HeadName(); h != c.head {
				t.Errorf("%q: want head %s, got %s", c.src, c.head, h)
			}
			if h := a.Head(); h.String() != c.head || !h.IsSymbol() {
				t.Errorf("%q: bad head atom %v", c.src, h)
			}
			if s := a.String(); s != c.str {
				t.Errorf("%q: want %q, got %q", c.src, c.str, s)
			}
			if a.Kind() != simplex.KindAtom {
				t.Errorf("%q: kind is %v", c.src, a.Kind())
			}
		})
	}
}

func TestAtomAccessors(t *testing.T) {
	n := simplex.MustAtom("100.000")
	if i, ok := n.AsInt(); !ok || i != 100 {
		t.Errorf("100.000 as int: %d, %t", i, ok)
	}
	if _, ok := n.AsReal(); ok {
		t.Error("100.000 is real")
	}
	if _, ok := n.AsText(); ok {
		t.Error("100.000 is text")
	}
	r, ok := simplex.MustAtom("100.201").AsReal()
	if !ok {
		t.Fatal("100.201 is not real")
	}
	if s := r.Text('f'); s != "100.201" {
		t.Errorf("100.201 as real: %s", s)
	}
	if _, ok := simplex.MustAtom("100.201").AsInt(); ok {
		t.Error("100.201 is an integer")
	}
	if s, ok := simplex.Text("x y").AsText(); !ok || s != "x y" {
		t.Errorf("text contents: %q, %t", s, ok)
	}
	if s, ok := simplex.Sym("x").Name(); !ok || s != "x" {
		t.Errorf("symbol name: %q, %t", s, ok)
	}
	if _, ok := simplex.Text("x").Name(); ok {
		t.Error("text has a symbol name")
	}
	if !simplex.Num(simplex.NaN()).IsNumeric() {
		t.Error("NaN atom is not numeric")
	}
	if h := simplex.Num(simplex.NaN()).HeadName(); h != "Symbol" {
		t.Errorf("NaN head is %s", h)
	}
}

func TestAtomEqual(t *testing.T) {
	cases := []struct {
		a, b simplex.Atom
		want bool
	}{
		{simplex.MustAtom("100.000"), simplex.Int(100), true},
		{simplex.MustAtom("1.5"), simplex.MustAtom("1.50"), true},
		{simplex.Int(1), simplex.Int(2), false},
		{simplex.Text("x"), simplex.Sym("x"), false},
		{simplex.Text("x"), simplex.Text("x"), true},
		{simplex.Sym("x"), simplex.Sym("x"), true},
		{simplex.Text("1"), simplex.Int(1), false},
		{simplex.Num(simplex.NaN()), simplex.Num(simplex.NaN()), true},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.want {
			t.Errorf("%v == %v: want %t, got %t", c.a, c.b, c.want, got)
		}
	}
}

func TestSymPanics(t *testing.T) {
	for _, name := range []string{"", "1a", "a b", `"a"`, "a`"} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic for %q", name)
				}
			}()
			simplex.Sym(name)
		})
	}
}
