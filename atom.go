package simplex

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Atom is an indivisible leaf of an expression: a Numeric, a text literal, or
// a symbol. Atoms are immutable values. The zero Atom is invalid.
type Atom struct {
	kind atomKind
	num  Numeric
	// text is the contents of a text literal or the name of a symbol.
	text string
}

type atomKind int8

const (
	atomNone atomKind = iota
	atomNum
	atomText
	atomSym
)

// ParseAtom classifies raw text as an atom. Numeric literals take priority
// over text literals, which take priority over symbols. If s is none of the
// three, the result is false.
func ParseAtom(s string) (Atom, bool) {
	switch {
	case isNumericLiteral(s):
		return Num(ParseNumeric(s)), true
	case isTextLiteral(s):
		t, _ := strconv.Unquote(s)
		return Text(t), true
	case isSymbolLiteral(s):
		return Atom{kind: atomSym, text: s}, true
	default:
		return Atom{}, false
	}
}

// MustAtom is like ParseAtom but panics if s is not an atom.
func MustAtom(s string) Atom {
	a, ok := ParseAtom(s)
	if !ok {
		panic("simplex: not an atom: " + strconv.Quote(s))
	}
	return a
}

// Num returns a numeric atom.
func Num(n Numeric) Atom {
	return Atom{kind: atomNum, num: n}
}

// Int returns an Integer atom.
func Int(i int64) Atom {
	return Num(IntNumeric(i))
}

// Text returns a text atom with the given contents.
func Text(s string) Atom {
	return Atom{kind: atomText, text: s}
}

// Sym returns a symbol atom. Panics if name is not a valid symbol.
func Sym(name string) Atom {
	if !isSymbolLiteral(name) {
		panic("simplex: invalid symbol " + strconv.Quote(name))
	}
	return Atom{kind: atomSym, text: name}
}

// HeadName returns the runtime type tag of the atom: "Integer", "Real",
// "String", or "Symbol". NaN is a "Symbol".
func (a Atom) HeadName() string {
	switch a.kind {
	case atomNum:
		switch a.num.Simplify().kind {
		case numInt:
			return "Integer"
		case numReal:
			return "Real"
		default:
			return "Symbol"
		}
	case atomText:
		return "String"
	case atomSym:
		return "Symbol"
	default:
		return "Simplex`Invalid"
	}
}

// Head returns the atom's type tag as a symbol.
func (a Atom) Head() Atom {
	return Atom{kind: atomSym, text: a.HeadName()}
}

// Kind returns KindAtom.
func (a Atom) Kind() Kind {
	return KindAtom
}

func (Atom) isExpr() {}

// IsNumeric returns whether the atom holds a Numeric, including NaN.
func (a Atom) IsNumeric() bool {
	return a.kind == atomNum
}

// IsText returns whether the atom is a text literal.
func (a Atom) IsText() bool {
	return a.kind == atomText
}

// IsSymbol returns whether the atom is a symbol.
func (a Atom) IsSymbol() bool {
	return a.kind == atomSym
}

// AsNumeric returns the atom's number, if it is numeric.
func (a Atom) AsNumeric() (Numeric, bool) {
	if a.kind != atomNum {
		return Numeric{}, false
	}
	return a.num, true
}

// AsInt returns the atom's value if it is a number that simplifies to an
// Integer.
func (a Atom) AsInt() (int64, bool) {
	if a.kind != atomNum {
		return 0, false
	}
	return a.num.AsInt()
}

// AsReal returns the atom's value if it is a number that simplifies to a Real.
func (a Atom) AsReal() (*apd.Decimal, bool) {
	if a.kind != atomNum {
		return nil, false
	}
	return a.num.AsReal()
}

// AsText returns the contents of a text atom.
func (a Atom) AsText() (string, bool) {
	if a.kind != atomText {
		return "", false
	}
	return a.text, true
}

// Name returns the name of a symbol atom.
func (a Atom) Name() (string, bool) {
	if a.kind != atomSym {
		return "", false
	}
	return a.text, true
}

// Equal returns whether two atoms have the same value. Numbers compare by
// canonical value, so 100.000 equals 100.
func (a Atom) Equal(b Atom) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == atomNum {
		return a.num.Equal(b.num)
	}
	return a.text == b.text
}

// String renders the atom. Text is quoted so that it reads back as text.
func (a Atom) String() string {
	switch a.kind {
	case atomNum:
		return a.num.String()
	case atomText:
		return strconv.Quote(a.text)
	case atomSym:
		return a.text
	default:
		return "$invalid$"
	}
}

// capacity is a size hint in bytes for rendering the atom.
func (a Atom) capacity() int {
	switch a.kind {
	case atomNum:
		return a.num.Capacity() / 8
	default:
		return len(a.text) + 2
	}
}
