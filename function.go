package simplex

import (
	"strings"
)

// Function is a user-defined function: a head, an ordered list of pattern
// parameters called meta-variables, and a body template. Evaluating the
// function substitutes arguments for the meta-variables in a copy of the body.
//
// A reflexive function renames the List heads in its body to its own head
// before substituting, so a body written generically as a list evaluates as
// an application of the function itself.
//
// Functions are values. The builder methods return updated copies and never
// modify a Function visible to another holder.
type Function struct {
	head      Atom
	reflexive bool
	metavars  []Atom
	body      Node
}

// NewFunction creates a function with the given head, no meta-variables, and
// an empty List body. Panics if head is not a valid symbol.
func NewFunction(head string) Function {
	return Function{head: Sym(head), body: List()}
}

// Head returns the function's head symbol.
func (f Function) Head() Atom {
	return f.head
}

// Kind returns KindFunction.
func (f Function) Kind() Kind {
	return KindFunction
}

func (Function) isExpr() {}

// Append returns f with e appended to its body.
func (f Function) Append(e Expr) Function {
	f.body = f.body.Append(e)
	return f
}

// AppendMetaVariable returns f with a new last meta-variable. Meta-variables
// must be symbol atoms; anything else panics.
func (f Function) AppendMetaVariable(e Expr) Function {
	if e == nil {
		panic("simplex: nil meta-variable")
	}
	a, ok := e.(Atom)
	if !ok {
		panic("simplex: non-atomic meta-variable " + e.String())
	}
	if !a.IsSymbol() {
		panic("simplex: meta-variable " + a.String() + " is not a symbol")
	}
	f.metavars = append(f.metavars[:len(f.metavars):len(f.metavars)], a)
	return f
}

// ToggleReflexive returns f with its reflexivity flipped.
func (f Function) ToggleReflexive() Function {
	f.reflexive = !f.reflexive
	return f
}

// Reflexive returns whether f is reflexive.
func (f Function) Reflexive() bool {
	return f.reflexive
}

// MetaVariables returns a copy of f's meta-variables in declaration order.
func (f Function) MetaVariables() []Atom {
	return append([]Atom(nil), f.metavars...)
}

// Body returns f's body template.
func (f Function) Body() Node {
	return f.body
}

// Evaluate substitutes args into a copy of f's body and returns it. The last
// meta-variable takes the last argument, the one before it takes the one
// before that, and so on. Meta-variables left without an argument stay in the
// body. f itself is unchanged.
func (f Function) Evaluate(args []string) Node {
	return NewContext().Call(f, args)
}

// Rest returns f's body. Calling Rest on the result strips its
// leaves one at a time.
func (f Function) Rest() (Node, bool) {
	return f.body, true
}

// String renders f as a definition, like "Plus[a_, b_] := List[a, b]".
func (f Function) String() string {
	var b strings.Builder
	b.Grow(f.head.capacity() + 4*len(f.metavars) + 8 + f.body.capacity())
	b.WriteString(f.head.String())
	b.WriteByte('[')
	for i, m := range f.metavars {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
		b.WriteByte('_')
	}
	b.WriteString("] := ")
	f.body.fmt(&b)
	return b.String()
}
