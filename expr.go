package simplex

import (
	"strings"
)

// Expr is an expression: an Atom, a Node, or a Function. The set of
// expression types is closed.
type Expr interface {
	// Head returns the symbol naming the expression's operator or type.
	Head() Atom
	// Kind returns the variant of the expression.
	Kind() Kind
	// String renders the expression in the canonical Head[leaf, ...] form.
	String() string

	isExpr()
}

// Kind identifies the variant of an expression. Node kinds are derived from
// the node's head name; any head without special meaning is KindList.
type Kind int8

const (
	KindNone Kind = iota

	KindAtom     // Numeric, text, or symbol leaf
	KindList     // List[...] or any other uninterpreted head
	KindFunction // user-defined function definition

	KindPlus     // Plus[...], folds by addition
	KindSubtract // Subtract[...], first leaf minus the rest
	KindTimes    // Times[...], folds by multiplication
	KindDivide   // Divide[...], first leaf divided by the rest
	KindPower    // Power[...], right-associative exponentiation
	KindExp      // Exp[x]
	KindLog      // Log[x]
	KindSqrt     // Sqrt[x]
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// ListHead is the generic head of list nodes.
const ListHead = "List"

var headkinds = map[string]Kind{
	"Plus":     KindPlus,
	"Subtract": KindSubtract,
	"Times":    KindTimes,
	"Divide":   KindDivide,
	"Power":    KindPower,
	"Exp":      KindExp,
	"Log":      KindLog,
	"Sqrt":     KindSqrt,
}

func kindOf(head string) Kind {
	if k, ok := headkinds[head]; ok {
		return k
	}
	return KindList
}

// Node is an expression with a head symbol and an ordered sequence of leaves.
// Nodes are values: Append and the other builder methods return new nodes and
// never modify leaves visible through another Node.
type Node struct {
	kind   Kind
	head   Atom
	leaves []Expr
}

// NewNode creates a node. Panics if head is not a valid symbol or any leaf is
// nil.
func NewNode(head string, leaves ...Expr) Node {
	n := Node{kind: kindOf(head), head: Sym(head)}
	if len(leaves) > 0 {
		n.leaves = make([]Expr, len(leaves))
		for i, l := range leaves {
			if l == nil {
				panic("simplex: nil leaf")
			}
			n.leaves[i] = l
		}
	}
	return n
}

// List creates a List node.
func List(leaves ...Expr) Node {
	return NewNode(ListHead, leaves...)
}

// Plus creates a Plus node.
func Plus(leaves ...Expr) Node {
	return NewNode("Plus", leaves...)
}

// Subtract creates a Subtract node.
func Subtract(leaves ...Expr) Node {
	return NewNode("Subtract", leaves...)
}

// Head returns the node's head symbol.
func (n Node) Head() Atom {
	return n.head
}

// Kind returns the node's kind.
func (n Node) Kind() Kind {
	return n.kind
}

func (Node) isExpr() {}

// Len returns the number of leaves.
func (n Node) Len() int {
	return len(n.leaves)
}

// Leaf returns the i'th leaf.
func (n Node) Leaf(i int) Expr {
	return n.leaves[i]
}

// Leaves returns a copy of the node's leaves.
func (n Node) Leaves() []Expr {
	return append([]Expr(nil), n.leaves...)
}

// Append returns a node with e added after the last leaf.
func (n Node) Append(e Expr) Node {
	if e == nil {
		panic("simplex: nil leaf")
	}
	// The full slice expression forces a copy, so n is never aliased.
	n.leaves = append(n.leaves[:len(n.leaves):len(n.leaves)], e)
	return n
}

// First returns the first leaf.
func (n Node) First() (Expr, bool) {
	if len(n.leaves) == 0 {
		return nil, false
	}
	return n.leaves[0], true
}

// Rest returns the node without its first leaf. Each call on the result
// strips one more leaf; once there are no leaves, the result is false.
func (n Node) Rest() (Node, bool) {
	if len(n.leaves) == 0 {
		return Node{}, false
	}
	n.leaves = n.leaves[1:len(n.leaves):len(n.leaves)]
	return n, true
}

func (n Node) String() string {
	var b strings.Builder
	b.Grow(n.capacity())
	n.fmt(&b)
	return b.String()
}

func (n Node) fmt(b *strings.Builder) {
	b.WriteString(n.head.String())
	b.WriteByte('[')
	for i, l := range n.leaves {
		if i > 0 {
			b.WriteString(", ")
		}
		if l, ok := l.(Node); ok {
			l.fmt(b)
			continue
		}
		b.WriteString(l.String())
	}
	b.WriteByte(']')
}

// capacity estimates the rendered length of n.
func (n Node) capacity() int {
	c := n.head.capacity() + 2
	for _, l := range n.leaves {
		switch l := l.(type) {
		case Atom:
			c += l.capacity() + 2
		case Node:
			c += l.capacity() + 2
		default:
			c += 16
		}
	}
	return c
}

// Replace substitutes with for every occurrence of the symbol sym in e and
// returns the result. e is not modified. A node's head is replaced only when
// with is also a symbol. Function definitions bind their own meta-variables,
// so Replace does not descend into them.
func Replace(e Expr, sym Atom, with Expr) Expr {
	switch e := e.(type) {
	case Atom:
		if e.Equal(sym) {
			return with
		}
		return e
	case Node:
		return e.Replace(sym, with)
	case Function:
		return e
	default:
		panic("simplex: unknown expression type")
	}
}

// Replace substitutes with for every occurrence of the symbol sym in n,
// including its head, and returns the new node.
func (n Node) Replace(sym Atom, with Expr) Node {
	r := Node{kind: n.kind, head: n.head}
	if h, ok := with.(Atom); ok && h.IsSymbol() && n.head.Equal(sym) {
		r.head = h
		r.kind = kindOf(h.text)
	}
	if len(n.leaves) > 0 {
		r.leaves = make([]Expr, len(n.leaves))
		for i, l := range n.leaves {
			r.leaves[i] = Replace(l, sym, with)
		}
	}
	return r
}

// Equal returns whether two expressions are structurally identical: the same
// variant, the same head, and equal leaves in order.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case Atom:
		b, ok := b.(Atom)
		return ok && a.Equal(b)
	case Node:
		b, ok := b.(Node)
		if !ok || !a.head.Equal(b.head) || len(a.leaves) != len(b.leaves) {
			return false
		}
		for i := range a.leaves {
			if !Equal(a.leaves[i], b.leaves[i]) {
				return false
			}
		}
		return true
	case Function:
		b, ok := b.(Function)
		if !ok || !a.head.Equal(b.head) || a.reflexive != b.reflexive || len(a.metavars) != len(b.metavars) {
			return false
		}
		for i := range a.metavars {
			if !a.metavars[i].Equal(b.metavars[i]) {
				return false
			}
		}
		return Equal(a.body, b.body)
	default:
		return false
	}
}
