package simplex

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/zephyrtronium/bigfloat"
)

// operator describes how an arithmetic node folds its numeric leaves.
type operator struct {
	// identity is the initial value of the accumulator.
	identity Numeric
	// combine folds x, the value of leaf i, into acc.
	combine func(acc, x Numeric, i int) Numeric
	// right is whether leaves fold from last to first.
	right bool
}

var operators = map[Kind]operator{
	KindPlus: {
		identity: IntNumeric(0),
		combine:  func(acc, x Numeric, i int) Numeric { return acc.Add(x) },
	},
	KindSubtract: {
		identity: IntNumeric(0),
		combine: func(acc, x Numeric, i int) Numeric {
			if i == 0 {
				return acc.Add(x)
			}
			return acc.Sub(x)
		},
	},
	KindTimes: {
		identity: IntNumeric(1),
		combine:  func(acc, x Numeric, i int) Numeric { return acc.Mul(x) },
	},
	KindDivide: {
		identity: IntNumeric(1),
		combine: func(acc, x Numeric, i int) Numeric {
			if i == 0 {
				return acc.Mul(x)
			}
			return acc.Div(x)
		},
	},
	KindPower: {
		identity: IntNumeric(1),
		combine:  func(acc, x Numeric, i int) Numeric { return x.Pow(acc) },
		right:    true,
	},
}

// fold reduces an arithmetic node. Numeric leaves, and nested nodes that
// evaluate to numbers, combine into an accumulator. Anything else is kept. If
// only the accumulator remains, it is the result; otherwise the node is
// irreducible and the partial fold is discarded.
func (ctx *Context) fold(n Node, op operator) (Atom, bool) {
	if !ctx.enter(n) {
		return Atom{}, false
	}
	defer ctx.leave()
	acc := op.identity
	kept := make([]Expr, 0, 1)
	for k := range n.leaves {
		i := k
		if op.right {
			i = len(n.leaves) - 1 - k
		}
		switch l := n.leaves[i].(type) {
		case Atom:
			if x, ok := l.AsNumeric(); ok {
				acc = op.combine(acc, x, i)
				continue
			}
			kept = append(kept, l)
		case Node:
			v, ok := ctx.eval(l)
			if ctx.err != nil {
				return Atom{}, false
			}
			if !ok {
				// Keep the original subtree, not its partial fold.
				kept = append(kept, l)
				continue
			}
			if x, ok := v.AsNumeric(); ok {
				acc = op.combine(acc, x, i)
				continue
			}
			kept = append(kept, v)
		default:
			kept = append(kept, l)
		}
	}
	kept = append(kept, Num(acc))
	if len(kept) != 1 {
		ctx.trace(Event{Kind: EventIrreducible, Expr: n, Result: Node{kind: n.kind, head: n.head, leaves: kept}})
		return Atom{}, false
	}
	switch r := kept[0].(type) {
	case Atom:
		ctx.trace(Event{Kind: EventFold, Expr: n, Result: r})
		return r, true
	case Node:
		return ctx.eval(r)
	default:
		return Atom{}, false
	}
}

// Past these bounds the result of Exp is outside the range of a Real.
var (
	expMax = apd.New(15000, 0)
	expMin = apd.New(-15000, 0)
)

// builtins are the numeric functions of one argument.
var builtins = map[Kind]func(Numeric) Numeric{
	KindExp: func(x Numeric) Numeric {
		x = x.Simplify()
		if x.IsNaN() {
			return x
		}
		r := x.real()
		switch {
		case r.Cmp(expMin) < 0:
			return IntNumeric(0)
		case r.Cmp(expMax) > 0:
			return inf(false)
		}
		return transcendental(bigfloat.Exp)(x)
	},
	KindLog: func(x Numeric) Numeric {
		if x.IsNaN() {
			return x
		}
		switch x.real().Sign() {
		case -1:
			return NaN()
		case 0:
			return inf(true)
		}
		if infinite(x) {
			return x
		}
		return transcendental(bigfloat.Log)(x)
	},
	KindSqrt: func(x Numeric) Numeric {
		x = x.Simplify()
		if x.IsNaN() {
			return x
		}
		r := x.real()
		if r.Sign() < 0 {
			return NaN()
		}
		if infinite(x) {
			return x
		}
		d := new(apd.Decimal)
		if _, err := decctx.Sqrt(d, r); err != nil {
			return NaN()
		}
		return fromDecimal(d).Simplify()
	},
}

// transcendental wraps a big.Float function of one variable. f must set out
// to its result at out's precision. x must be finite.
func transcendental(f func(out, in *big.Float) *big.Float) func(Numeric) Numeric {
	return func(x Numeric) Numeric {
		x = x.Simplify()
		if x.kind == numNaN {
			return x
		}
		in := toBig(x.real())
		return guard(func() *big.Float {
			return f(new(big.Float).SetPrec(binPrec), in)
		})
	}
}

// infinite returns whether x is an infinite Real.
func infinite(x Numeric) bool {
	return x.kind == numReal && x.r.Form == apd.Infinite
}

// apply1 evaluates a one-argument builtin node. The node is irreducible
// unless it has exactly one leaf and that leaf reduces to a number.
func (ctx *Context) apply1(n Node, f func(Numeric) Numeric) (Atom, bool) {
	if !ctx.enter(n) {
		return Atom{}, false
	}
	defer ctx.leave()
	if len(n.leaves) == 1 {
		v, ok := ctx.eval(n.leaves[0])
		if ctx.err != nil {
			return Atom{}, false
		}
		if x, isnum := v.AsNumeric(); ok && isnum {
			r := Num(f(x))
			ctx.trace(Event{Kind: EventFold, Expr: n, Result: r})
			return r, true
		}
	}
	ctx.trace(Event{Kind: EventIrreducible, Expr: n, Result: n})
	return Atom{}, false
}
