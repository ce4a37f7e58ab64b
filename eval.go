package simplex

import (
	"strconv"
)

// DefaultMaxDepth is the nesting depth limit of a new Context.
const DefaultMaxDepth = 1024

// Context is a context for evaluating expressions. It holds function
// definitions, the tracer, and the nesting limit. It is not safe to use a
// Context concurrently; Clone it for each goroutine.
type Context struct {
	defs     map[string]Function
	tracer   Tracer
	maxdepth int
	depth    int
	err      error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	traceopt struct{ t Tracer }
	depthopt int
	defopt   struct{ f Function }
)

func (traceopt) ctxOption() {}
func (depthopt) ctxOption() {}
func (defopt) ctxOption()   {}

// Trace sets the tracer that receives evaluation events. A nil tracer
// disables tracing.
func Trace(t Tracer) ContextOption {
	return traceopt{t}
}

// MaxDepth sets the nesting depth beyond which evaluation stops with a
// DepthError. A limit of zero or less disables the check.
func MaxDepth(n int) ContextOption {
	return depthopt(n)
}

// Define adds a function definition to the context, replacing any definition
// with the same head.
func Define(f Function) ContextOption {
	return defopt{f}
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{maxdepth: DefaultMaxDepth}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		defs:     make(map[string]Function, len(ctx.defs)),
		tracer:   ctx.tracer,
		maxdepth: ctx.maxdepth,
	}
	// Definitions are values, so sharing them is safe.
	for k, v := range ctx.defs {
		n.defs[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case traceopt:
			n.tracer = opt.t
		case depthopt:
			n.maxdepth = int(opt)
		case defopt:
			n.defs[opt.f.head.text] = opt.f
		default:
			panic("simplex: unknown option type")
		}
	}
	return &n
}

// Set adds a function definition. Returns ctx for chaining. Calling Set while
// the context is evaluating an expression panics.
func (ctx *Context) Set(f Function) *Context {
	if ctx.depth > 0 {
		panic("simplex: Set on in-use context")
	}
	if ctx.defs == nil {
		ctx.defs = make(map[string]Function)
	}
	ctx.defs[f.head.text] = f
	return ctx
}

// Lookup returns the function defined with the given head.
func (ctx *Context) Lookup(name string) (Function, bool) {
	f, ok := ctx.defs[name]
	return f, ok
}

// Err returns the error from the last evaluation, if any. Irreducible
// expressions are not errors.
func (ctx *Context) Err() error {
	return ctx.err
}

// Eval folds an expression to a single atom. Atoms evaluate to themselves.
// Arithmetic nodes collapse when every leaf reduces to a number; otherwise
// they are irreducible and the result is false. Lists and function
// definitions are never reducible.
func (ctx *Context) Eval(e Expr) (Atom, bool) {
	ctx.err = nil
	ctx.depth = 0
	return ctx.eval(e)
}

// Eval evaluates n in a new default context.
func (n Node) Eval() (Atom, bool) {
	return NewContext().Eval(n)
}

// Reduce is like Eval, but returns e itself when e is irreducible.
func (ctx *Context) Reduce(e Expr) Expr {
	if a, ok := ctx.Eval(e); ok {
		return a
	}
	return e
}

// Call evaluates a function definition against textual arguments. Each
// argument is classified as an atom before substitution.
func (ctx *Context) Call(f Function, args []string) Node {
	ctx.err = nil
	vals := make([]Expr, len(args))
	for i, s := range args {
		if a, ok := ParseAtom(s); ok {
			vals[i] = a
			continue
		}
		// Leave a hole; the matching meta-variable stays unsubstituted.
		ctx.trace(Event{Kind: EventUnparsed, Expr: f, Text: s})
	}
	return ctx.call(f, vals)
}

// Apply evaluates n as a call to the function definition named by its head,
// using its leaves as the arguments. The result is false if there is no such
// definition.
func (ctx *Context) Apply(n Node) (Node, bool) {
	ctx.err = nil
	if !n.head.IsSymbol() {
		return Node{}, false
	}
	f, ok := ctx.defs[n.head.text]
	if !ok {
		return Node{}, false
	}
	r := ctx.call(f, n.leaves)
	ctx.trace(Event{Kind: EventApply, Expr: n, Result: r})
	return r, true
}

// call substitutes args into a copy of f's body. Meta-variables are matched
// from last to first against args popped from the end, so surplus leading
// arguments are ignored and surplus leading meta-variables stay in the body.
// Nil arguments are skipped.
//
// Substitution walks the body and the arguments recursively. If either nests
// deeper than the context's depth limit, call records a DepthError and returns
// the body unsubstituted. Without a limit, the recursion is bounded only by how
// the expressions were built, which for parsed input is MaxNesting.
func (ctx *Context) call(f Function, args []Expr) Node {
	body := f.body
	if ctx.maxdepth > 0 && tooDeep(body, args, ctx.maxdepth) {
		ctx.err = &DepthError{Limit: ctx.maxdepth}
		ctx.trace(Event{Kind: EventDepth, Expr: f, Depth: ctx.maxdepth + 1})
		return body
	}
	if f.reflexive {
		body = body.Replace(Sym(ListHead), f.head)
		ctx.trace(Event{Kind: EventReflexive, Expr: f, Result: body})
	}
	for i := len(f.metavars) - 1; i >= 0 && len(args) > 0; i-- {
		m := f.metavars[i]
		a := args[len(args)-1]
		args = args[:len(args)-1]
		if a == nil {
			continue
		}
		body = body.Replace(m, a)
		ctx.trace(Event{Kind: EventSubstitute, Expr: f, Name: m.text, Result: a})
	}
	return body
}

// tooDeep reports whether body or any of args nests more than limit levels.
func tooDeep(body Node, args []Expr, limit int) bool {
	if deeper(body, limit) {
		return true
	}
	for _, a := range args {
		if deeper(a, limit) {
			return true
		}
	}
	return false
}

// deeper reports whether e nests more than limit levels of nodes. It stops
// descending once the limit is passed.
func deeper(e Expr, limit int) bool {
	n, ok := e.(Node)
	if !ok {
		return false
	}
	if limit <= 0 {
		return true
	}
	for _, l := range n.leaves {
		if deeper(l, limit-1) {
			return true
		}
	}
	return false
}

func (ctx *Context) eval(e Expr) (Atom, bool) {
	switch e := e.(type) {
	case Atom:
		return e, true
	case Node:
		if op, ok := operators[e.kind]; ok {
			return ctx.fold(e, op)
		}
		if f, ok := builtins[e.kind]; ok {
			return ctx.apply1(e, f)
		}
		return Atom{}, false
	default:
		return Atom{}, false
	}
}

// enter records one more level of nesting. It returns false if the level
// exceeds the limit.
func (ctx *Context) enter(e Expr) bool {
	ctx.depth++
	if ctx.maxdepth > 0 && ctx.depth > ctx.maxdepth {
		ctx.err = &DepthError{Limit: ctx.maxdepth}
		ctx.trace(Event{Kind: EventDepth, Expr: e, Depth: ctx.depth})
		return false
	}
	return true
}

func (ctx *Context) leave() {
	ctx.depth--
}

func (ctx *Context) trace(ev Event) {
	if ctx.tracer == nil {
		return
	}
	if ev.Depth == 0 {
		ev.Depth = ctx.depth
	}
	ctx.tracer(ev)
}

// DepthError is an error from evaluating an expression nested deeper than the
// context allows.
type DepthError struct {
	// Limit is the maximum depth.
	Limit int
}

func (err *DepthError) Error() string {
	return "expression nested deeper than " + strconv.Itoa(err.Limit) + " levels"
}
