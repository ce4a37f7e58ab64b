package simplex

import (
	"log"
	"strconv"
	"strings"
)

// Tracer receives events from evaluation. Tracers are called synchronously
// and must not use the Context that produced the event.
type Tracer func(Event)

// EventKind identifies the point in evaluation at which an Event occurred.
type EventKind int8

const (
	EventNone EventKind = iota

	EventFold        // Expr collapsed to the atom Result
	EventIrreducible // Expr did not collapse; Result is the discarded partial fold
	EventReflexive   // List heads in Expr's body became its head; Result is the body
	EventSubstitute  // meta-variable Name of Expr became Result
	EventUnparsed    // argument Text for Expr is not an atom
	EventApply       // node Expr was applied as a definition, giving Result
	EventDepth       // Expr is nested deeper than the limit
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=EventKind -trimprefix=Event
//go:generate go mod tidy

// Event describes one step of evaluation.
type Event struct {
	Kind EventKind
	// Expr is the expression or definition being evaluated.
	Expr Expr
	// Result is the value produced by the step, if any.
	Result Expr
	// Name is the meta-variable involved in a substitution.
	Name string
	// Text is the raw argument of an EventUnparsed.
	Text string
	// Depth is the nesting depth at which the event occurred.
	Depth int
}

func (ev Event) String() string {
	var b strings.Builder
	b.WriteString(ev.Kind.String())
	b.WriteString(" @")
	b.WriteString(strconv.Itoa(ev.Depth))
	if ev.Expr != nil {
		b.WriteByte(' ')
		b.WriteString(ev.Expr.String())
	}
	if ev.Name != "" {
		b.WriteString(" " + ev.Name + "_")
	}
	if ev.Text != "" {
		b.WriteString(" " + strconv.Quote(ev.Text))
	}
	if ev.Result != nil {
		b.WriteString(" -> ")
		b.WriteString(ev.Result.String())
	}
	return b.String()
}

// LogTracer returns a tracer that prints each event to l.
func LogTracer(l *log.Logger) Tracer {
	return func(ev Event) {
		l.Print(ev.String())
	}
}
