package simplex

import (
	"strconv"
	"unicode"
)

// DefaultMaxNesting is the bracket nesting limit of the parser.
const DefaultMaxNesting = 1024

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	eofopt  struct{ ws string }
	nestopt int
)

// parsectx holds general data for parsing.
type parsectx struct {
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer after a complete top-level expression.
	wseof string
	// maxnest is the bracket nesting limit, or zero for none.
	maxnest int
	// nest is the current bracket nesting.
	nest int
}

// StopOn tells the parser to treat a list of whitespace characters as ending
// the expression. Whitespace does not end an expression inside brackets, so
// StopOn('\n') reads one expression per line while still allowing a leaf
// list to span lines.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("simplex: cannot stop on " + strconv.QuoteRune(r))
		}
		if !have(r) {
			v = append(v, r)
		}
	}
	return eofopt{string(v)}
}

func (o eofopt) parseOption(p parsectx) parsectx {
	p.wseof = o.ws
	return p
}

// MaxNesting sets the bracket nesting limit. A limit of zero or less disables
// the check.
func MaxNesting(n int) ParseOption {
	return nestopt(n)
}

func (o nestopt) parseOption(p parsectx) parsectx {
	p.maxnest = int(o)
	if p.maxnest < 0 {
		p.maxnest = 0
	}
	return p
}

func newparsectx(opts []ParseOption) parsectx {
	p := parsectx{maxnest: DefaultMaxNesting}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}
