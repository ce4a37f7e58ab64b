package simplex

import (
	"io"
	"strconv"
	"strings"
)

// Expr = num | string | symbol | symbol '[' [ Expr { ',' Expr } ] ']'
// Def  = symbol '[' [ symbol '_' { ',' symbol '_' } ] ']' ':=' Node

// Parse reads one expression in the canonical Head[leaf, ...] form from src.
// Text following the expression, other than whitespace, is an error.
func Parse(src io.RuneScanner, opts ...ParseOption) (Expr, error) {
	p := newparsectx(opts)
	scan := lex(src)
	e, err := parseexpr(scan, &p, p.wseof)
	if err != nil {
		return nil, err
	}
	if err := parseend(scan, &p); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// ParseFunction reads a function definition, as rendered by Function.String,
// from src. The result is never reflexive.
func ParseFunction(src io.RuneScanner, opts ...ParseOption) (Function, error) {
	p := newparsectx(opts)
	scan := lex(src)
	tok, err := scan.next(p.wseof)
	if err != nil {
		return Function{}, err
	}
	switch tok.kind {
	case tokenSymbol: // do nothing
	case tokenEOF:
		return Function{}, &EmptyExpressionError{Col: tok.pos}
	default:
		return Function{}, &HeadError{Col: tok.pos, Head: tok.text}
	}
	f := NewFunction(tok.text)
	open, err := scan.next("")
	if err != nil {
		return Function{}, err
	}
	if open.kind != tokenOpen {
		return Function{}, &TokenError{Col: open.pos, Text: open.text, Want: `"["`}
	}
	if f.metavars, err = parsepatterns(scan); err != nil {
		return Function{}, err
	}
	tok, err = scan.next("")
	if err != nil {
		return Function{}, err
	}
	if tok.kind != tokenDefine {
		return Function{}, &TokenError{Col: tok.pos, Text: tok.text, Want: `":="`}
	}
	next, err := scan.next("")
	if err != nil {
		return Function{}, err
	}
	scan.push(next)
	body, err := parseexpr(scan, &p, p.wseof)
	if err != nil {
		return Function{}, err
	}
	n, ok := body.(Node)
	if !ok {
		return Function{}, &TokenError{Col: next.pos, Text: body.String(), Want: "node body"}
	}
	f.body = n
	if err := parseend(scan, &p); err != nil {
		return Function{}, err
	}
	return f, nil
}

// ParseFunctionString is a shortcut to parse a function definition from a
// string.
func ParseFunctionString(src string, opts ...ParseOption) (Function, error) {
	return ParseFunction(strings.NewReader(src), opts...)
}

// parseend checks that nothing follows a complete top-level expression.
func parseend(scan *lexer, p *parsectx) error {
	tok, err := scan.next(p.wseof)
	if err != nil {
		return err
	}
	if tok.kind != tokenEOF {
		return &TokenError{Col: tok.pos, Text: tok.text, Want: "end of expression"}
	}
	return nil
}

// parseexpr parses one expression. wseof is passed to the lexer outside of
// brackets.
func parseexpr(scan *lexer, p *parsectx, wseof string) (Expr, error) {
	tok, err := scan.next(wseof)
	if err != nil {
		return nil, err
	}
	var a Atom
	switch tok.kind {
	case tokenNum:
		a = Num(ParseNumeric(tok.text))
	case tokenString:
		s, err := strconv.Unquote(tok.text)
		if err != nil {
			panic("simplex: lexer accepted invalid string " + tok.text)
		}
		a = Text(s)
	case tokenSymbol:
		a = Sym(tok.text)
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	case tokenClose:
		if p.nest > 0 {
			return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
		}
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	case tokenSep:
		if p.nest > 0 {
			return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
		}
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenOpen:
		return nil, &HeadError{Col: tok.pos}
	case tokenBlank, tokenDefine:
		return nil, &TokenError{Col: tok.pos, Text: tok.text, Want: "expression"}
	default:
		panic("simplex: unknown token: " + tok.String())
	}
	open, err := scan.next(wseof)
	if err != nil {
		return nil, err
	}
	if open.kind != tokenOpen {
		scan.push(open)
		return a, nil
	}
	if !a.IsSymbol() {
		return nil, &HeadError{Col: open.pos, Head: tok.text}
	}
	return parseleaves(scan, p, a.text, open)
}

// parseleaves parses the leaves of a node after its open bracket.
func parseleaves(scan *lexer, p *parsectx, head string, open lexToken) (Node, error) {
	p.nest++
	defer func() { p.nest-- }()
	if p.maxnest > 0 && p.nest > p.maxnest {
		return Node{}, &NestingError{Col: open.pos, Limit: p.maxnest}
	}
	n := NewNode(head)
	tok, err := scan.next("")
	if err != nil {
		return Node{}, err
	}
	if tok.kind == tokenClose {
		return n, nil
	}
	scan.push(tok)
	var leaves []Expr
	for {
		e, err := parseexpr(scan, p, "")
		if err != nil {
			return Node{}, err
		}
		leaves = append(leaves, e)
		tok, err := scan.next("")
		if err != nil {
			return Node{}, err
		}
		switch tok.kind {
		case tokenSep: // continue
		case tokenClose:
			n.leaves = leaves
			return n, nil
		case tokenEOF:
			return Node{}, &BracketError{Col: open.pos, Left: open.text}
		default:
			return Node{}, &TokenError{Col: tok.pos, Text: tok.text, Want: `"," or "]"`}
		}
	}
}

// parsepatterns parses the meta-variables of a definition after the open
// bracket, through the close bracket.
func parsepatterns(scan *lexer) ([]Atom, error) {
	var r []Atom
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenClose {
		return nil, nil
	}
	for {
		if tok.kind != tokenSymbol {
			return nil, &PatternError{Col: tok.pos, Text: tok.text}
		}
		blank, err := scan.next("")
		if err != nil {
			return nil, err
		}
		if blank.kind != tokenBlank {
			return nil, &PatternError{Col: tok.pos, Text: tok.text}
		}
		r = append(r, Sym(tok.text))
		end, err := scan.next("")
		if err != nil {
			return nil, err
		}
		switch end.kind {
		case tokenSep: // continue
		case tokenClose:
			return r, nil
		case tokenEOF:
			return nil, &BracketError{Col: end.pos, Left: "["}
		default:
			return nil, &TokenError{Col: end.pos, Text: end.text, Want: `"," or "]"`}
		}
		if tok, err = scan.next(""); err != nil {
			return nil, err
		}
	}
}
