package simplex

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// isNumericLiteral reports whether s is a decimal number: an optional sign,
// digits with at most one decimal point, and an optional exponent. A signed
// "Inf" is also numeric. Unsigned "Inf" is a symbol.
func isNumericLiteral(s string) bool {
	if s == "" {
		return false
	}
	signed := s[0] == '+' || s[0] == '-'
	if signed {
		s = s[1:]
		if s == "Inf" || s == "inf" {
			return true
		}
	}
	var dig, dot, e, ed bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.':
			if dot || e {
				return false
			}
			dot = true
		case 'e', 'E':
			if !dig || e {
				return false
			}
			e = true
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				i++
			}
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
		default:
			return false
		}
	}
	return dig && (!e || ed)
}

// isTextLiteral reports whether s is a double-quoted Go string literal.
func isTextLiteral(s string) bool {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return false
	}
	_, err := strconv.Unquote(s)
	return err == nil
}

// isSymbolLiteral reports whether s is a symbol name. Symbols begin with a
// letter or $ and continue with letters, digits, and $. A backquote separates
// contexts, as in Simplex`Atom, and must be followed by a letter.
func isSymbolLiteral(s string) bool {
	if s == "" {
		return false
	}
	start := true
	for _, r := range s {
		switch {
		case r == '$', unicode.IsLetter(r):
			start = false
		case unicode.IsDigit(r):
			if start {
				return false
			}
		case r == '`':
			if start {
				return false
			}
			start = true
		default:
			return false
		}
	}
	return !start
}

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer or real literal.
	tokenNum
	// tokenString is a quoted text literal, including its quotes.
	tokenString
	// tokenSymbol is a symbol name.
	tokenSymbol
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
	// tokenSep is the leaf separator ",".
	tokenSep
	// tokenBlank is the pattern marker "_".
	tokenBlank
	// tokenDefine is the definition operator ":=".
	tokenDefine
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("simplex: double push")
	}
	l.p = tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. Whitespace runes in wseof end the
// input as if by EOF. The first time EOF is encountered before any
// non-whitespace characters, the result is an EOF token with a nil error.
// Subsequent times, if the EOF token is not pushed, the result is an empty
// token with io.EOF.
func (l *lexer) next(wseof string) (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.', r == '+', r == '-':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '$', unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanSymbol(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenSymbol
			return tok, nil
		case r == '"':
			l.unreadRune()
			if err := l.scanString(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenString
			return tok, nil
		case r == '[':
			tok.text = "["
			tok.kind = tokenOpen
			return tok, nil
		case r == ']':
			tok.text = "]"
			tok.kind = tokenClose
			return tok, nil
		case r == ',':
			tok.text = ","
			tok.kind = tokenSep
			return tok, nil
		case r == '_':
			tok.text = "_"
			tok.kind = tokenBlank
			return tok, nil
		case r == ':':
			l.buf.WriteRune(r)
			r, err := l.readRune()
			if err == nil {
				if r == '=' {
					tok.text = ":="
					tok.kind = tokenDefine
					return tok, nil
				}
				l.unreadRune()
			}
			return tok, l.error("operator")
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans a maximal run of number-like runes and checks that it is a
// numeric literal.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '.' || r == '+' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			l.buf.WriteRune(r)
			continue
		}
		l.unreadRune()
		break
	}
	if !isNumericLiteral(l.buf.String()) {
		return l.error("number")
	}
	return nil
}

func (l *lexer) scanSymbol() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '$' || r == '`' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			l.buf.WriteRune(r)
			continue
		}
		l.unreadRune()
		break
	}
	if !isSymbolLiteral(l.buf.String()) {
		return l.error("symbol")
	}
	return nil
}

// scanString scans a quoted literal up to its closing quote.
func (l *lexer) scanString() error {
	var esc bool
	for n := 0; ; n++ {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.error("string")
			}
			return err
		}
		if r == '\n' {
			return l.error("string")
		}
		l.buf.WriteRune(r)
		switch {
		case esc:
			esc = false
		case r == '\\':
			esc = true
		case r == '"' && n > 0:
			if !isTextLiteral(l.buf.String()) {
				return l.error("string")
			}
			return nil
		}
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "symbol", "string", "operator", or the empty string (if a token kind
	// hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
