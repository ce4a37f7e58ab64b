package simplex

import "strconv"

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the bracket.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma outside of a leaf list. It
// implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating a missing expression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// HeadError is an error indicating a leaf list following something other
// than a symbol. It implements InputError.
type HeadError struct {
	// Col is the position of the open bracket.
	Col int
	// Head is the text before the bracket, empty if there was none.
	Head string
}

func (err *HeadError) Error() string {
	if err.Head == "" {
		return errpos(err.Col, "leaf list with no head")
	}
	return errpos(err.Col, "cannot use "+err.Head+" as a head")
}

func (err *HeadError) Pos() int {
	return err.Col
}

// PatternError is an error indicating a function parameter that is not a
// symbol followed by the pattern marker "_". It implements InputError.
type PatternError struct {
	// Col is the position of the parameter.
	Col int
	// Text is the token found instead.
	Text string
}

func (err *PatternError) Error() string {
	return errpos(err.Col, "invalid pattern parameter "+strconv.Quote(err.Text))
}

func (err *PatternError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token where a different one was
// required. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the unexpected token, empty at the end of input.
	Text string
	// Want describes what was expected.
	Want string
}

func (err *TokenError) Error() string {
	got := strconv.Quote(err.Text)
	if err.Text == "" {
		got = "end of input"
	}
	if err.Want == "" {
		return errpos(err.Col, "unexpected "+got)
	}
	return errpos(err.Col, "unexpected "+got+", want "+err.Want)
}

func (err *TokenError) Pos() int {
	return err.Col
}

// NestingError is an error indicating input nested more deeply than the
// parser allows. It implements InputError.
type NestingError struct {
	// Col is the position of the open bracket that exceeded the limit.
	Col int
	// Limit is the maximum nesting.
	Limit int
}

func (err *NestingError) Error() string {
	return errpos(err.Col, "brackets nested deeper than "+strconv.Itoa(err.Limit))
}

func (err *NestingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*HeadError)(nil)
	_ InputError = (*PatternError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*NestingError)(nil)
	_ InputError = (*LexError)(nil)
)
