package simplex

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"x",
		"42",
		"-7",
		"2.5",
		`"hi"`,
		`"a\"b"`,
		"List[]",
		`Plus[1, x, Subtract[2, "s"]]`,
		"Plus[Pow[a, 2], Pow[b, 2]]",
		"f[2.5, -3, +Inf]",
		"Simplex`Atom[List[List[]]]",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			e, err := ParseString(src)
			if err != nil {
				t.Fatalf("%q: %v", src, err)
			}
			if got := e.String(); got != src {
				t.Errorf("want %s, got %s", src, got)
			}
		})
	}
}

func TestParseStructure(t *testing.T) {
	x := Sym("x")
	cases := []struct {
		src  string
		want Expr
	}{
		{" Plus[ 1 ,2 ] ", Plus(Int(1), Int(2))},
		{"Plus[\n\t1,\n\t2\n]", Plus(Int(1), Int(2))},
		{"100.000", Int(100)},
		{"List[x, List[x]]", List(x, List(x))},
		{`Times["x", x]`, NewNode("Times", Text("x"), x)},
	}
	for _, c := range cases {
		e, err := ParseString(c.src)
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if !Equal(e, c.want) {
			t.Errorf("%q: want %v, got %v", c.src, c.want, e)
		}
		if n, ok := c.want.(Node); ok && e.Kind() != n.Kind() {
			t.Errorf("%q: want kind %v, got %v", c.src, n.Kind(), e.Kind())
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src  string
		want InputError
		pos  int
	}{
		{"", &EmptyExpressionError{}, 1},
		{"   ", &EmptyExpressionError{}, 4},
		{"Plus[1, 2", &BracketError{}, 5},
		{"]", &BracketError{}, 1},
		{"1[2]", &HeadError{}, 2},
		{`"s"[1]`, &HeadError{}, 4},
		{"[1]", &HeadError{}, 1},
		{"Plus[1,]", &EmptyExpressionError{}, 8},
		{"Plus[,1]", &EmptyExpressionError{}, 6},
		{",", &SeparatorError{}, 1},
		{"x y", &TokenError{}, 3},
		{"Plus[1 2]", &TokenError{}, 8},
		{"Plus[1]]", &TokenError{}, 8},
		{"a_", &TokenError{}, 2},
		{":= x", &TokenError{}, 1},
		{"1a", &LexError{}, 3},
		{"Plus[@]", &LexError{}, 7},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			e, err := ParseString(c.src)
			if err == nil {
				t.Fatalf("%q: no error, got %v", c.src, e)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.want) {
				t.Errorf("%q: want %T, got %T (%v)", c.src, c.want, err, err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: %v is not an InputError", c.src, err)
			}
			if ie.Pos() != c.pos {
				t.Errorf("%q: want position %d, got %d (%v)", c.src, c.pos, ie.Pos(), err)
			}
		})
	}
}

func TestParseNesting(t *testing.T) {
	src := "List[List[List[1]]]"
	if _, err := ParseString(src, MaxNesting(3)); err != nil {
		t.Errorf("nesting 3 with limit 3: %v", err)
	}
	_, err := ParseString(src, MaxNesting(2))
	var ne *NestingError
	if !errors.As(err, &ne) {
		t.Fatalf("want NestingError, got %v", err)
	}
	if ne.Limit != 2 || ne.Col != 15 {
		t.Errorf("wrong error %+v", ne)
	}
	deep := strings.Repeat("List[", DefaultMaxNesting+1) + strings.Repeat("]", DefaultMaxNesting+1)
	if _, err := ParseString(deep); !errors.As(err, &ne) {
		t.Errorf("want NestingError past the default limit, got %v", err)
	}
	if _, err := ParseString(deep, MaxNesting(0)); err != nil {
		t.Errorf("unlimited nesting: %v", err)
	}
}

func TestStopOn(t *testing.T) {
	r := strings.NewReader("Plus[1,\n2]\nx\n\nList[]")
	want := []string{"Plus[1, 2]", "x"}
	for _, w := range want {
		e, err := Parse(r, StopOn('\n'))
		if err != nil {
			t.Fatalf("want %s, got error %v", w, err)
		}
		if e.String() != w {
			t.Errorf("want %s, got %v", w, e)
		}
	}
	if _, err := Parse(r, StopOn('\n')); !errors.As(err, new(*EmptyExpressionError)) {
		t.Errorf("blank line: want EmptyExpressionError, got %v", err)
	}
	e, err := Parse(r, StopOn('\n'))
	if err != nil || e.String() != "List[]" {
		t.Errorf("last line: %v, %v", e, err)
	}
	if _, err := ParseString("x\ny"); err == nil {
		t.Error("newline ended the expression without StopOn")
	}
}

func TestStopOnPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	StopOn('x')
}

func TestParseFunction(t *testing.T) {
	cases := []struct {
		src  string
		want string
		args []string
		eval string
	}{
		{"Plus[a_, b_, c_] := List[a, x, y, z]", "Plus[a_, b_, c_] := List[a, x, y, z]", []string{"1", "2", "3"}, "List[1, x, y, z]"},
		{"f[] := List[]", "f[] := List[]", nil, "List[]"},
		{"Sq[x_]:=Times[x,x]", "Sq[x_] := Times[x, x]", []string{"3"}, "Times[3, 3]"},
		{"g[ s_ ] := List[ \"s\", s ]", `g[s_] := List["s", s]`, []string{`"t"`}, `List["s", "t"]`},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			f, err := ParseFunctionString(c.src)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if f.Reflexive() {
				t.Errorf("%q: parsed as reflexive", c.src)
			}
			if got := f.String(); got != c.want {
				t.Errorf("want %s, got %s", c.want, got)
			}
			if got := f.Evaluate(c.args).String(); got != c.eval {
				t.Errorf("evaluate: want %s, got %s", c.eval, got)
			}
		})
	}
}

func TestParseFunctionErrors(t *testing.T) {
	cases := []struct {
		src  string
		want InputError
	}{
		{"", &EmptyExpressionError{}},
		{"1[a_] := List[]", &HeadError{}},
		{"f := List[]", &TokenError{}},
		{"f[a] := List[a]", &PatternError{}},
		{"f[1_] := List[]", &PatternError{}},
		{"f[a_ b_] := List[]", &TokenError{}},
		{"f[a_", &BracketError{}},
		{"f[a_] List[a]", &TokenError{}},
		{"f[a_] := a", &TokenError{}},
		{"f[a_] := List[a] x", &TokenError{}},
		{"f[a_] := ", &EmptyExpressionError{}},
		{"f[a_] :List", &LexError{}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			f, err := ParseFunctionString(c.src)
			if err == nil {
				t.Fatalf("%q: no error, got %v", c.src, f)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.want) {
				t.Errorf("%q: want %T, got %T (%v)", c.src, c.want, err, err)
			}
		})
	}
}
