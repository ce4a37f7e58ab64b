package simplex

import "testing"

func TestApplyTextHead(t *testing.T) {
	ctx := NewContext(Define(NewFunction("f").AppendMetaVariable(Sym("a")).Append(Sym("a"))))
	n := Node{kind: KindList, head: Text("f"), leaves: []Expr{Int(1)}}
	if r, ok := ctx.Apply(n); ok {
		t.Errorf("text head applied to %v", r)
	}
	n.head = Sym("f")
	if r, ok := ctx.Apply(n); !ok || r.String() != "List[1]" {
		t.Errorf("symbol head: %v, %t", r, ok)
	}
}

func TestDeeper(t *testing.T) {
	if deeper(Int(1), 0) {
		t.Error("atom is deeper than 0")
	}
	e := List(List(List(Int(1))))
	for limit := 0; limit < 5; limit++ {
		if got := deeper(e, limit); got != (limit < 3) {
			t.Errorf("limit %d: got %t", limit, got)
		}
	}
}
