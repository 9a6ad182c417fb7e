package minikanren

import "testing"

func TestWalkAllGround(t *testing.T) {
	term := NewSeq(Num(1), Num(2))
	got := WalkAll(term, EmptySubstitution())
	if !got.Equal(term) {
		t.Errorf("WalkAll of a ground term should return it unchanged, got %v", got)
	}
}

func TestWalkAllDescendsIntoSeq(t *testing.T) {
	x := NewVar("x")
	s, err := extendSubstitution(x, Sym("olive"), EmptySubstitution())
	if err != nil {
		t.Fatal(err)
	}
	term := NewSeq(x, Num(1))
	got := WalkAll(term, s)
	want := NewSeq(Sym("olive"), Num(1))
	if !got.Equal(want) {
		t.Errorf("WalkAll(term, s) = %v, want %v", got, want)
	}
}

func TestWalkAllDescendsIntoTuple(t *testing.T) {
	x := NewVar("x")
	s, err := extendSubstitution(x, Sym("olive"), EmptySubstitution())
	if err != nil {
		t.Fatal(err)
	}
	got := WalkAll(NewTuple(x, Num(1)), s)
	want := NewTuple(Sym("olive"), Num(1))
	if !got.Equal(want) {
		t.Errorf("WalkAll(tuple, s) = %v, want %v", got, want)
	}
}

func TestReifyStableNamingOrder(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	term := NewSeq(y, x, y)
	got := Reify(term)(EmptySubstitution())
	want := NewSeq(Sym("_0"), Sym("_1"), Sym("_0"))
	if !got.Equal(want) {
		t.Errorf("Reify should name unbound vars in first-encounter order and reuse names for repeats, got %v want %v", got, want)
	}
}

func TestReifyGroundTermUnaffected(t *testing.T) {
	term := NewSeq(Sym("a"), Num(1))
	got := Reify(term)(EmptySubstitution())
	if !got.Equal(term) {
		t.Errorf("Reify of an all-ground term should return it unchanged, got %v", got)
	}
}

func TestReifyPartialBinding(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	s, err := extendSubstitution(x, Sym("olive"), EmptySubstitution())
	if err != nil {
		t.Fatal(err)
	}
	term := NewSeq(x, y)
	got := Reify(term)(s)
	want := NewSeq(Sym("olive"), Sym("_0"))
	if !got.Equal(want) {
		t.Errorf("Reify(term)(s) = %v, want %v", got, want)
	}
}
