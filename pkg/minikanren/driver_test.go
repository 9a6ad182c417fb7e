package minikanren

import "testing"

func TestTakeZeroReturnsNil(t *testing.T) {
	s := Cons(EmptySubstitution(), Empty)
	if got := Take(0, s); got != nil {
		t.Errorf("Take(0, ...) = %v, want nil", got)
	}
}

func TestTakeFewerThanAvailable(t *testing.T) {
	x := NewVar("x")
	s1, _ := extendSubstitution(x, Num(1), EmptySubstitution())
	s2, _ := extendSubstitution(x, Num(2), EmptySubstitution())
	s3, _ := extendSubstitution(x, Num(3), EmptySubstitution())
	stream := Cons(s1, Cons(s2, Cons(s3, Empty)))
	got := Take(2, stream)
	if len(got) != 2 || got[0] != s1 || got[1] != s2 {
		t.Errorf("Take(2, ...) = %v, want first two answers in order", got)
	}
}

func TestTakeMoreThanAvailableReturnsWhatExists(t *testing.T) {
	s1 := EmptySubstitution()
	stream := Cons(s1, Empty)
	got := Take(5, stream)
	if len(got) != 1 {
		t.Errorf("Take(5, ...) over a 1-answer stream should return 1, got %d", len(got))
	}
}

func TestTakeForcesSuspensions(t *testing.T) {
	s1 := EmptySubstitution()
	stream := Suspend(func() *Stream { return Cons(s1, Empty) })
	got := Take(1, stream)
	if len(got) != 1 || got[0] != s1 {
		t.Error("Take should force a suspension to reach its answer")
	}
}

func TestTakeAllExhaustsFiniteStream(t *testing.T) {
	x := NewVar("x")
	g := Disj(Eq(x, Num(1)), Disj(Eq(x, Num(2)), Eq(x, Num(3))))
	got := TakeAll(g(EmptySubstitution()))
	if len(got) != 3 {
		t.Errorf("TakeAll should yield all 3 answers, got %d", len(got))
	}
}

func TestRunGoalBoundsAnswerCount(t *testing.T) {
	x := NewVar("x")
	g := Disj(Eq(x, Num(1)), Disj(Eq(x, Num(2)), Eq(x, Num(3))))
	got := RunGoal(2, g)
	if len(got) != 2 {
		t.Errorf("RunGoal(2, ...) should yield 2 answers, got %d", len(got))
	}
}

func TestRunGoalAgainstFairInfiniteDisjunct(t *testing.T) {
	// spec.md §8 property 9: an infinite failing branch disjoined with a
	// finite succeeding one must still surface the finite answer.
	var neverSucceeds Goal
	neverSucceeds = Delay(func(s *Substitution) *Stream {
		return neverSucceeds(s)
	})
	x := NewVar("x")
	g := Disj(neverSucceeds, Eq(x, Sym("found")))
	got := RunGoal(1, g)
	if len(got) != 1 {
		t.Fatal("RunGoal(1, ...) should find the finite branch's answer")
	}
	if v := Walk(x, got[0]); !v.Equal(Sym("found")) {
		t.Errorf("x = %v, want :found", v)
	}
}
