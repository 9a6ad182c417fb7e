package minikanren

// Goal is a pure function from a substitution to a lazy stream of
// substitutions (spec.md §3). Goals never mutate their input and never
// raise — failure is simply the empty stream (spec.md §7).
type Goal func(s *Substitution) *Stream

// Succeed is the goal that always succeeds with its input substitution
// unchanged.
func Succeed(s *Substitution) *Stream {
	return Cons(s, Empty)
}

// Failure is the goal that always fails.
func Failure(s *Substitution) *Stream {
	return Empty
}

// Eq builds a goal that unifies u and v. Grounded on the teacher's
// primitives.go Eq, stripped of the ConstraintStore/context.Context
// plumbing the teacher's (non-goal) constraint system requires.
func Eq(u, v Term) Goal {
	return func(s *Substitution) *Stream {
		s2, err := Unify(u, v, s)
		if err != nil {
			return Empty
		}
		return Cons(s2, Empty)
	}
}

// Disj builds the goal that succeeds wherever g1 or g2 does, with
// fair interleaving of their answer streams (spec.md §4.F, §4.E).
func Disj(g1, g2 Goal) Goal {
	return func(s *Substitution) *Stream {
		return appendStream(g1(s), g2(s))
	}
}

// Conj builds the goal that succeeds wherever g1 and g2 both do: every
// answer of g1 seeds a fresh evaluation of g2, and the resulting streams
// are concatenated fairly (spec.md §4.F, §4.E).
func Conj(g1, g2 Goal) Goal {
	return func(s *Substitution) *Stream {
		return appendMapStream(g2, g1(s))
	}
}

// CallFresh mints a fresh variable named name and applies f to it to
// obtain the goal to run. Every invocation of the returned Goal mints a
// new variable — this is the only way fresh variables enter a search
// (spec.md §4.F).
func CallFresh(name string, f func(*Var) Goal) Goal {
	return func(s *Substitution) *Stream {
		v := NewVar(name)
		return f(v)(s)
	}
}

// Delay defers running g until its stream is forced, by wrapping the
// call in a Suspension. None of Eq/Succeed/Failure/Disj/Conj/CallFresh
// introduce non-strictness on their own — spec.md §9 says "Suspensions
// are the only source of non-strictness" but leaves where they come
// from to the implementation. Classic miniKanren inserts exactly this
// wrapping (there called Zzz) around every recursive relation call, so
// that an infinite or deeply recursive relation produces a Suspension
// shape at each step instead of recursing through Go's call stack
// eagerly — which is what keeps Disj/Conj's fair interleaving
// (spec.md §4.E/§5, §8 property 9) actually reachable for self-
// recursive relations. relations.go uses this at every recursive call.
func Delay(g Goal) Goal {
	return func(s *Substitution) *Stream {
		return Suspend(func() *Stream {
			return g(s)
		})
	}
}
