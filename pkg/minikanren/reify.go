package minikanren

import "fmt"

// WalkAll performs a deep walk: Walk(v, s) first, then recurses into
// every child of a composite result (spec.md §4.H). Unlike Walk, it
// descends into Seq/Tuple/Map, which is what makes its output safe to
// hand to a host as a plain ground-or-placeholder value.
//
// walk_all over Tuple is not defined by spec.md's source material; it
// is extended here by analogy to Seq, per spec.md §9.
func WalkAll(v Term, s *Substitution) Term {
	w := Walk(v, s)
	switch t := w.(type) {
	case *Seq:
		if t.Empty() {
			return t
		}
		return NewCons(WalkAll(t.Head(), s), WalkAll(t.Tail(), s))
	case *Tuple:
		items := make([]Term, len(t.Items))
		for i, item := range t.Items {
			items[i] = WalkAll(item, s)
		}
		return &Tuple{Items: items}
	case *Map:
		pairs := make([][2]Term, 0, len(t.entries))
		for _, k := range t.sortedKeys() {
			e := t.entries[k]
			pairs = append(pairs, [2]Term{e.key, WalkAll(e.value, s)})
		}
		return NewMap(pairs...)
	default:
		return w
	}
}

// reifyName produces the display name for the k-th still-unbound
// variable encountered during reification (spec.md §4.H).
func reifyName(k int) Sym {
	return Sym(fmt.Sprintf("_%d", k))
}

// ReifyS walks v under r, extending r with a placeholder binding
// (var -> Sym("_k")) for every unbound variable it encounters, in
// left-to-right order, where k is the current size of r at the moment
// that variable is first seen. Composites recurse left to right, so
// naming order matches a left-to-right reading of v (spec.md §4.H).
func ReifyS(v Term, r *Substitution) *Substitution {
	w := Walk(v, r)
	switch t := w.(type) {
	case *Var:
		r, err := extendSubstitution(t, reifyName(r.Size()), r)
		if err != nil {
			// Unreachable: a fresh placeholder Sym never occurs-check
			// fails against a bare variable.
			panic(fmt.Sprintf("minikanren: unreachable reification failure: %v", err))
		}
		return r
	case *Seq:
		if t.Empty() {
			return r
		}
		r = ReifyS(t.Head(), r)
		return ReifyS(t.Tail(), r)
	case *Tuple:
		for _, item := range t.Items {
			r = ReifyS(item, r)
		}
		return r
	case *Map:
		for _, k := range t.sortedKeys() {
			r = ReifyS(t.entries[k].value, r)
		}
		return r
	default:
		return r
	}
}

// Reify returns a goal-shaped reification function: given a substitution
// s, it produces a ground term where every variable still unbound in
// walk_all(v, s) has been replaced by a stable placeholder symbol
// (_0, _1, ...) in first-encounter order (spec.md §4.H, §6).
func Reify(v Term) func(*Substitution) Term {
	return func(s *Substitution) Term {
		walked := WalkAll(v, s)
		r := ReifyS(walked, EmptySubstitution())
		return WalkAll(walked, r)
	}
}
