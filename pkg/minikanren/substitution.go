package minikanren

// Substitution is a persistent mapping from variable ids to terms. It is
// represented as a singly-linked list of bindings rather than a cloned
// map (contrast the teacher's Substitution.Bind, which copies the whole
// backing map per extension) so that every substitution reachable from a
// branching disjunction shares its entire parent chain — see
// SPEC_FULL.md §3 for why this matters more here than it did for the
// teacher's constraint-store design.
//
// A nil *Substitution denotes the empty substitution; EmptySubstitution
// returns nil explicitly so the zero value is always valid.
type Substitution struct {
	id     int64
	term   Term
	parent *Substitution
}

// EmptySubstitution returns the identity substitution (spec.md §4.C
// empty_s). It binds nothing.
func EmptySubstitution() *Substitution { return nil }

// Walk follows variable->term bindings in s until it reaches a
// non-variable term or an unbound variable (spec.md §4.C). It is
// shallow: composite children are not walked. Terminates because every
// Substitution reachable through extendSubstitution satisfies the
// no-cycles invariant (spec.md §3, enforced by extendSubstitution via
// occursCheck).
func Walk(t Term, s *Substitution) Term {
	for {
		v, ok := t.(*Var)
		if !ok {
			return t
		}
		bound, found := s.lookup(v.id)
		if !found {
			return t
		}
		t = bound
	}
}

func (s *Substitution) lookup(id int64) (Term, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.id == id {
			return cur.term, true
		}
	}
	return nil, false
}

// extendSubstitution returns a new substitution extending s with x bound to v,
// after confirming the binding would not introduce a cycle. Returns
// (nil, ErrOccursCheck) if it would. x must be unbound in s; rebinding
// an already-bound variable is a programmer error in this package (the
// unifier never attempts it — it always walks first).
func extendSubstitution(x *Var, v Term, s *Substitution) (*Substitution, error) {
	if occursCheck(x, v, s) {
		return nil, ErrOccursCheck
	}
	return &Substitution{id: x.id, term: v, parent: s}, nil
}

// occursCheck reports whether walking v under s reaches x, directly or
// nested inside a composite (spec.md §4.C). It is the sole guard against
// the substitution's no-cycles invariant being violated.
func occursCheck(x *Var, v Term, s *Substitution) bool {
	w := Walk(v, s)
	switch t := w.(type) {
	case *Var:
		return t.id == x.id
	case *Seq:
		if t.Empty() {
			return false
		}
		return occursCheck(x, t.Head(), s) || occursCheck(x, t.Tail(), s)
	case *Tuple:
		for _, item := range t.Items {
			if occursCheck(x, item, s) {
				return true
			}
		}
		return false
	case *Map:
		for _, e := range t.entries {
			if occursCheck(x, e.value, s) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Size returns the number of bindings reachable from s. Used only by
// tests and reification bookkeeping, never on the unification hot path.
func (s *Substitution) Size() int {
	n := 0
	for cur := s; cur != nil; cur = cur.parent {
		n++
	}
	return n
}
