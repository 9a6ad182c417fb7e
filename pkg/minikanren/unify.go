package minikanren

// Unify attempts to make u and v structurally equal under s, returning
// the minimally-extended substitution on success. It never mutates s;
// every successful call returns s itself (when u and v are already
// equal) or an extension of it (spec.md §8 invariant 4). Grounded on the teacher's primitives.go unify, widened
// from Atom/Pair-only dispatch to all eight term kinds per spec.md §4.D.
func Unify(u, v Term, s *Substitution) (*Substitution, error) {
	u = Walk(u, s)
	v = Walk(v, s)

	if u.Equal(v) {
		tracef("unify: %s == %s (already equal)", u, v)
		return s, nil
	}

	if uv, ok := u.(*Var); ok {
		return extendSubstitution(uv, v, s)
	}
	if vv, ok := v.(*Var); ok {
		return extendSubstitution(vv, u, s)
	}

	switch ut := u.(type) {
	case *Seq:
		vt, ok := v.(*Seq)
		if !ok {
			return nil, ErrUnify
		}
		return unifySeq(ut, vt, s)
	case *Tuple:
		vt, ok := v.(*Tuple)
		if !ok || len(ut.Items) != len(vt.Items) {
			return nil, ErrUnify
		}
		return unifyItems(ut.Items, vt.Items, s)
	case *Map:
		vt, ok := v.(*Map)
		if !ok {
			return nil, ErrUnify
		}
		return unifyMap(ut, vt, s)
	default:
		// Two ground, non-equal atomic values (Sym/Num/Bool/Str with
		// different values, or mismatched atomic kinds).
		return nil, ErrUnify
	}
}

// unifySeq unifies two sequences by cons-list structure: head then
// tail, right-associatively, per spec.md §4.D. Empty vs non-empty fails.
func unifySeq(a, b *Seq, s *Substitution) (*Substitution, error) {
	if a.Empty() && b.Empty() {
		return s, nil
	}
	if a.Empty() || b.Empty() {
		return nil, ErrUnify
	}
	s, err := Unify(a.Head(), b.Head(), s)
	if err != nil {
		return nil, err
	}
	return Unify(a.Tail(), b.Tail(), s)
}

// unifyItems unifies two equal-length slices element-wise, threading the
// substitution through in order.
func unifyItems(a, b []Term, s *Substitution) (*Substitution, error) {
	var err error
	for i := range a {
		s, err = Unify(a[i], b[i], s)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// unifyMap unifies two maps: their key sets must be equal (as sets), and
// each shared key's values are unified, in a deterministic (sorted-key)
// order so the result never depends on Go's map iteration order.
func unifyMap(a, b *Map, s *Substitution) (*Substitution, error) {
	if len(a.entries) != len(b.entries) {
		return nil, ErrUnify
	}
	keys := a.sortedKeys()
	var err error
	for _, k := range keys {
		bEntry, ok := b.entries[k]
		if !ok {
			return nil, ErrUnify
		}
		aEntry := a.entries[k]
		s, err = Unify(aEntry.value, bEntry.value, s)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}
