package minikanren

import (
	"errors"
	"fmt"
)

// ErrUnify is returned by Unify and extendSubstitution when two terms
// cannot be made equal. Goal-level failures never surface this value —
// a failing Eq goal simply returns the empty stream (spec.md §7) — it
// exists so direct callers of Unify can distinguish "no answers" from
// "why", without string-matching an error message.
var ErrUnify = errors.New("minikanren: unification failed")

// ErrOccursCheck wraps ErrUnify for the specific case where extending
// the substitution would bind a variable to a term that (transitively)
// contains it, which would break the substitution's no-cycles
// invariant (spec.md §3). Use errors.Is(err, ErrUnify) to treat it
// uniformly with any other unification failure, or errors.Is(err,
// ErrOccursCheck) to distinguish it.
var ErrOccursCheck = fmt.Errorf("%w: occurs check", ErrUnify)
