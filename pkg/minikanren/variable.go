package minikanren

import (
	"fmt"
	"sync/atomic"
)

// varCounter mints globally unique variable ids. Grounded on the
// teacher's primitives.go Fresh, which does the same with
// atomic.AddInt64(&varCounter, 1); an atomic counter rather than a UUID
// is the one explicit choice SPEC_FULL.md §3 fixes among the several
// spec.md leaves open. Only identity is used: the reifier names
// variables by traversal order, not by id (see reify.go).
var varCounter int64

// Var is a logic variable. Its identity is its id alone; name is
// display-only and never affects Equal, Walk, or unification.
type Var struct {
	id   int64
	name string
}

func (*Var) isTerm() {}

// NewVar mints a fresh variable with a new unique id. An empty name
// defaults to "_".
func NewVar(name string) *Var {
	id := atomic.AddInt64(&varCounter, 1)
	if name == "" {
		name = "_"
	}
	return &Var{id: id, name: name}
}

// FreshVar is an alias for NewVar, matching the vocabulary spec.md §6 uses
// ("var(name?)"). The name Fresh belongs to the multi-variable sugar in
// sugar.go.
func FreshVar(name string) *Var { return NewVar(name) }

// ID returns the variable's unique identifier.
func (v *Var) ID() int64 { return v.id }

// Name returns the variable's display name. Never used for equality.
func (v *Var) Name() string { return v.name }

func (v *Var) String() string {
	return fmt.Sprintf("_%s.%d", v.name, v.id)
}

// Equal reports whether other is a *Var with the same id. Names are
// never considered, per spec.md §3: "Two Vars are equal iff their id
// fields are equal."
func (v *Var) Equal(other Term) bool {
	o, ok := other.(*Var)
	return ok && v.id == o.id
}
