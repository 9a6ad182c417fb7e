// Package minikanren implements the evaluation kernel of an embeddable
// relational/logic-programming engine in the miniKanren family: a term
// model, unification with occurs-check over a persistent substitution,
// a goal algebra (eq, succeed, fail, disj, conj, call_with_fresh), a lazy
// answer stream with fair interleaving, and a reifier.
//
// The package is pure: no I/O, no shared mutable state, deterministic
// given the same goal. Hosts compose Goal values using Eq/Disj/Conj/
// CallFresh (or the Fresh/Conde/Run sugar in sugar.go) and drive them
// with Take/TakeAll/RunGoal/RunAllGoal.
package minikanren

import (
	"fmt"
	"sort"
	"strings"
)

// Term is any value in the engine's universe: a logic variable or one of
// the seven composite/atomic kinds below. Implementations must be
// structurally comparable via Equal and must not be mutated after
// construction — the engine relies on terms being immutable.
type Term interface {
	// String returns a human-readable representation.
	String() string

	// Equal reports whether this term is structurally identical to
	// other at the top level and, recursively, in every child. Two
	// *Var terms are equal iff their ids are equal; names are never
	// considered.
	Equal(other Term) bool

	// isTerm is unexported so Term cannot be implemented outside this
	// package; the kernel's dispatch logic assumes a closed set of
	// kinds.
	isTerm()
}

// Sym is an atom/keyword constant, e.g. Sym("olive").
type Sym string

func (Sym) isTerm() {}

func (s Sym) String() string { return string(s) }

// Equal reports whether other is a Sym with the same value.
func (s Sym) Equal(other Term) bool {
	o, ok := other.(Sym)
	return ok && s == o
}

// Num is a numeric constant (integer or floating), stored as float64 so
// that 1 and 1.0 compare equal the way a dynamically-typed host would
// expect.
type Num float64

func (Num) isTerm() {}

func (n Num) String() string {
	if n == Num(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", float64(n))
}

// Equal reports whether other is a Num with the same value.
func (n Num) Equal(other Term) bool {
	o, ok := other.(Num)
	return ok && n == o
}

// Bool is a boolean constant.
type Bool bool

func (Bool) isTerm() {}

func (b Bool) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

// Equal reports whether other is a Bool with the same value.
func (b Bool) Equal(other Term) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

// Str is a string constant.
type Str string

func (Str) isTerm() {}

func (s Str) String() string { return fmt.Sprintf("%q", string(s)) }

// Equal reports whether other is a Str with the same value.
func (s Str) Equal(other Term) bool {
	o, ok := other.(Str)
	return ok && s == o
}

// Seq is an ordered, finite sequence of terms with cons-list semantics:
// head and tail are meaningful to Unify the way a Scheme list's car/cdr
// are: a Seq is a cons cell (empty, or a head paired with a rest term),
// not a flat Go slice. This is what lets a Seq's rest position hold an
// unbound *Var — a "partial list" whose length is not yet known — which
// relational list predicates like Appendo (relations.go) need in order
// to enumerate lists of growing length on backtracking; a flat
// []Term-backed sequence could only ever represent ground-length lists.
// The empty Seq is Nil.
type Seq struct {
	empty bool
	head  Term // valid iff !empty
	rest  Term // valid iff !empty; typically *Seq, but may be any Term
	// (e.g. a *Var) while the list's tail is still unbound.
}

func (*Seq) isTerm() {}

// NewSeq builds a proper, ground-length Seq terminating in the empty
// list from the given items. A nil or empty items slice denotes the
// empty list itself.
func NewSeq(items ...Term) *Seq {
	s := &Seq{empty: true}
	for i := len(items) - 1; i >= 0; i-- {
		s = &Seq{head: items[i], rest: s}
	}
	return s
}

// NewCons builds a single cons cell: head paired with rest, where rest
// may be any term (another *Seq, a *Var for a still-open tail, or any
// other Term — unification will simply fail later if rest never
// resolves to a sequence shape).
func NewCons(head, rest Term) *Seq {
	return &Seq{head: head, rest: rest}
}

// items flattens a proper (Seq-terminated-in-empty-Seq) list for
// display and Equal. ok is false if the chain ends in something other
// than the empty Seq (an unbound tail or other improper ending), in
// which case items holds every head seen before that point and tail
// holds the unresolved ending.
func (s *Seq) items() (items []Term, tail Term, ok bool) {
	cur := Term(s)
	for {
		seq, isSeq := cur.(*Seq)
		if !isSeq {
			return items, cur, false
		}
		if seq.empty {
			return items, nil, true
		}
		items = append(items, seq.head)
		cur = seq.rest
	}
}

func (s *Seq) String() string {
	items, tail, ok := s.items()
	parts := make([]string, len(items))
	for i, t := range items {
		parts[i] = t.String()
	}
	if ok {
		return "(" + strings.Join(parts, " ") + ")"
	}
	return "(" + strings.Join(parts, " ") + " . " + tail.String() + ")"
}

// Equal reports whether other is a *Seq with the same shape: equal at
// the top level if both are empty, or if head/rest are pairwise Equal
// (recursively, since rest is itself compared via Term.Equal).
func (s *Seq) Equal(other Term) bool {
	o, ok := other.(*Seq)
	if !ok || s.empty != o.empty {
		return false
	}
	if s.empty {
		return true
	}
	return s.head.Equal(o.head) && s.rest.Equal(o.rest)
}

// Empty reports whether the sequence is the empty list.
func (s *Seq) Empty() bool { return s.empty }

// Head returns the first element. Returns nil if Empty.
func (s *Seq) Head() Term { return s.head }

// Tail returns the rest of the sequence: typically another *Seq, but
// may be any Term (most notably a *Var) if this is a partial list whose
// length is not yet determined.
func (s *Seq) Tail() Term { return s.rest }

// Tuple is a fixed-arity tuple of terms. Unlike Seq, a Tuple's arity is
// part of its identity: two tuples of different length never unify, even
// though positional unification proceeds the same way a same-length Seq
// unification would.
type Tuple struct {
	Items []Term
}

func (*Tuple) isTerm() {}

// NewTuple builds a Tuple from the given items.
func NewTuple(items ...Term) *Tuple {
	return &Tuple{Items: items}
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.Items))
	for i, item := range t.Items {
		parts[i] = item.String()
	}
	return "#(" + strings.Join(parts, " ") + ")"
}

// Equal reports whether other is a *Tuple of the same arity with
// pairwise-Equal elements.
func (t *Tuple) Equal(other Term) bool {
	o, ok := other.(*Tuple)
	if !ok || len(t.Items) != len(o.Items) {
		return false
	}
	for i, item := range t.Items {
		if !item.Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// Map is an unordered mapping from ground keys to terms. Keys must be
// ground (containing no Var) and comparable via Equal; String() is used
// as the map's internal ordering key so that iteration, unification, and
// display are all deterministic regardless of insertion order.
type Map struct {
	entries map[string]mapEntry
}

type mapEntry struct {
	key   Term
	value Term
}

func (*Map) isTerm() {}

// NewMap builds a Map from the given key/value pairs. Later pairs
// sharing a key's String() representation overwrite earlier ones.
func NewMap(pairs ...[2]Term) *Map {
	m := &Map{entries: make(map[string]mapEntry, len(pairs))}
	for _, p := range pairs {
		m.entries[p[0].String()] = mapEntry{key: p[0], value: p[1]}
	}
	return m
}

func (m *Map) sortedKeys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Map) String() string {
	keys := m.sortedKeys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		e := m.entries[k]
		parts[i] = fmt.Sprintf("%s: %s", e.key.String(), e.value.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Equal reports whether other is a *Map with an identical key set (as
// sets, compared via each key's String()) and pairwise-Equal values.
func (m *Map) Equal(other Term) bool {
	o, ok := other.(*Map)
	if !ok || len(m.entries) != len(o.entries) {
		return false
	}
	for k, e := range m.entries {
		oe, ok := o.entries[k]
		if !ok || !e.value.Equal(oe.value) {
			return false
		}
	}
	return true
}

// Nil is the empty sequence, used as the canonical "end of list" term.
var Nil = NewSeq()

// IsVar reports whether t is a logic variable. Convenience wrapper kept
// alongside the Term interface because callers dispatch on "is this
// still unbound" far more often than on any other single kind.
func IsVar(t Term) bool {
	_, ok := t.(*Var)
	return ok
}
