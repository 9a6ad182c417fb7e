package minikanren

// Stream is a lazy, possibly-infinite sequence of substitutions: the
// answer stream a Goal produces. It is a closed three-variant sum —
// empty, cons(head, rest), or a suspension thunk — with no goroutines
// and no channels. This is a deliberate redesign of the teacher's
// channel-backed Stream (see DESIGN.md): spec.md §5 requires the kernel
// to be single-threaded and cooperative, and §9 prescribes exactly this
// "explicit three-variant sum" in its place.
//
// The zero value is not a valid Stream; use Empty, Cons, or Suspend.
type Stream struct {
	kind streamKind
	head *Substitution // valid iff kind == streamCons
	rest *Stream       // valid iff kind == streamCons
	pull func() *Stream
}

type streamKind int

const (
	streamEmpty streamKind = iota
	streamCons
	streamSuspension
)

// Empty is the stream with no answers.
var Empty = &Stream{kind: streamEmpty}

// Cons builds a stream whose first answer is head, followed by rest.
func Cons(head *Substitution, rest *Stream) *Stream {
	return &Stream{kind: streamCons, head: head, rest: rest}
}

// Suspend wraps a thunk as a stream. Forcing it (via force, the sole
// internal entry point, reached through Take/TakeAll) calls pull exactly
// once per force and discards the thunk — thunks are not required to be
// memoized (spec.md §9: "each thunk is forced at most once in any given
// consumer chain").
func Suspend(pull func() *Stream) *Stream {
	return &Stream{kind: streamSuspension, pull: pull}
}

// force resolves a single suspension, if any, returning an
// empty/cons/suspension shape. It performs exactly one unit of work —
// callers that need to reach a cons or empty shape must loop (see
// driver.go's Take), which is what keeps the kernel's call stack
// bounded regardless of search depth (spec.md §5).
func (s *Stream) force() *Stream {
	if s.kind != streamSuspension {
		return s
	}
	tracef("stream: forcing suspension")
	return s.pull()
}

// appendStream implements mplus/interleave (spec.md §4.E). Both
// disjuncts get a chance to produce answers even when the first is
// infinite: forcing a suspension swaps which side is explored next.
func appendStream(a, b *Stream) *Stream {
	switch a.kind {
	case streamEmpty:
		return b
	case streamCons:
		return Cons(a.head, appendStream(a.rest, b))
	default: // streamSuspension
		return Suspend(func() *Stream {
			return appendStream(b, a.force())
		})
	}
}

// appendMapStream implements bind (spec.md §4.E): apply goal g to every
// substitution in stream, concatenating the resulting streams via
// appendStream so that fairness is preserved across the whole
// conjunction, not just within a single disjunct.
func appendMapStream(g Goal, stream *Stream) *Stream {
	switch stream.kind {
	case streamEmpty:
		return Empty
	case streamCons:
		return appendStream(g(stream.head), appendMapStream(g, stream.rest))
	default: // streamSuspension
		return Suspend(func() *Stream {
			return appendMapStream(g, stream.force())
		})
	}
}
