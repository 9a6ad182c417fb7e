package minikanren

// Take forces stream until it has produced up to n substitutions (n >=
// 0), returning fewer if the stream is exhausted first. Suspensions are
// forced in an explicit loop rather than by recursing into force, so
// that a long chain of suspension->suspension shapes (the mechanism
// behind fair interleaving of infinite disjunctions) costs O(1) stack
// regardless of how many times it had to be forced — spec.md §5 requires
// exactly this, since Go gives no guarantee of tail-call elimination.
func Take(n int, stream *Stream) []*Substitution {
	if n == 0 {
		return nil
	}
	var out []*Substitution
	for stream != nil {
		for stream.kind == streamSuspension {
			stream = stream.force()
		}
		if stream.kind == streamEmpty {
			return out
		}
		out = append(out, stream.head)
		if len(out) == n {
			return out
		}
		stream = stream.rest
	}
	return out
}

// TakeAll forces stream to completion, returning every substitution it
// produces. Terminates iff stream is finite.
func TakeAll(stream *Stream) []*Substitution {
	var out []*Substitution
	for stream != nil {
		for stream.kind == streamSuspension {
			stream = stream.force()
		}
		if stream.kind == streamEmpty {
			return out
		}
		out = append(out, stream.head)
		stream = stream.rest
	}
	return out
}

// RunGoal applies g to the empty substitution and takes up to n answers
// (spec.md §4.G: run_goal(n, g) = take(n, g(empty_s()))).
func RunGoal(n int, g Goal) []*Substitution {
	return Take(n, g(EmptySubstitution()))
}

// RunAllGoal applies g to the empty substitution and takes every answer
// (spec.md §4.G: run_all(g) = take_all(g(empty_s()))).
func RunAllGoal(g Goal) []*Substitution {
	return TakeAll(g(EmptySubstitution()))
}
