package minikanren_test

import (
	"fmt"

	"github.com/metdinov/ex-logic/pkg/minikanren"
)

// ExampleRun demonstrates the canonical run(n, [x]){x == :olive} scenario
// (spec.md §8): a single variable unified against a ground symbol yields
// exactly one answer, reified back as a one-element tuple.
func ExampleRun() {
	results := minikanren.Run(1, []string{"x"}, func(v []*minikanren.Var) minikanren.Goal {
		return minikanren.Eq(v[0], minikanren.Sym("olive"))
	})
	for _, r := range results {
		fmt.Println(r)
	}
	// Output:
	// #(olive)
}

// ExampleRun_occursCheckFailure demonstrates that binding a variable to a
// term containing itself fails rather than producing a cyclic term
// (spec.md §4.C, §8 invariant 3).
func ExampleRun_occursCheckFailure() {
	results := minikanren.Run(1, []string{"x"}, func(v []*minikanren.Var) minikanren.Goal {
		return minikanren.Eq(v[0], minikanren.NewSeq(minikanren.Sym("a"), v[0]))
	})
	fmt.Println(len(results))
	// Output:
	// 0
}

// ExampleRunAll demonstrates disj enumerating every matching branch
// (spec.md §8).
func ExampleRunAll() {
	results := minikanren.RunAll([]string{"x"}, func(v []*minikanren.Var) minikanren.Goal {
		return minikanren.Disj(
			minikanren.Eq(v[0], minikanren.Sym("a")),
			minikanren.Disj(
				minikanren.Eq(v[0], minikanren.Sym("b")),
				minikanren.Eq(v[0], minikanren.Sym("c")),
			),
		)
	})
	for _, r := range results {
		fmt.Println(r)
	}
	// Output:
	// #(a)
	// #(b)
	// #(c)
}

// ExampleRun_fairness demonstrates that disj still surfaces an answer from
// a finite branch even when paired against a goal that never stops
// producing (spec.md §8 property 9, §5).
func ExampleRun_fairness() {
	var neverSucceeds minikanren.Goal
	neverSucceeds = minikanren.Delay(func(s *minikanren.Substitution) *minikanren.Stream {
		return neverSucceeds(s)
	})

	results := minikanren.Run(1, []string{"x"}, func(v []*minikanren.Var) minikanren.Goal {
		return minikanren.Disj(neverSucceeds, minikanren.Eq(v[0], minikanren.Sym("found")))
	})
	for _, r := range results {
		fmt.Println(r)
	}
	// Output:
	// #(found)
}

// ExampleRun_unbound demonstrates reification of a query variable left
// unbound by the goal: it surfaces as the stable placeholder _0 rather
// than leaking the internal variable id (spec.md §4.H).
func ExampleRun_unbound() {
	results := minikanren.Run(1, []string{"x"}, func(v []*minikanren.Var) minikanren.Goal {
		return minikanren.Succeed
	})
	for _, r := range results {
		fmt.Println(r)
	}
	// Output:
	// #(_0)
}

// ExampleAppendo demonstrates running the appendo relation backward: given
// the whole and one part, it finds the other (spec.md §8, relations.go).
func ExampleAppendo() {
	results := minikanren.Run(1, []string{"x"}, func(v []*minikanren.Var) minikanren.Goal {
		whole := minikanren.NewSeq(minikanren.Num(1), minikanren.Num(2), minikanren.Num(3), minikanren.Num(4))
		tail := minikanren.NewSeq(minikanren.Num(3), minikanren.Num(4))
		return minikanren.Appendo(v[0], tail, whole)
	})
	for _, r := range results {
		fmt.Println(r)
	}
	// Output:
	// #((1 2))
}
