// This example shows how to use the core primitives to solve simple
// relational programming problems, trimmed from the teacher's original
// demo down to the sections that don't depend on the finite-domain
// solver or parallel executor (both non-goals here — see DESIGN.md).
package main

import (
	"fmt"

	"github.com/metdinov/ex-logic/pkg/minikanren"
)

func main() {
	fmt.Println("=== ex-logic examples ===")
	fmt.Println()

	basicUnification()
	multipleChoices()
	listOperations()
	relationExample()
	fairnessDemo()
}

// basicUnification demonstrates simple unification.
func basicUnification() {
	fmt.Println("1. Basic Unification:")

	results := minikanren.Run(1, []string{"q"}, func(v []*minikanren.Var) minikanren.Goal {
		return minikanren.Eq(v[0], minikanren.Sym("hello"))
	})
	fmt.Printf("   q = :hello => %v\n", results)

	results = minikanren.Run(1, []string{"q"}, func(v []*minikanren.Var) minikanren.Goal {
		return minikanren.Eq(v[0], minikanren.Num(42))
	})
	fmt.Printf("   q = 42 => %v\n", results)
	fmt.Println()
}

// multipleChoices demonstrates disjunction (choice points).
func multipleChoices() {
	fmt.Println("2. Multiple Choices (Disjunction):")

	results := minikanren.RunAll([]string{"q"}, func(v []*minikanren.Var) minikanren.Goal {
		return minikanren.Disj(
			minikanren.Eq(v[0], minikanren.Num(1)),
			minikanren.Disj(
				minikanren.Eq(v[0], minikanren.Num(2)),
				minikanren.Eq(v[0], minikanren.Num(3)),
			),
		)
	})
	fmt.Printf("   q ∈ {1, 2, 3} => %v\n", results)
	fmt.Println()
}

// listOperations demonstrates Seq construction and Appendo.
func listOperations() {
	fmt.Println("3. List Operations:")

	list123 := minikanren.ListTerm(minikanren.Num(1), minikanren.Num(2), minikanren.Num(3))
	results := minikanren.Run(1, []string{"q"}, func(v []*minikanren.Var) minikanren.Goal {
		return minikanren.Eq(v[0], list123)
	})
	fmt.Printf("   q = [1, 2, 3] => %v\n", results)

	results = minikanren.Run(1, []string{"q"}, func(v []*minikanren.Var) minikanren.Goal {
		list12 := minikanren.ListTerm(minikanren.Num(1), minikanren.Num(2))
		list34 := minikanren.ListTerm(minikanren.Num(3), minikanren.Num(4))
		return minikanren.Appendo(list12, list34, v[0])
	})
	fmt.Printf("   append([1, 2], [3, 4]) => %v\n", results)

	results = minikanren.Run(1, []string{"q"}, func(v []*minikanren.Var) minikanren.Goal {
		list34 := minikanren.ListTerm(minikanren.Num(3), minikanren.Num(4))
		list1234 := minikanren.ListTerm(minikanren.Num(1), minikanren.Num(2), minikanren.Num(3), minikanren.Num(4))
		return minikanren.Appendo(v[0], list34, list1234)
	})
	fmt.Printf("   what + [3, 4] = [1, 2, 3, 4]? => %v\n", results)
	fmt.Println()
}

// relationExample demonstrates a small relational program.
func relationExample() {
	fmt.Println("4. Relational Programming:")

	likes := func(person, food minikanren.Term) minikanren.Goal {
		return minikanren.Conde(
			[]minikanren.Goal{minikanren.Eq(person, minikanren.Sym("alice")), minikanren.Eq(food, minikanren.Sym("pizza"))},
			[]minikanren.Goal{minikanren.Eq(person, minikanren.Sym("bob")), minikanren.Eq(food, minikanren.Sym("burgers"))},
			[]minikanren.Goal{minikanren.Eq(person, minikanren.Sym("alice")), minikanren.Eq(food, minikanren.Sym("salad"))},
		)
	}

	results := minikanren.RunAll([]string{"q"}, func(v []*minikanren.Var) minikanren.Goal {
		return likes(minikanren.Sym("alice"), v[0])
	})
	fmt.Printf("   what does alice like? => %v\n", results)

	results = minikanren.RunAll([]string{"q"}, func(v []*minikanren.Var) minikanren.Goal {
		return likes(v[0], minikanren.Sym("pizza"))
	})
	fmt.Printf("   who likes pizza? => %v\n", results)
	fmt.Println()
}

// fairnessDemo shows that disj still surfaces an answer from a finite
// branch even when paired against an infinite, always-failing one —
// spec.md §8 property 9.
func fairnessDemo() {
	fmt.Println("5. Fairness under an infinite disjunct:")

	var neverEnds minikanren.Goal
	neverEnds = func(s *minikanren.Substitution) *minikanren.Stream {
		return minikanren.Suspend(func() *minikanren.Stream {
			return minikanren.Disj(minikanren.Failure, neverEnds)(s)
		})
	}

	results := minikanren.Run(1, []string{"q"}, func(v []*minikanren.Var) minikanren.Goal {
		return minikanren.Disj(neverEnds, minikanren.Eq(v[0], minikanren.Sym("found")))
	})
	fmt.Printf("   disj(infinite-failure, q = :found) => %v\n", results)
}
