package minikanren

// This file implements the surface-syntax desugaring contract of
// spec.md §6 as ordinary builder functions, since Go has no macros
// (spec.md §9: "expose them as combinator/builder functions taking
// arrays of goals or closures"). Grounded on the teacher's n-ary
// Disj/Conj helpers (core.go) and its Run helper (highlevel_api.go),
// generalized to the binary-fold contract spec.md fixes.

// ConjAll folds Conj right across goals; an empty slice yields Succeed,
// matching spec.md §4.F ("Empty list folds to succeed") and the monoid
// identity spec.md §8 property 7 names for conj.
func ConjAll(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Succeed
	}
	g := goals[len(goals)-1]
	for i := len(goals) - 2; i >= 0; i-- {
		g = Conj(goals[i], g)
	}
	return g
}

// DisjAll folds Disj right across goals; an empty slice yields Failure,
// the monoid identity for disj (spec.md §8 property 7).
func DisjAll(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Failure
	}
	g := goals[len(goals)-1]
	for i := len(goals) - 2; i >= 0; i-- {
		g = Disj(goals[i], g)
	}
	return g
}

// Fresh desugars to nested CallFresh calls, one per name, binding each
// variable before applying body to the full slice (spec.md §6:
// "fresh([x1, ..., xm]) { body } desugars to nested call_with_fresh
// calls binding each xi before conj { body }"). body receives the bound
// variables in the same order as names.
func Fresh(names []string, body func(vars []*Var) Goal) Goal {
	return freshFrom(names, nil, body)
}

func freshFrom(names []string, bound []*Var, body func([]*Var) Goal) Goal {
	if len(names) == 0 {
		return body(bound)
	}
	name, rest := names[0], names[1:]
	return CallFresh(name, func(v *Var) Goal {
		return freshFrom(rest, append(append([]*Var{}, bound...), v), body)
	})
}

// Conde desugars to a disjunction of conjunctions: each clause is a
// slice of goals ANDed together, and the clauses are ORed together
// (spec.md §6: "conde { [g11, g12, ...]; [g21, ...]; ... } desugars to
// disj of conjs").
func Conde(clauses ...[]Goal) Goal {
	conjs := make([]Goal, len(clauses))
	for i, clause := range clauses {
		conjs[i] = ConjAll(clause...)
	}
	return DisjAll(conjs...)
}

// Run desugars run(n, [vars]){body} per spec.md §6: take(n, ...) of
// fresh([vars]){body} applied to empty_s, then reifying each answer
// through the query variables packed as a sequence. Results preserve
// stream order.
func Run(n int, names []string, body func(vars []*Var) Goal) []Term {
	vars, goal := queryGoal(names, body)
	return reifyAnswers(vars, RunGoal(n, goal))
}

// RunAll is Run without a bound on the number of answers.
func RunAll(names []string, body func(vars []*Var) Goal) []Term {
	vars, goal := queryGoal(names, body)
	return reifyAnswers(vars, RunAllGoal(goal))
}

// queryGoal builds fresh([names]){body} and captures the bound
// variables as body constructs its goal, so the caller can reify
// against them once answers come back. Capture happens exactly once,
// the single time the returned Goal is invoked with a substitution
// (CallFresh mints its variable at invocation time, not construction
// time), which RunGoal/RunAllGoal do exactly once.
func queryGoal(names []string, body func([]*Var) Goal) ([]*Var, Goal) {
	vars := make([]*Var, len(names))
	goal := freshFrom(names, nil, func(vs []*Var) Goal {
		copy(vars, vs)
		return body(vs)
	})
	return vars, goal
}

// reifyAnswers packs vars into a query Tuple (spec.md §6: "treating the
// query variables as a sequence") and reifies it against each answer
// substitution, in stream order.
func reifyAnswers(vars []*Var, answers []*Substitution) []Term {
	query := varsToTerm(vars)
	reify := Reify(query)
	out := make([]Term, len(answers))
	for i, s := range answers {
		out[i] = reify(s)
	}
	return out
}

func varsToTerm(vars []*Var) Term {
	items := make([]Term, len(vars))
	for i, v := range vars {
		items[i] = v
	}
	return &Tuple{Items: items}
}
