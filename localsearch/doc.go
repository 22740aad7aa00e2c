// Package localsearch provides greedy hill climbing over any problem state
// that can list its neighbours and score itself.
//
// 🚀 What is hill climbing?
//
//	Starting from an initial state, the search repeatedly looks at every
//	successor of the current state, picks the best-scoring one and moves
//	there if it is strictly better. It stops at a dead end (no successors),
//	at a local optimum (no strictly better successor) or when the iteration
//	budget is spent. Typical uses:
//	  • 2-opt tour improvement
//	  • min-conflicts style puzzles (N-Queens)
//	  • bit-flip neighbourhoods (knapsack, feature selection)
//
// ✨ Key features:
//   - generic contract: Problem[T, S] with Successors() and Evaluate()
//   - cmp.Ordered scores out of the box, comparator variant for anything else
//   - ties between equally scored successors are left unspecified
//     (the current scan keeps the first one; do not rely on it)
//   - zero budget and dead-end starts never call Evaluate
//   - traced runs (Climb) reporting iterations, accepted moves and stop reason
//   - OnStep hook for observation, no logging inside the package
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hillclimb/localsearch"
//
//	type Quadratic int
//
//	func (q Quadratic) Successors() []Quadratic { return []Quadratic{q - 1, q + 1} }
//	func (q Quadratic) Evaluate() int           { x := int(q); return -x*(x-2) + 1 }
//
//	best := localsearch.HillClimbing[Quadratic, int](30, Quadratic(-8)) // Quadratic(1)
//
// Performance:
//
//   - Time:   O(iterations · (|successors| · cost(Evaluate) + cost(Successors)))
//   - Memory: the current state plus one successor slice at a time
//
// The search is synchronous and never fails on its own: a panic raised by
// Successors or Evaluate reaches the caller untouched.
package localsearch
