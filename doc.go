// Package hillclimb is a small toolkit for greedy local search: a generic
// problem contract, a steepest-ascent hill climber and a handful of ready
// problem domains to try it on.
//
// 🚀 What is in the box?
//
//	• localsearch/ - Problem[T, S] contract, HillClimbing, Climb (traced runs),
//	                 comparator variants and the OnStep hook
//	• problems/    - Quadratic, N-Queens, 2-opt Tour and 0/1 Knapsack states
//	• cmd/hillclimb - CLI: YAML run configs in, YAML reports out
//
// ✨ Why hill climbing?
//
//   - Tiny contract – two methods, no base types
//   - Predictable – strict improvement only, no Evaluate call without successors
//   - Total – the search never fails on its own; caller panics pass through
//
// Out of scope: annealing, restarts, tabu lists, beam search and parallel
// successor scoring. The climber is strictly greedy and synchronous.
//
// Quick example:
//
//	best := localsearch.HillClimbing[problems.Quadratic, int](30, problems.Quadratic(-8))
//	// best == 1, the peak of -x(x-2)+1
//
//	go get github.com/katalvlaran/hillclimb
package hillclimb
