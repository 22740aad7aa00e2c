package localsearch

import "cmp"

// HillClimbing - greedy steepest-ascent local search
//
// Algorithm Outline:
//  1. current := initial.
//  2. Repeat at most maxIterations times:
//     a. succ := current.Successors(); stop if empty.
//     b. best := a successor with the maximal score.
//     c. If score(best) > score(current), current := best; otherwise stop.
//  3. Return current.
//
// Termination:
//   - dead end       - no successors
//   - local optimum  - no successor strictly improves (equal moves are rejected)
//   - budget         - maxIterations loop bodies executed
//
// Complexity:
//
//	Time   = O(maxIterations · |successors| · cost(Evaluate))
//	Memory = O(|successors|)
//
// maxIterations ≤ 0 returns initial without calling Successors or Evaluate.
// A dead-end initial state is returned without calling Evaluate either.
//
// Which of several equally scored successors is taken is not part of the
// contract. The current implementation keeps the first one.
func HillClimbing[T Problem[T, S], S cmp.Ordered](maxIterations int, initial T) T {
	return climb(initial, cmp.Compare[S], budgetOnly(maxIterations), false).State
}

// HillClimbingFunc is HillClimbing for scores ordered by compare instead of
// cmp.Ordered. compare(a, b) must be negative when a < b, zero when a and b
// are equal or incomparable, and positive when a > b.
func HillClimbingFunc[T Problem[T, S], S any](maxIterations int, initial T, compare func(a, b S) int) T {
	return climb(initial, compare, budgetOnly(maxIterations), false).State
}

// Climb runs hill climbing from initial and reports how the run went.
// Without WithMaxIterations the budget is DefaultMaxIterations.
//
// Result.Score is always filled: on a zero budget or a dead-end start the
// initial state is scored once after the loop, which HillClimbing never does.
//
// Example:
//
//	res := Climb[Quadratic, int](Quadratic(-8), WithMaxIterations(30))
//	fmt.Println(res.State, res.Score, res.Reason) // 1 2 local-optimum
func Climb[T Problem[T, S], S cmp.Ordered](initial T, opts ...Option) Result[T, S] {
	return climb(initial, cmp.Compare[S], buildOptions(opts), true)
}

// ClimbFunc is Climb with a caller-supplied score ordering.
// A nil compare panics on the first comparison.
func ClimbFunc[T Problem[T, S], S any](initial T, compare func(a, b S) int, opts ...Option) Result[T, S] {
	return climb(initial, compare, buildOptions(opts), true)
}

// BestSuccessor returns a successor of s with the maximal score.
// ok is false when s has no successors. On ties the first maximal successor
// is currently returned; callers needing a specific choice should make
// scores distinct.
func BestSuccessor[T Problem[T, S], S cmp.Ordered](s T) (best T, score S, ok bool) {
	return bestOf(s.Successors(), cmp.Compare[S])
}

// BestSuccessorFunc is BestSuccessor with a caller-supplied score ordering.
func BestSuccessorFunc[T Problem[T, S], S any](s T, compare func(a, b S) int) (best T, score S, ok bool) {
	return bestOf(s.Successors(), compare)
}

// bestOf scans candidates once; a later candidate replaces the incumbent only
// when it compares strictly greater, so ties keep the earliest one.
func bestOf[T Problem[T, S], S any](candidates []T, compare func(a, b S) int) (best T, score S, ok bool) {
	if len(candidates) == 0 {
		return best, score, false
	}

	best = candidates[0]
	score = best.Evaluate()
	var (
		i int
		x S
	)
	for i = 1; i < len(candidates); i++ {
		x = candidates[i].Evaluate()
		if compare(x, score) > 0 {
			best, score = candidates[i], x
		}
	}

	return best, score, true
}

func budgetOnly(maxIterations int) Options {
	o := DefaultOptions()
	o.MaxIterations = maxIterations

	return o
}

// climb scores the current state lazily: only once a non-empty successor
// list needs comparing against it. fillScore scores a never-compared
// final state so Result.Score is valid.
func climb[T Problem[T, S], S any](initial T, compare func(a, b S) int, o Options, fillScore bool) Result[T, S] {
	res := Result[T, S]{
		State:  initial,
		Reason: StopBudget,
	}
	scored := false

	var (
		succ      []T
		best      T
		bestScore S
		ok        bool
	)
	for res.Iterations < o.MaxIterations {
		res.Iterations++

		succ = res.State.Successors()
		best, bestScore, ok = bestOf(succ, compare)
		res.Evaluations += len(succ)
		if !ok {
			res.Reason = StopDeadEnd

			break
		}
		if !scored {
			res.Score = res.State.Evaluate()
			res.Evaluations++
			scored = true
		}
		// Equal or worse: the current state is a local optimum.
		if compare(bestScore, res.Score) <= 0 {
			res.Reason = StopLocalOptimum

			break
		}

		res.State, res.Score = best, bestScore
		res.Accepted++
		o.OnStep(Step{
			Iteration:  res.Iterations,
			Accepted:   res.Accepted,
			Candidates: len(succ),
			Score:      bestScore,
		})
	}

	if fillScore && !scored {
		res.Score = res.State.Evaluate()
		res.Evaluations++
	}

	return res
}
