// Package problems ships ready-made localsearch.Problem implementations.
//
// Each type is an immutable value: Successors builds fresh states and never
// touches the receiver, and Evaluate is a pure function of the value.
//
//   - Quadratic - integer on the parabola -x(x-2)+1, neighbours x±1.
//   - Queens    - N-Queens, one queen per column; move one queen within its column.
//     Score = −(attacking pairs), so 0 is a solution.
//   - Tour      - closed tour over a distance matrix; 2-opt segment reversals.
//     Score = −(tour length), rounded to 1e-9.
//   - Knapsack  - 0/1 selection; flip one item while staying within capacity.
//     Score = total value.
//
// Constructors validate their input and return sentinel errors
// (ErrEmptyMatrix, ErrDimensionMismatch, ErrNegativeWeight, ErrInvalidTour,
// ErrQueensSize, ErrQueensRow, ErrNegativeCapacity, ErrInvalidItem,
// ErrOverCapacity) wrapped with context via fmt.Errorf("%w: ...").
//
// Usage:
//
//	q, err := problems.NewQueens([]int{0, 0, 0, 0, 0, 0, 0, 0})
//	if err != nil {
//		// handle ErrQueensSize / ErrQueensRow
//	}
//	best := localsearch.HillClimbing[problems.Queens, int](100, q)
//	fmt.Println(best.Rows(), best.Conflicts())
package problems
