package problems

import (
	"fmt"
	"math"
)

// Tour is a closed tour over a distance matrix. order is the open visiting
// sequence; it starts at vertex 0 and returns to it implicitly.
//
// Successors are the 2-opt moves: for 1 ≤ i < k ≤ n−1 the segment
// order[i..k] is reversed. Successors share the tour's private copy of the
// matrix, which is never written to.
type Tour struct {
	dist  [][]float64
	order []int
}

// NewTour validates dist and order and returns the tour.
//
//   - dist must be non-empty and square; NaN entries are rejected, +Inf means "no edge".
//   - negative distances → ErrNegativeWeight
//   - order must be a permutation of 0..n−1 with order[0] == 0.
//     A nil order means the identity tour 0,1,…,n−1.
//
// Both dist and order are copied; later changes by the caller do not leak in.
func NewTour(dist [][]float64, order []int) (Tour, error) {
	n := len(dist)
	if n == 0 {
		return Tour{}, ErrEmptyMatrix
	}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return Tour{}, fmt.Errorf("%w: row %d has %d entries, want %d", ErrDimensionMismatch, i, len(dist[i]), n)
		}
		for j = 0; j < n; j++ {
			x = dist[i][j]
			if math.IsNaN(x) {
				return Tour{}, fmt.Errorf("%w: NaN at (%d,%d)", ErrDimensionMismatch, i, j)
			}
			if x < 0 {
				return Tour{}, fmt.Errorf("%w: %g at (%d,%d)", ErrNegativeWeight, x, i, j)
			}
		}
	}

	if order == nil {
		order = make([]int, n)
		for i = range order {
			order[i] = i
		}
	}
	if err := validateOrder(order, n); err != nil {
		return Tour{}, err
	}

	own := make([][]float64, n)
	for i = 0; i < n; i++ {
		own[i] = append([]float64(nil), dist[i]...)
	}

	return Tour{dist: own, order: append([]int(nil), order...)}, nil
}

func validateOrder(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(order), n)
	}
	if order[0] != 0 {
		return fmt.Errorf("%w: must start at 0, starts at %d", ErrInvalidTour, order[0])
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: %v is not a permutation of 0..%d", ErrInvalidTour, order, n-1)
		}
		seen[v] = true
	}

	return nil
}

// Order returns a copy of the open visiting sequence.
func (t Tour) Order() []int { return append([]int(nil), t.order...) }

// Length returns the closed tour length, including the edge back to 0.
// It is +Inf when the tour uses a missing edge.
func (t Tour) Length() float64 {
	n := len(t.order)
	var (
		i   int
		sum float64
	)
	for i = 0; i+1 < n; i++ {
		sum += t.dist[t.order[i]][t.order[i+1]]
	}
	sum += t.dist[t.order[n-1]][t.order[0]]

	return sum
}

// Successors returns every 2-opt reversal of the tour, i ascending then k ascending.
func (t Tour) Successors() []Tour {
	n := len(t.order)
	if n < 3 {
		return nil
	}
	out := make([]Tour, 0, (n-1)*(n-2)/2)
	var i, k int
	for i = 1; i <= n-2; i++ {
		for k = i + 1; k <= n-1; k++ {
			next := append([]int(nil), t.order...)
			reverseInPlace(next, i, k)
			out = append(out, Tour{dist: t.dist, order: next})
		}
	}

	return out
}

// Evaluate returns the negated length, stabilised to 1e-9 so that
// equal-length reversals compare equal.
func (t Tour) Evaluate() float64 {
	return -round1e9(t.Length())
}

// EuclideanMatrix builds the symmetric distance matrix of 2-D points.
func EuclideanMatrix(points [][2]float64) [][]float64 {
	n := len(points)
	dist := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			dist[i][j] = math.Hypot(points[i][0]-points[j][0], points[i][1]-points[j][1])
		}
	}

	return dist
}

func reverseInPlace(a []int, i, k int) {
	for i < k {
		a[i], a[k] = a[k], a[i]
		i++
		k--
	}
}

func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*1e9) / 1e9
}
