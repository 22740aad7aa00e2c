package problems

import "fmt"

// Queens is an N-Queens placement with exactly one queen per column.
// rows[c] is the row of the queen in column c.
type Queens struct {
	rows []int
}

// NewQueens validates rows and returns the placement.
// The slice is copied; later changes by the caller do not leak in.
func NewQueens(rows []int) (Queens, error) {
	n := len(rows)
	if n == 0 {
		return Queens{}, ErrQueensSize
	}
	for c, r := range rows {
		if r < 0 || r >= n {
			return Queens{}, fmt.Errorf("%w: column %d has row %d on a %dx%d board", ErrQueensRow, c, r, n, n)
		}
	}

	return Queens{rows: append([]int(nil), rows...)}, nil
}

// Len returns the board size.
func (q Queens) Len() int { return len(q.rows) }

// Rows returns a copy of the per-column rows.
func (q Queens) Rows() []int { return append([]int(nil), q.rows...) }

// Conflicts counts attacking pairs (same row or same diagonal).
func (q Queens) Conflicts() int {
	var (
		i, j, dr int
		count    int
	)
	for i = 0; i < len(q.rows); i++ {
		for j = i + 1; j < len(q.rows); j++ {
			dr = q.rows[i] - q.rows[j]
			if dr < 0 {
				dr = -dr
			}
			if dr == 0 || dr == j-i {
				count++
			}
		}
	}

	return count
}

// Successors moves one queen to every other row of its column.
// Order: column-major, rows ascending. n·(n−1) states.
func (q Queens) Successors() []Queens {
	n := len(q.rows)
	out := make([]Queens, 0, n*(n-1))
	var c, r int
	for c = 0; c < n; c++ {
		for r = 0; r < n; r++ {
			if r == q.rows[c] {
				continue
			}
			next := append([]int(nil), q.rows...)
			next[c] = r
			out = append(out, Queens{rows: next})
		}
	}

	return out
}

// Evaluate returns -Conflicts(); a solution scores 0.
func (q Queens) Evaluate() int {
	return -q.Conflicts()
}
