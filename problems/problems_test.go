package problems_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hillclimb/localsearch"
	"github.com/katalvlaran/hillclimb/problems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Quadratic
// -----------------------------------------------------------------------------

func TestQuadratic_Contract(t *testing.T) {
	q := problems.Quadratic(4)
	assert.Equal(t, []problems.Quadratic{3, 5}, q.Successors())
	assert.Equal(t, -7, q.Evaluate(), "-4·2+1")
	assert.Equal(t, 2, problems.Quadratic(1).Evaluate(), "peak")
}

func TestQuadratic_ClimbsFromBothSides(t *testing.T) {
	for _, start := range []problems.Quadratic{-8, 12, 1} {
		got := localsearch.HillClimbing[problems.Quadratic, int](30, start)
		assert.Equal(t, problems.Quadratic(1), got, "start %d", start)
	}
}

// -----------------------------------------------------------------------------
// Queens
// -----------------------------------------------------------------------------

func TestNewQueens_Errors(t *testing.T) {
	_, err := problems.NewQueens(nil)
	assert.ErrorIs(t, err, problems.ErrQueensSize)

	_, err = problems.NewQueens([]int{0, 4, 1, 2})
	assert.ErrorIs(t, err, problems.ErrQueensRow, "row 4 is off a 4x4 board")

	_, err = problems.NewQueens([]int{-1})
	assert.ErrorIs(t, err, problems.ErrQueensRow)
}

func TestQueens_Conflicts(t *testing.T) {
	solved, err := problems.NewQueens([]int{1, 3, 0, 2})
	require.NoError(t, err)
	assert.Zero(t, solved.Conflicts())
	assert.Zero(t, solved.Evaluate())

	flat, err := problems.NewQueens([]int{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 6, flat.Conflicts(), "all C(4,2) pairs share a row")

	diag, err := problems.NewQueens([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, diag.Conflicts(), "main diagonal")
}

func TestQueens_SuccessorsDoNotMutate(t *testing.T) {
	rows := []int{0, 1, 2, 3}
	q, err := problems.NewQueens(rows)
	require.NoError(t, err)

	rows[0] = 3 // caller's slice is not shared
	succ := q.Successors()
	assert.Len(t, succ, 4*3)
	assert.Equal(t, []int{0, 1, 2, 3}, q.Rows())
	assert.Equal(t, []int{1, 1, 2, 3}, succ[0].Rows(), "first move: column 0 to row 1")
}

func TestQueens_ClimbOneMoveToSolution(t *testing.T) {
	q, err := problems.NewQueens([]int{1, 3, 0, 0})
	require.NoError(t, err)

	res := localsearch.Climb[problems.Queens, int](q, localsearch.WithMaxIterations(10))
	assert.Equal(t, []int{1, 3, 0, 2}, res.State.Rows())
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 1, res.Accepted)
	assert.Equal(t, localsearch.StopLocalOptimum, res.Reason)
}

func TestQueens_ClimbNeverWorsens(t *testing.T) {
	q, err := problems.NewQueens([]int{0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	res := localsearch.Climb[problems.Queens, int](q, localsearch.WithMaxIterations(100))
	assert.Less(t, res.State.Conflicts(), q.Conflicts())
	if res.Reason == localsearch.StopLocalOptimum {
		_, best, ok := localsearch.BestSuccessor[problems.Queens, int](res.State)
		require.True(t, ok)
		assert.LessOrEqual(t, best, res.Score, "no successor beats a local optimum")
	}
}

// -----------------------------------------------------------------------------
// Tour
// -----------------------------------------------------------------------------

func TestNewTour_Errors(t *testing.T) {
	_, err := problems.NewTour(nil, nil)
	assert.ErrorIs(t, err, problems.ErrEmptyMatrix)

	_, err = problems.NewTour([][]float64{{0, 1}, {1}}, nil)
	assert.ErrorIs(t, err, problems.ErrDimensionMismatch)

	_, err = problems.NewTour([][]float64{{0, math.NaN()}, {1, 0}}, nil)
	assert.ErrorIs(t, err, problems.ErrDimensionMismatch)

	_, err = problems.NewTour([][]float64{{0, -1}, {1, 0}}, nil)
	assert.ErrorIs(t, err, problems.ErrNegativeWeight)

	sq := problems.EuclideanMatrix(square())
	for _, order := range [][]int{{1, 0, 2, 3}, {0, 1, 1, 3}, {0, 1, 2}, {0, 1, 2, 9}} {
		_, err = problems.NewTour(sq, order)
		assert.ErrorIs(t, err, problems.ErrInvalidTour, "order %v", order)
	}
}

func TestTour_LengthAndSuccessors(t *testing.T) {
	tour, err := problems.NewTour(problems.EuclideanMatrix(square()), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, tour.Order())
	assert.InDelta(t, 4.0, tour.Length(), 1e-12)
	assert.InDelta(t, -4.0, tour.Evaluate(), 1e-9)

	succ := tour.Successors()
	require.Len(t, succ, 3, "(n-1)(n-2)/2 reversals for n=4")
	assert.Equal(t, []int{0, 2, 1, 3}, succ[0].Order())
	assert.Equal(t, []int{0, 3, 2, 1}, succ[1].Order())
	assert.Equal(t, []int{0, 1, 3, 2}, succ[2].Order())
	assert.Equal(t, []int{0, 1, 2, 3}, tour.Order(), "receiver untouched")
}

func TestNewTour_CopiesMatrix(t *testing.T) {
	dist := problems.EuclideanMatrix(square())
	tour, err := problems.NewTour(dist, nil)
	require.NoError(t, err)
	succ := tour.Successors()

	dist[0][1], dist[1][0] = 100, 100
	assert.InDelta(t, 4.0, tour.Length(), 1e-12, "caller edits must not change an existing tour")
	assert.InDelta(t, 2+2*math.Sqrt2, succ[0].Length(), 1e-12, "nor its successors")
}

func TestTour_MissingEdge(t *testing.T) {
	inf := math.Inf(1)
	dist := [][]float64{
		{0, 1, inf},
		{1, 0, 1},
		{inf, 1, 0},
	}
	tour, err := problems.NewTour(dist, nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(tour.Length(), 1))
	assert.True(t, math.IsInf(tour.Evaluate(), -1))
}

func TestTour_TwoOptUncrossesHexagon(t *testing.T) {
	pts := [][2]float64{
		{1, 0}, {0.5, math.Sqrt(3) / 2}, {-0.5, math.Sqrt(3) / 2},
		{-1, 0}, {-0.5, -math.Sqrt(3) / 2}, {0.5, -math.Sqrt(3) / 2},
	}
	start, err := problems.NewTour(problems.EuclideanMatrix(pts), []int{0, 3, 1, 4, 2, 5})
	require.NoError(t, err)

	res := localsearch.Climb[problems.Tour, float64](start, localsearch.WithMaxIterations(50))
	assert.InDelta(t, 6.0, res.State.Length(), 1e-9, "hexagon perimeter")
	assert.Equal(t, localsearch.StopLocalOptimum, res.Reason)
	assert.Greater(t, res.Score, start.Evaluate())
}

// -----------------------------------------------------------------------------
// Knapsack
// -----------------------------------------------------------------------------

func TestNewKnapsack_Errors(t *testing.T) {
	items := []problems.Item{{Weight: 2, Value: 3}, {Weight: 4, Value: 1}}

	_, err := problems.NewKnapsack(items, -1, nil)
	assert.ErrorIs(t, err, problems.ErrNegativeCapacity)

	_, err = problems.NewKnapsack([]problems.Item{{Weight: -1, Value: 1}}, 5, nil)
	assert.ErrorIs(t, err, problems.ErrInvalidItem)

	_, err = problems.NewKnapsack(items, 5, []bool{true})
	assert.ErrorIs(t, err, problems.ErrDimensionMismatch)

	_, err = problems.NewKnapsack(items, 5, []bool{true, true})
	assert.ErrorIs(t, err, problems.ErrOverCapacity)
}

func TestKnapsack_SuccessorsRespectCapacity(t *testing.T) {
	k, err := problems.NewKnapsack(
		[]problems.Item{{Weight: 3, Value: 1}, {Weight: 8, Value: 1}},
		10,
		[]bool{true, false},
	)
	require.NoError(t, err)

	succ := k.Successors()
	require.Len(t, succ, 1, "adding item 1 would weigh 11")
	assert.Empty(t, succ[0].Taken())
	assert.Equal(t, []int{0}, k.Taken(), "receiver untouched")
}

func TestKnapsack_Climb(t *testing.T) {
	items := []problems.Item{
		{Weight: 5, Value: 10},
		{Weight: 4, Value: 40},
		{Weight: 6, Value: 30},
		{Weight: 3, Value: 50},
	}
	k, err := problems.NewKnapsack(items, 10, nil)
	require.NoError(t, err)

	res := localsearch.Climb[problems.Knapsack, int](k, localsearch.WithMaxIterations(20))
	assert.Equal(t, []int{1, 3}, res.State.Taken())
	assert.Equal(t, 90, res.Score)
	assert.Equal(t, 7, res.State.Weight())
	assert.Equal(t, 2, res.Accepted)
	assert.Equal(t, localsearch.StopLocalOptimum, res.Reason)
}

func TestKnapsack_EmptyInstanceIsDeadEnd(t *testing.T) {
	k, err := problems.NewKnapsack(nil, 0, nil)
	require.NoError(t, err)

	res := localsearch.Climb[problems.Knapsack, int](k)
	assert.Equal(t, localsearch.StopDeadEnd, res.Reason)
	assert.Zero(t, res.Score)
}

// square returns the unit square corners in boundary order.
func square() [][2]float64 {
	return [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}
