package problems

import "errors"

// Sentinel errors returned by the constructors.
var (
	// ErrEmptyMatrix is returned when a distance matrix has no rows.
	ErrEmptyMatrix = errors.New("problems: empty distance matrix")

	// ErrDimensionMismatch indicates a non-square matrix, a NaN entry or
	// a selection vector of the wrong length.
	ErrDimensionMismatch = errors.New("problems: dimension mismatch")

	// ErrNegativeWeight is returned for a negative distance.
	ErrNegativeWeight = errors.New("problems: negative weight")

	// ErrInvalidTour indicates an order that is not a permutation starting at 0.
	ErrInvalidTour = errors.New("problems: invalid tour")

	// ErrQueensSize is returned for a board with no columns.
	ErrQueensSize = errors.New("problems: queens board must have at least one column")

	// ErrQueensRow is returned when a queen sits outside the board.
	ErrQueensRow = errors.New("problems: queen row out of range")

	// ErrNegativeCapacity is returned for a knapsack capacity below zero.
	ErrNegativeCapacity = errors.New("problems: negative knapsack capacity")

	// ErrInvalidItem is returned for an item with negative weight or value.
	ErrInvalidItem = errors.New("problems: invalid knapsack item")

	// ErrOverCapacity is returned when the initial selection exceeds capacity.
	ErrOverCapacity = errors.New("problems: selection exceeds capacity")
)
