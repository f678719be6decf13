package routing

import (
	"errors"
)

//*******************************************
// errors
//*******************************************

var (
	// Returned before any search runs when a source, start or goal is
	// out of bounds or blocked, or when an edge weight is negative.
	ErrInvalidInput = errors.New("invalid input")

	// Returned before any search runs for graphs without nodes or
	// grids without rows or columns.
	ErrEmptyGraph = errors.New("empty graph")
)
