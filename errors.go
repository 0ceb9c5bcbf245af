package npoint

import (
	"errors"
	"strconv"
)

var (
	// ErrDimensionMismatch is matched by every DimensionError.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrNoDimensions is returned for an ntree built from empty points.
	ErrNoDimensions = errors.New("can't have 0-dimensional ntree")
	// ErrTooManyDimensions is returned for an ntree with more than MaxN dimensions.
	ErrTooManyDimensions = errors.New("ntree is limited to <= 16 dimensions")
	// ErrInvalidBounds is returned when a bounds coordinate is not positive and finite.
	ErrInvalidBounds = errors.New("bounding size <= 0 or infinite")
	// ErrOutOfBounds is returned by Add for a point outside the ntree.
	ErrOutOfBounds = errors.New("point doesn't fall within bounds of ntree")
	// ErrNilEntry is returned by Add for a nil entry.
	ErrNilEntry = errors.New("entry is nil")
	// ErrMaxDepth is returned when an insert would subdivide past the max depth.
	ErrMaxDepth = errors.New("ntree max depth reached")
)

// DimensionError reports two operands whose dimensions differ.
type DimensionError struct {
	Want, Got int
}

func (e *DimensionError) Error() string {
	return "point is " + strconv.Itoa(e.Got) + " dimensional, expected " + strconv.Itoa(e.Want)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func checkDim(want, got int) error {
	if want != got {
		return &DimensionError{Want: want, Got: got}
	}
	return nil
}
