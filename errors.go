package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a control point or joint index lies
	// outside the spline.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidStructure is returned when points and modes supplied from
	// outside don't describe a spline: the point count isn't 3k+1 with
	// k ≥ 1, the mode count isn't k+1, a point isn't finite, or a looping
	// spline doesn't close.
	ErrInvalidStructure = errors.New("invalid spline structure")
	// ErrInvalidMode is returned for values that aren't a [TangentMode].
	ErrInvalidMode = errors.New("invalid tangent mode")
)

// IndexError describes an out of range access. It matches [ErrOutOfRange]
// with [errors.Is].
type IndexError struct {
	// Op is the operation that failed, such as "SetControlPoint".
	Op    string
	Index int
	// Len is the number of valid indices.
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

func checkIndex(op string, index, n int) error {
	if index < 0 || index >= n {
		return &IndexError{Op: op, Index: index, Len: n}
	}
	return nil
}
