package transform

import "errors"

var (
	// ErrDimensionMismatch indicates an operand (shift vector, permutation,
	// …) is shorter than the input vector it must cover.
	ErrDimensionMismatch = errors.New("transform: dimension mismatch")

	// ErrNotSquare indicates the rotation matrix holds fewer than dim×dim
	// elements for the requested dimension.
	ErrNotSquare = errors.New("transform: rotation matrix is not dim×dim")

	// ErrIndexRange indicates a shuffle permutation entry lies outside
	// [0, dim).
	ErrIndexRange = errors.New("transform: permutation index out of range")
)
