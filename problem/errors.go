package problem

import "errors"

var (
	// ErrDimensionMismatch indicates Evaluate was called with an input
	// whose length differs from the problem's configured dimension.
	ErrDimensionMismatch = errors.New("problem: input dimension mismatch")

	// ErrUnknownFamily indicates a family id outside the supported set.
	ErrUnknownFamily = errors.New("problem: unknown benchmark family")

	// ErrUnknownFunction indicates the requested version/function-id
	// combination has no definition.
	ErrUnknownFunction = errors.New("problem: unknown function id for version")

	// ErrBadDimension indicates a dimension the definition cannot host
	// (non-positive, or smaller than a hybrid's part count).
	ErrBadDimension = errors.New("problem: unsupported dimension")

	// ErrBadInstance indicates a non-positive instance number.
	ErrBadInstance = errors.New("problem: instance must be >= 1")
)
