package discrete

import "errors"

var (
	// ErrBadLength indicates a negative bit-string length.
	ErrBadLength = errors.New("discrete: length must be non-negative")

	// ErrBadRatio indicates a selection ratio outside [0, 1].
	ErrBadRatio = errors.New("discrete: ratio must lie in [0, 1]")

	// ErrBadBlock indicates a non-positive block size.
	ErrBadBlock = errors.New("discrete: block size must be positive")

	// ErrBadRange indicates an interval with lo > hi.
	ErrBadRange = errors.New("discrete: invalid interval")
)
