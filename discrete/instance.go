// Package discrete - instance-seeded variable and objective transforms.
//
// An instance number deterministically parameterizes how a problem
// disguises its kernel: a xor flip pattern or a coordinate reorder on the
// variables, and an affine scale/shift on the objective. Range policy
// (which instances flip, which reorder) belongs to the problem package;
// this file provides only the seeded mechanics.
package discrete

// FlipMask returns a deterministic 0/1 pattern of length n; each bit is
// set with probability ½ under the seeded stream. Xor-ing a bit string
// with the mask is a self-inverse variable transform.
//
// Complexity: O(n).
func FlipMask(n int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, ErrBadLength
	}

	rng := rngFromSeed(seed)
	mask := make([]int, n)
	for i := range mask {
		if rng.Float64() < 0.5 {
			mask[i] = 1
		}
	}

	return mask, nil
}

// Reorder returns a deterministic permutation of [0, n) via an in-place
// Fisher–Yates shuffle of the identity under the seeded stream.
//
// Complexity: O(n).
func Reorder(n int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, ErrBadLength
	}

	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	rng := rngFromSeed(seed)
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p, nil
}

// Uniform returns one deterministic draw from [lo, hi) under the seeded
// stream; used for instance-derived objective scale and shift values.
//
// Complexity: O(1).
func Uniform(seed int64, lo, hi float64) (float64, error) {
	if lo > hi {
		return 0, ErrBadRange
	}

	return lo + rngFromSeed(seed).Float64()*(hi-lo), nil
}
