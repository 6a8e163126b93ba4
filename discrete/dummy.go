package discrete

import (
	"math"
	"sort"
)

// DummyMask deterministically selects ⌊ratio×n⌋ distinct bit positions
// from [0, n) using the given seed and returns them sorted ascending.
// The unselected positions act as dummy variables: coordinates an
// objective ignores by design, testing robustness to irrelevant
// dimensions.
//
// The draw is a partial Fisher–Yates selection: position t is picked
// uniformly from the not-yet-retired prefix, then retired. Equal
// arguments always produce the same subset; no global state is read or
// written.
//
// Complexity: O(n + m·log m) time for m selected positions.
func DummyMask(n int, ratio float64, seed int64) ([]int, error) {
	if n < 0 {
		return nil, ErrBadLength
	}
	if ratio < 0 || ratio > 1 {
		return nil, ErrBadRatio
	}

	m := int(math.Floor(float64(n) * ratio))
	pos := make([]int, n)
	for i := range pos {
		pos[i] = i
	}

	rng := rngFromSeed(seed)
	out := make([]int, 0, m)
	for i := 0; i < m; i++ {
		t := rng.Intn(n - i)
		out = append(out, pos[t])
		pos[t] = pos[n-1-i]
	}
	sort.Ints(out)

	return out, nil
}
