package compose

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNoComponents indicates Blend was called with no components.
	ErrNoComponents = errors.New("compose: no components to blend")

	// ErrComponentMismatch indicates a component's shift reference is
	// shorter than the input vector.
	ErrComponentMismatch = errors.New("compose: component shift shorter than input")
)

// Component carries one sub-kernel's contribution to a composition.
type Component struct {
	// Raw is the kernel value at the component's transformed input.
	Raw float64

	// Bias is the component-local offset added after weighting.
	Bias float64

	// Lambda scales Raw before the bias is added. Set it explicitly; a
	// zero Lambda legitimately silences the component.
	Lambda float64

	// Sigma is the falloff width used by the weight strategy.
	Sigma float64

	// DistSq is the squared distance between the problem input and the
	// component's own shift vector (see DistSq).
	DistSq float64
}

// WeightFunc derives a component weight from its squared distance, the
// problem dimension and the component's falloff width. Implementations
// may return +Inf to claim the input outright (exact optimum hit).
type WeightFunc func(distSq float64, dim int, sigma float64) float64

// GaussianWeight is the reference falloff: proximity-dominated by
// 1/√d² and damped by exp(-d²/(2·dim·σ²)). A zero distance returns +Inf,
// selecting the component exactly.
func GaussianWeight(distSq float64, dim int, sigma float64) float64 {
	if distSq == 0 {
		return math.Inf(1)
	}

	return math.Exp(-distSq/(2*float64(dim)*sigma*sigma)) / math.Sqrt(distSq)
}

// DistSq returns the squared Euclidean distance between x and the first
// len(x) entries of shift.
//
// Complexity: O(dim).
func DistSq(x, shift []float64) (float64, error) {
	if len(shift) < len(x) {
		return 0, ErrComponentMismatch
	}

	d := floats.Distance(x, shift[:len(x)], 2)

	return d * d, nil
}

// Blend composes the components into one scalar using wf (GaussianWeight
// when nil). An infinite weight short-circuits to that component's value;
// an all-zero weight set falls back to equal weights.
//
// Complexity: O(k) for k components.
func Blend(dim int, comps []Component, wf WeightFunc) (float64, error) {
	if len(comps) == 0 {
		return 0, ErrNoComponents
	}
	if wf == nil {
		wf = GaussianWeight
	}

	weights := make([]float64, len(comps))
	for i, c := range comps {
		w := wf(c.DistSq, dim, c.Sigma)
		if math.IsInf(w, 1) {
			return c.Lambda*c.Raw + c.Bias, nil
		}
		weights[i] = w
	}

	sum := floats.Sum(weights)
	if sum == 0 {
		for i := range weights {
			weights[i] = 1
		}
		sum = float64(len(weights))
	}

	var acc float64
	for i, c := range comps {
		acc += weights[i] / sum * (c.Lambda*c.Raw + c.Bias)
	}

	return acc, nil
}
