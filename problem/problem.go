package problem

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlbench/auxdata"
	"github.com/katalvlaran/lvlbench/compose"
	"github.com/katalvlaran/lvlbench/transform"
)

// Problem is a continuous benchmark objective: a kernel bound to its
// instance-specific transformation parameters and bias. Construct with
// NewReal; the zero value is not usable.
//
// A Problem owns a scratch buffer reused across Evaluate calls; evaluate
// one instance from one goroutine at a time, or construct one Problem per
// worker (auxiliary buffers are shared read-only either way).
type Problem struct {
	name     string
	version  auxdata.Version
	fn       int
	instance int
	dim      int

	def  definition
	spec transform.Spec

	// shuffle, when non-nil, reorders coordinates between the full-dim
	// transform and the hybrid split.
	shuffle []int

	// Per-component views into the composition buffers.
	compShift [][]float64
	compRot   [][]float64

	bias float64

	optX []float64
	optY float64

	scratch []float64
	comps   []compose.Component
}

// Name returns "CEC<year>_F<fn>_<kernel-or-recipe>".
func (p *Problem) Name() string {
	return p.name
}

// FunctionID returns the function id within the suite version.
func (p *Problem) FunctionID() int { return p.fn }

// Instance returns the instance number the problem was built with.
func (p *Problem) Instance() int { return p.instance }

// Dimension returns the configured input length.
func (p *Problem) Dimension() int { return p.dim }

// Version returns the suite release the problem belongs to.
func (p *Problem) Version() auxdata.Version { return p.version }

// Optimum returns a copy of the transformed optimum input and its
// objective value. The value was produced by the same forward path
// Evaluate uses, so Evaluate(x) == y to floating-point tolerance.
func (p *Problem) Optimum() (x []float64, y float64) {
	return append([]float64(nil), p.optX...), p.optY
}

// Evaluate computes the objective at x. The only per-call failure is a
// wrong input length; it is reported immediately and touches no state.
//
// Complexity: O(dim²) when rotating, O(dim) otherwise; O(k·dim²) for a
// k-component composition.
func (p *Problem) Evaluate(x []float64) (float64, error) {
	if len(x) != p.dim {
		return 0, ErrDimensionMismatch
	}

	switch p.def.kind {
	case defSingle:
		return p.evalSingle(x)
	case defHybrid:
		return p.evalHybrid(x)
	default:
		return p.evalComposition(x)
	}
}

func (p *Problem) evalSingle(x []float64) (float64, error) {
	copy(p.scratch, x)
	if err := transform.Apply(p.scratch, p.spec); err != nil {
		return 0, err
	}

	return p.def.kernels[0].Evaluate(p.scratch) + p.bias, nil
}

func (p *Problem) evalHybrid(x []float64) (float64, error) {
	copy(p.scratch, x)
	if err := transform.Apply(p.scratch, p.spec); err != nil {
		return 0, err
	}
	if p.shuffle != nil {
		if err := transform.Shuffle(p.scratch, p.shuffle); err != nil {
			return 0, err
		}
	}

	var y float64
	for k, part := range splitParts(p.dim, len(p.def.kernels)) {
		y += p.def.kernels[k].Evaluate(p.scratch[part[0]:part[1]])
	}

	return y + p.bias, nil
}

func (p *Problem) evalComposition(x []float64) (float64, error) {
	for i, k := range p.def.kernels {
		copy(p.scratch, x)
		sub := transform.Spec{
			Shift:       p.compShift[i],
			Rotation:    p.compRot[i],
			ScaleRate:   p.def.rates[i],
			ApplyShift:  p.spec.ApplyShift,
			ApplyRotate: p.spec.ApplyRotate,
		}
		if err := transform.Apply(p.scratch, sub); err != nil {
			return 0, err
		}
		raw := k.Evaluate(p.scratch)

		d2, err := compose.DistSq(x, p.compShift[i])
		if err != nil {
			return 0, err
		}
		p.comps[i] = compose.Component{
			Raw:    raw,
			Bias:   p.def.locals[i],
			Lambda: p.def.lambdas[i],
			Sigma:  p.def.sigmas[i],
			DistSq: d2,
		}
	}

	y, err := compose.Blend(p.dim, p.comps, nil)
	if err != nil {
		return 0, err
	}

	return y + p.bias, nil
}

// splitParts divides dim coordinates evenly across k hybrid parts; the
// last part absorbs the remainder. Returns [start, end) offset pairs.
func splitParts(dim, k int) [][2]int {
	parts := make([][2]int, k)
	size := dim / k
	start := 0
	for i := 0; i < k; i++ {
		end := start + size
		if i == k-1 {
			end = dim
		}
		parts[i] = [2]int{start, end}
		start = end
	}

	return parts
}

// displayName builds the canonical problem name.
func displayName(v auxdata.Version, fn int, recipe string) string {
	return fmt.Sprintf("%s_F%d_%s", strings.ToUpper(v.Tag()), fn, recipe)
}
