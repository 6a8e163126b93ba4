// Package problem - the pseudo-Boolean family.
//
// Seventeen bit-string functions: OneMax, LeadingOnes and a linear
// harmonic weighting, plus the w-model layers (dummy variables,
// neutrality, epistasis, ruggedness) stacked on the first two. Instance
// numbers disguise a kernel with a xor flip pattern or a coordinate
// reorder on the variables and an affine scale/shift on the objective;
// the transformed optimum is pushed through the same forward path, so
// the reported value is self-consistent by construction.
package problem

import (
	"fmt"

	"github.com/katalvlaran/lvlbench/discrete"
)

// dummySeed fixes the dummy-variable subset across instances; the subset
// is part of the function definition, not of the instance transform.
const dummySeed int64 = 10000

// Independent seed streams derived from one instance number.
const (
	streamFlip uint64 = iota + 1
	streamReorder
	streamScale
	streamShift
)

type oneMax struct{}

func (oneMax) Name() string { return "OneMax" }

func (oneMax) Evaluate(x []int) float64 {
	s := 0
	for _, b := range x {
		s += b
	}

	return float64(s)
}

func (oneMax) OptimumInput(dim int) []int { return onesBits(dim) }

type leadingOnes struct{}

func (leadingOnes) Name() string { return "LeadingOnes" }

func (leadingOnes) Evaluate(x []int) float64 {
	for i, b := range x {
		if b != 1 {
			return float64(i)
		}
	}

	return float64(len(x))
}

func (leadingOnes) OptimumInput(dim int) []int { return onesBits(dim) }

// linearHarmonic is Σ (i+1)·xᵢ with 1-based weights.
type linearHarmonic struct{}

func (linearHarmonic) Name() string { return "Linear" }

func (linearHarmonic) Evaluate(x []int) float64 {
	var s float64
	for i, b := range x {
		s += float64(i+1) * float64(b)
	}

	return s
}

func (linearHarmonic) OptimumInput(dim int) []int { return onesBits(dim) }

// subsetKernel evaluates its base rule over the masked positions only;
// the remaining coordinates are dummy variables the objective ignores.
type subsetKernel struct {
	name string
	mask []int
	base BitKernel
}

func (k subsetKernel) Name() string { return k.name }

func (k subsetKernel) Evaluate(x []int) float64 {
	sub := make([]int, len(k.mask))
	for i, p := range k.mask {
		sub[i] = x[p]
	}

	return k.base.Evaluate(sub)
}

func (k subsetKernel) OptimumInput(dim int) []int { return onesBits(dim) }

// neutralityKernel folds blocks by majority vote before the base rule.
type neutralityKernel struct {
	name string
	base BitKernel
	mu   int
}

func (k neutralityKernel) Name() string { return k.name }

func (k neutralityKernel) Evaluate(x []int) float64 {
	folded, err := discrete.Neutrality(x, k.mu)
	if err != nil {
		return 0
	}

	return k.base.Evaluate(folded)
}

func (k neutralityKernel) OptimumInput(dim int) []int { return onesBits(dim) }

// epistasisKernel applies the XOR block remapping before the base rule.
type epistasisKernel struct {
	name  string
	base  BitKernel
	block int
}

func (k epistasisKernel) Name() string { return k.name }

func (k epistasisKernel) Evaluate(x []int) float64 {
	mapped, err := discrete.Epistasis(x, k.block)
	if err != nil {
		return 0
	}

	return k.base.Evaluate(mapped)
}

func (k epistasisKernel) OptimumInput(dim int) []int {
	return epistasisOptimum(dim, k.block)
}

// ruggedKernel remaps the base rule's integer fitness afterwards.
type ruggedKernel struct {
	name  string
	base  BitKernel
	remap func(y float64, n int) float64
}

func (k ruggedKernel) Name() string { return k.name }

func (k ruggedKernel) Evaluate(x []int) float64 {
	return k.remap(k.base.Evaluate(x), len(x))
}

func (k ruggedKernel) OptimumInput(dim int) []int {
	return k.base.OptimumInput(dim)
}

func onesBits(dim int) []int {
	x := make([]int, dim)
	for i := range x {
		x[i] = 1
	}

	return x
}

// epistasisOptimum returns a pre-image whose remapped string maximizes
// the base rule. For blocks of even size the all-ones image is exactly
// invertible; odd blocks larger than one can only reach images of even
// parity, so the best image carries a single trailing zero. A block of
// size one always maps to zero and its input is irrelevant.
func epistasisOptimum(dim, block int) []int {
	opt := make([]int, dim)
	for start := 0; start < dim; start += block {
		v := block
		if start+v > dim {
			v = dim - start
		}
		if v == 1 {
			opt[start] = 1
			continue
		}
		target := onesBits(v)
		if v%2 == 1 {
			target[v-1] = 0
		}
		for h := 0; h < v; h++ {
			opt[start+((h-1+v)%v)] = target[h]
		}
	}

	return opt
}

// bitKernelFor resolves a pseudo-Boolean function id to its kernel. Ids
// 1..3 are the plain rules; 4..10 layer the w-model over OneMax and
// 11..17 over LeadingOnes. The catalog stops at 17: the published ids
// above it (LABS, Ising variants, MIS, NQueens, concatenated traps, NK
// landscapes) are graph/energy models outside this library's scope.
func bitKernelFor(fn, dim int) (BitKernel, error) {
	layered := func(base BitKernel, id int) (BitKernel, error) {
		prefix := base.Name()
		switch id {
		case 0, 1: // dummy variables at ratio 0.5 / 0.9
			ratio := 0.5
			if id == 1 {
				ratio = 0.9
			}
			mask, err := discrete.DummyMask(dim, ratio, dummySeed)
			if err != nil {
				return nil, err
			}

			return subsetKernel{name: fmt.Sprintf("%sDummy%d", prefix, id+1), mask: mask, base: base}, nil
		case 2:
			return neutralityKernel{name: prefix + "Neutrality", base: base, mu: 3}, nil
		case 3:
			return epistasisKernel{name: prefix + "Epistasis", base: base, block: 4}, nil
		case 4:
			return ruggedKernel{name: prefix + "Ruggedness1", base: base, remap: discrete.Ruggedness1}, nil
		case 5:
			return ruggedKernel{name: prefix + "Ruggedness2", base: base, remap: discrete.Ruggedness2}, nil
		default:
			table := discrete.Ruggedness3Table(dim)

			return ruggedKernel{name: prefix + "Ruggedness3", base: base,
				remap: func(y float64, _ int) float64 { return table[int(y)] }}, nil
		}
	}

	switch {
	case fn == 1:
		return oneMax{}, nil
	case fn == 2:
		return leadingOnes{}, nil
	case fn == 3:
		return linearHarmonic{}, nil
	case fn >= 4 && fn <= 10:
		return layered(oneMax{}, fn-4)
	case fn >= 11 && fn <= 17:
		return layered(leadingOnes{}, fn-11)
	default:
		return nil, fmt.Errorf("fn %d: %w", fn, ErrUnknownFunction)
	}
}

// BitProblem is a pseudo-Boolean benchmark objective: a bit kernel bound
// to its instance transforms. Construct with NewBits; the zero value is
// not usable. Like Problem, a BitProblem reuses a scratch buffer, so
// evaluate one instance from one goroutine at a time.
type BitProblem struct {
	name     string
	fn       int
	instance int
	dim      int

	kernel BitKernel

	// flip and reorder are mutually exclusive; both nil for the plain
	// instance.
	flip    []int
	reorder []int

	scale  float64
	shiftY float64

	optX []int
	optY float64

	scratch []int
}

// NewBits constructs a pseudo-Boolean problem. Instance 1 is the plain
// function; instances 2..50 xor the variables with a seeded flip
// pattern, 51..100 apply a seeded coordinate reorder, and every instance
// above 1 additionally rescales the objective affinely.
func NewBits(fn, instance, dim int) (*BitProblem, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dim %d: %w", dim, ErrBadDimension)
	}
	if instance < 1 {
		return nil, ErrBadInstance
	}

	kernel, err := bitKernelFor(fn, dim)
	if err != nil {
		return nil, err
	}

	p := &BitProblem{
		name:     fmt.Sprintf("PBO_F%d_%s", fn, kernel.Name()),
		fn:       fn,
		instance: instance,
		dim:      dim,
		kernel:   kernel,
		scale:    1,
		scratch:  make([]int, dim),
	}

	switch {
	case instance >= 2 && instance <= 50:
		p.flip, err = discrete.FlipMask(dim, discrete.DeriveSeed(int64(instance), streamFlip))
		if err != nil {
			return nil, err
		}
	case instance >= 51 && instance <= 100:
		p.reorder, err = discrete.Reorder(dim, discrete.DeriveSeed(int64(instance), streamReorder))
		if err != nil {
			return nil, err
		}
	}
	if instance > 1 {
		p.scale, err = discrete.Uniform(discrete.DeriveSeed(int64(instance), streamScale), 0.2, 5)
		if err != nil {
			return nil, err
		}
		p.shiftY, err = discrete.Uniform(discrete.DeriveSeed(int64(instance), streamShift), -1000, 1000)
		if err != nil {
			return nil, err
		}
	}

	p.deriveOptimum()

	return p, nil
}

// Name returns "PBO_F<fn>_<kernel>".
func (p *BitProblem) Name() string { return p.name }

// FunctionID returns the function id.
func (p *BitProblem) FunctionID() int { return p.fn }

// Instance returns the instance number the problem was built with.
func (p *BitProblem) Instance() int { return p.instance }

// Dimension returns the configured bit-string length.
func (p *BitProblem) Dimension() int { return p.dim }

// Optimum returns a copy of the transformed optimum bit string and its
// objective value, produced by the same forward path Evaluate uses.
func (p *BitProblem) Optimum() (x []int, y float64) {
	return append([]int(nil), p.optX...), p.optY
}

// Evaluate computes the objective of a 0/1 string of the configured
// length. The only per-call failure is a wrong input length.
//
// Complexity: O(dim) plus the kernel's own cost.
func (p *BitProblem) Evaluate(x []int) (float64, error) {
	if len(x) != p.dim {
		return 0, ErrDimensionMismatch
	}

	z := p.scratch
	switch {
	case p.flip != nil:
		for i := range x {
			z[i] = x[i] ^ p.flip[i]
		}
	case p.reorder != nil:
		for i := range x {
			z[i] = x[p.reorder[i]]
		}
	default:
		copy(z, x)
	}

	return p.kernel.Evaluate(z)*p.scale + p.shiftY, nil
}

// deriveOptimum maps the kernel-space optimum back through the inverse
// variable transform, then evaluates it forward. The flip pattern is
// self-inverse; the reorder inverts by scattering.
func (p *BitProblem) deriveOptimum() {
	raw := p.kernel.OptimumInput(p.dim)
	p.optX = make([]int, p.dim)
	switch {
	case p.flip != nil:
		for i := range raw {
			p.optX[i] = raw[i] ^ p.flip[i]
		}
	case p.reorder != nil:
		for i := range raw {
			p.optX[p.reorder[i]] = raw[i]
		}
	default:
		copy(p.optX, raw)
	}

	// Construction controls the input; Evaluate only rejects bad lengths.
	p.optY, _ = p.Evaluate(p.optX)
}
