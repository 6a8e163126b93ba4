package problem

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlbench/auxdata"
	"github.com/katalvlaran/lvlbench/compose"
	"github.com/katalvlaran/lvlbench/transform"
)

// Family selects the search-space family of a benchmark problem.
type Family int

const (
	// FamilyReal is the continuous family (shift/rotate/scale pipeline).
	FamilyReal Family = iota

	// FamilyBits is the pseudo-Boolean family (bit-string transforms).
	FamilyBits
)

// Meta is the identification surface every constructed problem exposes,
// regardless of family.
type Meta interface {
	Name() string
	FunctionID() int
	Instance() int
	Dimension() int
}

// New constructs a problem of the given family. Callers that know the
// family statically should call NewReal or NewBits directly for the
// concrete type.
func New(f Family, fn, instance, dim int, opts Options) (Meta, error) {
	switch f {
	case FamilyReal:
		p, err := NewReal(fn, instance, dim, opts)
		if err != nil {
			return nil, err
		}

		return p, nil
	case FamilyBits:
		b, err := NewBits(fn, instance, dim)
		if err != nil {
			return nil, err
		}

		return b, nil
	default:
		return nil, ErrUnknownFamily
	}
}

// NewReal constructs a continuous problem: it resolves the function
// definition, loads the auxiliary buffers, derives the transformed
// optimum and pushes it through the forward evaluation path so the
// reported optimum value is self-consistent by construction.
//
// Errors: ErrUnknownFunction, ErrBadDimension, ErrBadInstance, and the
// auxdata load errors (auxdata.ErrDataUnavailable is subject to
// Options.OnMissingData; malformed data always fails).
func NewReal(fn, instance, dim int, opts Options) (*Problem, error) {
	defs, ok := definitionsFor(opts.Version)
	if !ok {
		return nil, fmt.Errorf("version %s: %w", opts.Version, ErrUnknownFunction)
	}
	def, ok := defs[fn]
	if !ok {
		return nil, fmt.Errorf("fn %d: %w", fn, ErrUnknownFunction)
	}
	if instance < 1 {
		return nil, ErrBadInstance
	}
	if dim < 1 || (def.kind == defHybrid && dim < len(def.kernels)) {
		return nil, fmt.Errorf("dim %d: %w", dim, ErrBadDimension)
	}

	var bias float64
	if opts.ApplyBias {
		bias, _ = Bias(opts.Version, fn)
	}

	p := &Problem{
		name:     displayName(opts.Version, fn, def.name),
		version:  opts.Version,
		fn:       fn,
		instance: instance,
		dim:      dim,
		def:      def,
		bias:     bias,
		scratch:  make([]float64, dim),
	}
	p.spec = transform.DefaultSpec()
	if def.kind != defComposition {
		p.spec.ScaleRate = def.scaleRate
	}

	store := auxdata.NewStore(opts.DataRoot)
	if err := p.loadBuffers(store, opts); err != nil {
		return nil, err
	}
	if def.kind == defComposition {
		p.comps = make([]compose.Component, len(def.kernels))
	}

	if err := p.deriveOptimum(); err != nil {
		return nil, err
	}

	return p, nil
}

// loadBuffers fills the transform spec and the per-component slices from
// the data store, honoring the missing-data policy.
func (p *Problem) loadBuffers(store *auxdata.Store, opts Options) error {
	shift, err := loadOptional(func() (auxdata.FloatBuffer, error) {
		return store.LoadShift(p.version, p.fn, p.dim)
	}, opts.OnMissingData)
	if err != nil {
		return err
	}
	rot, err := loadOptional(func() (auxdata.FloatBuffer, error) {
		return store.LoadRotation(p.version, p.fn, p.dim)
	}, opts.OnMissingData)
	if err != nil {
		return err
	}

	shiftWant, err := auxdata.ShiftLen(p.version, p.fn, p.dim)
	if err != nil {
		return err
	}
	rotWant, err := auxdata.MatrixLen(p.version, p.fn, p.dim)
	if err != nil {
		return err
	}
	shiftVals := padded(shift, shiftWant)
	rotVals := padded(rot, rotWant)

	if p.def.kind == defComposition {
		k := len(p.def.kernels)
		p.compShift = make([][]float64, k)
		p.compRot = make([][]float64, k)
		p.spec.ApplyShift = shiftVals != nil
		p.spec.ApplyRotate = rotVals != nil
		// Distances are measured against the component centers; with no
		// shift data every center is the origin.
		zero := make([]float64, p.dim)
		for i := 0; i < k; i++ {
			p.compShift[i] = zero
			if shiftVals != nil {
				p.compShift[i] = shiftVals[i*p.dim : (i+1)*p.dim]
			}
			if rotVals != nil {
				p.compRot[i] = rotVals[i*p.dim*p.dim : (i+1)*p.dim*p.dim]
			}
		}
	} else {
		if shiftVals != nil {
			p.spec.Shift = shiftVals
			p.spec.ApplyShift = true
		}
		if rotVals != nil {
			p.spec.Rotation = rotVals
			p.spec.ApplyRotate = true
		}
	}

	if p.def.kind == defHybrid {
		idx, err := store.LoadShuffle(p.version, p.fn, p.dim)
		if err != nil {
			if errors.Is(err, auxdata.ErrDataUnavailable) && opts.OnMissingData == IdentityTransform {
				return nil
			}

			return err
		}
		if !idx.Truncated {
			p.shuffle = idx.Index
		} else if opts.OnMissingData == FailConstruction {
			return fmt.Errorf("shuffle for fn %d dim %d truncated: %w",
				p.fn, p.dim, auxdata.ErrDataUnavailable)
		}
	}

	return nil
}

// loadOptional runs one buffer load and maps a missing file to a nil
// buffer under the IdentityTransform policy. Malformed data propagates
// under every policy.
func loadOptional(load func() (auxdata.FloatBuffer, error), pol MissingDataPolicy) (*auxdata.FloatBuffer, error) {
	buf, err := load()
	if err != nil {
		if errors.Is(err, auxdata.ErrDataUnavailable) && pol == IdentityTransform {
			return nil, nil
		}

		return nil, err
	}

	return &buf, nil
}

// padded extends a truncated buffer with zeros to the expected length.
// A nil buffer (identity fallback) stays nil.
func padded(buf *auxdata.FloatBuffer, want int) []float64 {
	if buf == nil {
		return nil
	}
	vals := buf.Values
	for len(vals) < want {
		vals = append(vals, 0)
	}

	return vals
}

// deriveOptimum computes the transformed optimum input and evaluates it
// through the normal forward path. Hybrid and composition recipes use
// origin-optimum kernels exclusively, so their kernel-space optimum is
// the zero vector and the problem-space optimum is the (first) shift row.
func (p *Problem) deriveOptimum() error {
	p.optX = make([]float64, p.dim)

	switch p.def.kind {
	case defSingle:
		copy(p.optX, p.def.kernels[0].OptimumInput(p.dim))
		if err := transform.Invert(p.optX, p.spec); err != nil {
			return err
		}
	case defHybrid:
		if p.spec.ApplyShift {
			copy(p.optX, p.spec.Shift)
		}
	default:
		if p.spec.ApplyShift {
			copy(p.optX, p.compShift[0])
		}
	}

	y, err := p.Evaluate(p.optX)
	if err != nil {
		return err
	}
	p.optY = y

	return nil
}
