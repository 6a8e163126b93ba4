package transform_test

import (
	"testing"

	"github.com/katalvlaran/lvlbench/transform"
)

// benchmarkApply runs the full pipeline on a dim-sized vector with a
// dense identity rotation; it reports the steady-state cost of one
// forward transformation.
func benchmarkApply(b *testing.B, dim int) {
	spec := transform.DefaultSpec()
	spec.Shift = make([]float64, dim)
	spec.ApplyShift = true
	spec.Rotation = make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		spec.Shift[i] = float64(i)
		spec.Rotation[i*dim+i] = 1
	}
	spec.ApplyRotate = true

	x := make([]float64, dim)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range x {
			x[j] = float64(j)
		}
		if err := transform.Apply(x, spec); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}

// BenchmarkApply_D10 benchmarks the pipeline at dimension 10.
func BenchmarkApply_D10(b *testing.B) { benchmarkApply(b, 10) }

// BenchmarkApply_D50 benchmarks the pipeline at dimension 50.
func BenchmarkApply_D50(b *testing.B) { benchmarkApply(b, 50) }

// BenchmarkApply_D100 benchmarks the pipeline at dimension 100.
func BenchmarkApply_D100(b *testing.B) { benchmarkApply(b, 100) }
