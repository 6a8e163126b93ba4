// Package problem - continuous base kernels.
//
// Closed forms only; every transformation lives outside the kernel. All
// kernels except Rosenbrock attain their optimum (value 0) at the origin,
// which is what lets hybrid and composition optima collapse onto the
// shift data.
package problem

import "math"

// zeros returns the origin optimum shared by most kernels.
func zeros(dim int) []float64 { return make([]float64, dim) }

// Sphere is Σ zᵢ².
type Sphere struct{}

func (Sphere) Name() string { return "Sphere" }

func (Sphere) Evaluate(z []float64) float64 {
	var s float64
	for _, v := range z {
		s += v * v
	}

	return s
}

func (Sphere) OptimumInput(dim int) []float64 { return zeros(dim) }

// BentCigar is z₀² + 10⁶·Σ_{i≥1} zᵢ², a needle-shaped ill-conditioned bowl.
type BentCigar struct{}

func (BentCigar) Name() string { return "BentCigar" }

func (BentCigar) Evaluate(z []float64) float64 {
	if len(z) == 0 {
		return 0
	}
	s := z[0] * z[0]
	for _, v := range z[1:] {
		s += 1e6 * v * v
	}

	return s
}

func (BentCigar) OptimumInput(dim int) []float64 { return zeros(dim) }

// Zakharov is Σ zᵢ² + (Σ 0.5·i·zᵢ)² + (Σ 0.5·i·zᵢ)⁴ with 1-based i.
type Zakharov struct{}

func (Zakharov) Name() string { return "Zakharov" }

func (Zakharov) Evaluate(z []float64) float64 {
	var s1, s2 float64
	for i, v := range z {
		s1 += v * v
		s2 += 0.5 * float64(i+1) * v
	}

	return s1 + s2*s2 + s2*s2*s2*s2
}

func (Zakharov) OptimumInput(dim int) []float64 { return zeros(dim) }

// Rosenbrock is Σ [100·(zᵢ₊₁ - zᵢ²)² + (zᵢ - 1)²]; the optimum sits at
// the all-ones vector, not the origin.
type Rosenbrock struct{}

func (Rosenbrock) Name() string { return "Rosenbrock" }

func (Rosenbrock) Evaluate(z []float64) float64 {
	var s float64
	for i := 0; i+1 < len(z); i++ {
		a := z[i+1] - z[i]*z[i]
		b := z[i] - 1
		s += 100*a*a + b*b
	}

	return s
}

func (Rosenbrock) OptimumInput(dim int) []float64 {
	ones := make([]float64, dim)
	for i := range ones {
		ones[i] = 1
	}

	return ones
}

// Rastrigin is Σ [zᵢ² - 10·cos(2π·zᵢ) + 10], highly multimodal.
type Rastrigin struct{}

func (Rastrigin) Name() string { return "Rastrigin" }

func (Rastrigin) Evaluate(z []float64) float64 {
	var s float64
	for _, v := range z {
		s += v*v - 10*math.Cos(2*math.Pi*v) + 10
	}

	return s
}

func (Rastrigin) OptimumInput(dim int) []float64 { return zeros(dim) }

// Ackley is the classic exponential well:
// -20·exp(-0.2·√(Σz²/n)) - exp(Σcos(2πz)/n) + 20 + e.
type Ackley struct{}

func (Ackley) Name() string { return "Ackley" }

func (Ackley) Evaluate(z []float64) float64 {
	n := float64(len(z))
	if n == 0 {
		return 0
	}
	var sq, cs float64
	for _, v := range z {
		sq += v * v
		cs += math.Cos(2 * math.Pi * v)
	}

	return -20*math.Exp(-0.2*math.Sqrt(sq/n)) - math.Exp(cs/n) + 20 + math.E
}

func (Ackley) OptimumInput(dim int) []float64 { return zeros(dim) }

// Griewank is Σ zᵢ²/4000 - Π cos(zᵢ/√i) + 1 with 1-based i.
type Griewank struct{}

func (Griewank) Name() string { return "Griewank" }

func (Griewank) Evaluate(z []float64) float64 {
	var s float64
	p := 1.0
	for i, v := range z {
		s += v * v / 4000
		p *= math.Cos(v / math.Sqrt(float64(i+1)))
	}

	return s - p + 1
}

func (Griewank) OptimumInput(dim int) []float64 { return zeros(dim) }
