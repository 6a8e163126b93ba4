// Package problem - per-version function definition tables.
//
// Each suite release fixes which kernel(s) a function id drives, the
// pre-rotation scale rate, and — for compositions — per-component rates,
// weights, falloff widths and local biases. Definitions are looked up
// once at construction; no version conditionals reach evaluation code.
// Hybrid and composition entries deliberately use origin-optimum kernels
// so the transformed optimum collapses onto the shift data.
package problem

import "github.com/katalvlaran/lvlbench/auxdata"

type defKind int

const (
	defSingle defKind = iota
	defHybrid
	defComposition
)

// definition is one function id's recipe.
type definition struct {
	kind    defKind
	name    string
	kernels []Kernel

	// scaleRate applies to single and hybrid functions.
	scaleRate float64

	// Per-component parameters; composition functions only.
	rates   []float64
	lambdas []float64
	sigmas  []float64
	locals  []float64
}

var cec2022Defs = map[int]definition{
	1: {kind: defSingle, name: "Zakharov", kernels: []Kernel{Zakharov{}}, scaleRate: 1},
	2: {kind: defSingle, name: "Rosenbrock", kernels: []Kernel{Rosenbrock{}}, scaleRate: 2.048 / 100},
	3: {kind: defSingle, name: "Rastrigin", kernels: []Kernel{Rastrigin{}}, scaleRate: 5.12 / 100},
	4: {kind: defSingle, name: "BentCigar", kernels: []Kernel{BentCigar{}}, scaleRate: 1},
	5: {kind: defSingle, name: "Ackley", kernels: []Kernel{Ackley{}}, scaleRate: 1},
	6: {kind: defHybrid, name: "Hybrid1", kernels: []Kernel{BentCigar{}, Rastrigin{}}, scaleRate: 1},
	7: {kind: defHybrid, name: "Hybrid2", kernels: []Kernel{Zakharov{}, Ackley{}, Rastrigin{}}, scaleRate: 1},
	8: {kind: defHybrid, name: "Hybrid3", kernels: []Kernel{Sphere{}, Griewank{}}, scaleRate: 1},
	9: {kind: defComposition, name: "Composition1",
		kernels: []Kernel{Rastrigin{}, Griewank{}, Ackley{}},
		rates:   []float64{5.12 / 100, 6, 1},
		lambdas: []float64{1, 10, 1},
		sigmas:  []float64{10, 20, 30},
		locals:  []float64{0, 100, 200}},
	10: {kind: defComposition, name: "Composition2",
		kernels: []Kernel{BentCigar{}, Zakharov{}, Sphere{}},
		rates:   []float64{1, 1, 1},
		lambdas: []float64{1, 1, 1},
		sigmas:  []float64{10, 20, 30},
		locals:  []float64{0, 100, 200}},
}

var cec2021Defs = map[int]definition{
	1: {kind: defSingle, name: "BentCigar", kernels: []Kernel{BentCigar{}}, scaleRate: 1},
	2: {kind: defSingle, name: "Rastrigin", kernels: []Kernel{Rastrigin{}}, scaleRate: 5.12 / 100},
	3: {kind: defSingle, name: "Zakharov", kernels: []Kernel{Zakharov{}}, scaleRate: 1},
	4: {kind: defSingle, name: "Rosenbrock", kernels: []Kernel{Rosenbrock{}}, scaleRate: 2.048 / 100},
	5: {kind: defHybrid, name: "Hybrid1", kernels: []Kernel{Sphere{}, Rastrigin{}}, scaleRate: 1},
	6: {kind: defHybrid, name: "Hybrid2", kernels: []Kernel{BentCigar{}, Ackley{}}, scaleRate: 1},
	7: {kind: defHybrid, name: "Hybrid3", kernels: []Kernel{Zakharov{}, Rastrigin{}, Griewank{}}, scaleRate: 1},
	8: {kind: defComposition, name: "Composition1",
		kernels: []Kernel{Rastrigin{}, Griewank{}, Ackley{}},
		rates:   []float64{5.12 / 100, 6, 1},
		lambdas: []float64{1, 10, 1},
		sigmas:  []float64{10, 20, 30},
		locals:  []float64{0, 100, 200}},
	9: {kind: defComposition, name: "Composition2",
		kernels: []Kernel{BentCigar{}, Zakharov{}, Sphere{}},
		rates:   []float64{1, 1, 1},
		lambdas: []float64{1, 1, 1},
		sigmas:  []float64{10, 20, 30},
		locals:  []float64{0, 100, 200}},
	10: {kind: defComposition, name: "Composition3",
		kernels: []Kernel{Rastrigin{}, Ackley{}, Sphere{}},
		rates:   []float64{5.12 / 100, 1, 1},
		lambdas: []float64{1, 1, 1},
		sigmas:  []float64{10, 20, 30},
		locals:  []float64{0, 100, 200}},
}

// definitionsFor returns the function table of a version, when shipped.
func definitionsFor(v auxdata.Version) (map[int]definition, bool) {
	switch v {
	case auxdata.CEC2021:
		return cec2021Defs, true
	case auxdata.CEC2022:
		return cec2022Defs, true
	default:
		return nil, false
	}
}
