package problem

// Kernel is the capability a continuous base function exposes: evaluate
// an already-transformed input and name the untransformed optimum input.
// Kernels are stateless value types; the transformation engine never
// needs to know which closed form it is driving.
type Kernel interface {
	// Name returns the kernel's conventional name.
	Name() string

	// Evaluate computes the raw kernel value at z. The caller guarantees
	// the length; kernels do not validate.
	Evaluate(z []float64) float64

	// OptimumInput returns the input of the kernel's global optimum in
	// untransformed (kernel) space at the given dimension.
	OptimumInput(dim int) []float64
}

// BitKernel is the bit-string analogue of Kernel.
type BitKernel interface {
	Name() string

	// Evaluate computes the raw objective of a 0/1 string. The caller
	// guarantees the length and bit domain.
	Evaluate(x []int) float64

	// OptimumInput returns the untransformed optimum bit string.
	OptimumInput(dim int) []int
}
