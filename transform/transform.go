// Package transform - primitive coordinate operations.
//
// Contracts shared by every function in this file:
//   - Operations mutate x in place; the auxiliary operands (shift vector,
//     rotation matrix, permutation) are read-only and may be shared across
//     problems and goroutines.
//   - Operands may be longer than x (composition functions slice rows out
//     of larger buffers); only the first len(x) (or len(x)² for matrices)
//     elements are consumed.
//   - Only sentinel errors from errors.go are returned; no panics on user
//     input.
package transform

import "gonum.org/v1/gonum/mat"

// Shift subtracts the shift vector element-wise: x[i] -= shift[i].
// Requires len(shift) >= len(x).
//
// Complexity: O(dim).
func Shift(x, shift []float64) error {
	if len(shift) < len(x) {
		return ErrDimensionMismatch
	}
	for i := range x {
		x[i] -= shift[i]
	}

	return nil
}

// UnShift adds the shift vector element-wise: x[i] += shift[i].
// It is the exact inverse of Shift and is used when mapping a kernel's
// untransformed optimum back to problem space.
//
// Complexity: O(dim).
func UnShift(x, shift []float64) error {
	if len(shift) < len(x) {
		return ErrDimensionMismatch
	}
	for i := range x {
		x[i] += shift[i]
	}

	return nil
}

// Scale multiplies every element of x by rate: x[i] *= rate.
//
// Complexity: O(dim).
func Scale(x []float64, rate float64) {
	for i := range x {
		x[i] *= rate
	}
}

// Rotate replaces x with m·x, where m is a row-major matrix holding at
// least len(x)² elements. A snapshot of x is taken first so every output
// component is computed from the same pre-rotation input.
//
// Complexity: O(dim²) time, O(dim) extra space for the snapshot.
func Rotate(x, m []float64) error {
	n := len(x)
	if n == 0 {
		return ErrDimensionMismatch
	}
	if len(m) < n*n {
		return ErrNotSquare
	}

	snapshot := make([]float64, n)
	copy(snapshot, x)

	// The receiver shares x's backing array; m and the snapshot are
	// distinct, so MulVec writes each x[i] from an immutable right side.
	dst := mat.NewVecDense(n, x)
	dst.MulVec(mat.NewDense(n, n, m[:n*n]), mat.NewVecDense(n, snapshot))

	return nil
}

// RotateT replaces x with mᵀ·x. Benchmark rotation matrices are
// approximately orthogonal, so RotateT inverts Rotate to floating-point
// tolerance; optimum derivation relies on this.
//
// Complexity: O(dim²) time, O(dim) extra space.
func RotateT(x, m []float64) error {
	n := len(x)
	if n == 0 {
		return ErrDimensionMismatch
	}
	if len(m) < n*n {
		return ErrNotSquare
	}

	snapshot := make([]float64, n)
	copy(snapshot, x)

	dst := mat.NewVecDense(n, x)
	dst.MulVec(mat.NewDense(n, n, m[:n*n]).T(), mat.NewVecDense(n, snapshot))

	return nil
}

// Shuffle reorders x so that x[i] takes the value of the old x[perm[i]].
// Requires len(perm) >= len(x) and every consumed entry in [0, len(x)).
//
// Complexity: O(dim) time, O(dim) extra space for the snapshot.
func Shuffle(x []float64, perm []int) error {
	n := len(x)
	if len(perm) < n {
		return ErrDimensionMismatch
	}

	snapshot := make([]float64, n)
	copy(snapshot, x)
	for i := 0; i < n; i++ {
		j := perm[i]
		if j < 0 || j >= n {
			return ErrIndexRange
		}
		x[i] = snapshot[j]
	}

	return nil
}
