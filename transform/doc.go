// Package transform provides the continuous coordinate operations shared
// by all benchmark families: shift, scale, rotate, shuffle, and their
// fixed-order composition.
//
// What:
//
//   - Shift / UnShift: element-wise subtraction/addition of a shift vector.
//   - Scale: element-wise multiplication by a rate.
//   - Rotate: x ← M·x using a snapshot of x, so every output component is
//     computed from the same pre-rotation input (no aliasing hazard).
//   - RotateT: x ← Mᵀ·x; for (approximately) orthogonal M this is the
//     inverse rotation, used when deriving transformed optima.
//   - Shuffle: coordinate reorder by a permutation.
//   - Apply: shift (optional) → scale (always) → rotate (optional).
//     The order is load-bearing: scaling before rotation produces a
//     different geometry than rotating first, and reference values of the
//     benchmark suites are only reproduced with this exact order.
//
// Why:
//
//   - One instance-seeded transformation pipeline makes thousands of
//     statistically related problem variants out of a handful of kernels.
//
// Complexity:
//
//   - Shift/UnShift/Scale/Shuffle: O(dim) time, Rotate/RotateT: O(dim²).
//   - Rotate allocates one O(dim) snapshot per call; callers that evaluate
//     one problem from one goroutine at a time need nothing further.
//
// Errors:
//
//   - ErrDimensionMismatch: operand shorter than the input vector.
//   - ErrNotSquare: rotation matrix smaller than dim×dim.
//   - ErrIndexRange: permutation entry outside [0, dim).
package transform
