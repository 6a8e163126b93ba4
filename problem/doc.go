// Package problem binds a kernel, its auxiliary transformation data and
// its instance-derived parameters into a single callable objective with a
// known, self-consistent optimum.
//
// What:
//
//   - Kernel / BitKernel: the capability a base mathematical function
//     exposes — evaluate a raw (already transformed) input and name the
//     untransformed optimum input. Problems compose a kernel with a
//     transformation spec instead of subclassing per function.
//   - Problem (continuous family): shift → scale → rotate (exact order)
//     via the transform package, optional coordinate shuffle for hybrid
//     functions, weighted blending via the compose package for
//     composition functions, plus the per-version bias table.
//   - BitProblem (bit-string family): instance-seeded xor flips or
//     coordinate reorders on the variables and an affine scale/shift on
//     the objective, over kernels built from the discrete package's
//     primitives.
//   - New / NewReal / NewBits: the construction interface; a registry
//     mapping human-facing names to function ids is the caller's concern.
//
// Lifecycle:
//
//	Constructed → OptimumComputed → Ready.
//	Construction loads auxiliary data (or seeds instance transforms),
//	populates the transform spec, then pushes the kernel's known
//	untransformed optimum through the same forward transform/bias path
//	Evaluate uses. Evaluate(optimum.x) therefore reproduces optimum.y to
//	floating-point tolerance by construction. A Problem that failed
//	construction never exists, so Evaluate cannot run early.
//
// Concurrency:
//
//   - Auxiliary buffers are immutable after load and shared safely.
//     A Problem's scratch buffer is not synchronized: evaluate one
//     Problem instance from one goroutine at a time, or construct one
//     Problem per worker.
//
// Errors:
//
//   - ErrDimensionMismatch: Evaluate input length differs from the
//     problem dimension; per-call failure, no state is touched.
//   - ErrUnknownFamily / ErrUnknownFunction: no definition for the
//     requested family/version/function id.
//   - ErrBadDimension / ErrBadInstance: construction arguments outside
//     the definition's domain.
//   - auxdata sentinels (ErrDataUnavailable, …) propagate from
//     construction; Options.OnMissingData chooses between failing and an
//     identity transform — an explicit policy, never a hidden default.
package problem
