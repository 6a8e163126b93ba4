// Package compose blends several transformed kernel evaluations into one
// scalar, the way composition benchmark functions are defined: each
// sub-kernel carries its own shift vector, bias and weighting, and the
// composed value is the weight-normalized sum
//
//	Σᵢ wᵢ·(λᵢ·rawᵢ + biasᵢ) / Σᵢ wᵢ.
//
// Weight derivation is a pluggable strategy (WeightFunc) the blend calls,
// not hard-coded: the default GaussianWeight reproduces the reference
// suites' falloff exp(-d²/(2·dim·σ²))/√d² in the squared distance d²
// between the input and the sub-kernel's shift vector.
//
// Edge cases:
//
//   - An input exactly at a sub-kernel's shift (d² == 0) selects that
//     component outright; this is how a composition's optimum reproduces
//     the first component's value.
//   - If every weight underflows to zero, components are blended with
//     equal weights, matching the reference behavior.
//
// Errors:
//
//   - ErrNoComponents: Blend called with an empty component set.
//   - ErrComponentMismatch: a shift reference shorter than the input.
package compose
