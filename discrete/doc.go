// Package discrete provides the bit-string transformation primitives of
// the pseudo-Boolean benchmark family: the same role the transform
// package plays for continuous inputs.
//
// What:
//
//   - DummyMask: deterministic, seeded selection of a bit-position subset;
//     objectives then inspect only the selected positions, in subset
//     order (leading-run or ones-count policies live with the kernels).
//   - Epistasis: fixed XOR block remapping (block size is a variant
//     constant, 4 in the shipped problems).
//   - Neutrality: majority fold of fixed-size blocks (3 in the shipped
//     problems), shrinking the effective string.
//   - Ruggedness1/2 and Ruggedness3Table: deterministic fitness-value
//     remappings that roughen the landscape while keeping the optimum
//     value strictly best.
//   - FlipMask / Reorder / Uniform: instance-seeded variable and
//     objective transforms (xor pattern, coordinate permutation, scale
//     and shift draws).
//
// Determinism:
//
//   - Everything is seeded explicitly; there is no package-level random
//     state, no time-based source, and repeated calls with equal
//     arguments return equal results. DeriveSeed mixes a parent seed and
//     a stream id (SplitMix64-style finalizer) to build independent
//     substreams from one instance number.
//
// Errors:
//
//   - ErrBadLength, ErrBadRatio, ErrBadBlock, ErrBadRange: invalid
//     arguments; no panics on user input.
package discrete
