// Package lvlbench is a deterministic benchmark-problem engine for
// optimization-algorithm research: parameterized, reproducible test
// functions with instance-specific transformations and known optima.
//
// 🚀 What is lvlbench?
//
//	A library that turns (suite version, function id, instance, dimension)
//	into a callable objective:
//		• Auxiliary data: shift vectors, rotation matrices, shuffle
//		  permutations loaded per suite-version sizing rules
//		• Coordinate transforms: shift → scale → rotate (exact order)
//		• Bit-string transforms: dummy subsets, epistasis, neutrality,
//		  ruggedness, seeded instance flips & reorders
//		• Composition: weighted blends of base kernels with per-kernel
//		  shift/rotation/bias
//		• Problems: optimum computed at construction through the same
//		  forward path used by Evaluate — self-consistent by design
//
// ✨ Why choose lvlbench?
//
//   - Deterministic – instance numbers seed everything; no time sources,
//     no global random state
//   - Strict sentinels – every failure is a package-level error matched
//     with errors.Is; no panics on user input
//   - Numerically faithful – published version sizing rules and bias
//     tables reproduced exactly
//
// Everything is organized under five packages:
//
//	auxdata/   — shift/rotation/shuffle data store with version rules
//	transform/ — continuous coordinate operations (shift, scale, rotate)
//	discrete/  — bit-string transformation primitives
//	compose/   — weighted composition of kernel outputs
//	problem/   — kernels, bias tables, problem lifecycle & factory
//
// Quick example:
//
//	opts := problem.DefaultOptions()
//	opts.DataRoot = "static/cec_data"
//	p, err := problem.NewReal(1, 1, 10, opts)
//	if err != nil { ... }
//	y, err := p.Evaluate(x)   // shift → scale → rotate → kernel → bias
//	bestX, bestY := p.Optimum()
//
// See each package's doc.go for contracts, complexity and error sets.
package lvlbench
