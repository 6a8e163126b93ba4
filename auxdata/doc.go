// Package auxdata loads and owns the auxiliary transformation data of the
// continuous benchmark suites: shift vectors, rotation matrices and
// coordinate-shuffle permutations, keyed by (suite version, function id,
// dimension).
//
// What:
//
//   - Store resolves files under a data root using the fixed naming
//     convention of the published suites:
//     <root>/<versionTag>/M_<fn>_D<dim>.txt        (rotation, row-major)
//     <root>/<versionTag>/shift_data_<fn>.txt      (shift vector)
//     <root>/<versionTag>/shuffle_data_<fn>_D<dim>.txt (permutation)
//   - Expected element counts come from published per-version sizing
//     rules: a threshold function id and a coefficient decide whether a
//     buffer is dim (or dim²) sized or scaled by the coefficient for
//     composition functions. One version keys the coefficient off a
//     per-function lookup array instead of a scalar.
//   - Reads are best effort: whitespace-separated tokens are consumed up
//     to the expected count and the read stops early, without error, when
//     the source is exhausted; the result carries a Truncated flag and
//     the caller decides severity.
//
// Why:
//
//   - The suites disagree on file sizing per version; centralizing the
//     rules in one lookup table keeps every caller exact and keeps
//     version conditionals out of evaluation code.
//
// Ownership:
//
//   - Returned buffers are owned by the caller and immutable by
//     convention after load; they may be shared read-only across problems
//     and goroutines.
//
// Errors:
//
//   - ErrDataUnavailable: file missing or unreadable (never silently
//     fabricated data).
//   - ErrBadToken: a token failed numeric parsing.
//   - ErrBadShuffleIndex: a permutation entry outside [1, dim] in file
//     terms ([0, dim) once normalized).
//   - ErrUnsupportedVersion: no sizing rule for the requested
//     version/function-id combination.
package auxdata
