package problem

import "github.com/katalvlaran/lvlbench/auxdata"

// MissingDataPolicy decides what construction does when an auxiliary data
// file is absent. It applies only to unavailable files; malformed files
// fail construction under every policy.
type MissingDataPolicy int

const (
	// FailConstruction rejects the problem when any required file is
	// missing. The safe default: a silent identity fallback changes the
	// landscape being benchmarked.
	FailConstruction MissingDataPolicy = iota

	// IdentityTransform substitutes the identity for each missing buffer:
	// a zero shift, no rotation, no coordinate shuffle.
	IdentityTransform
)

// Options configures continuous problem construction. The zero value is
// not useful; start from DefaultOptions and override fields.
type Options struct {
	// DataRoot is the directory holding per-version auxiliary data
	// subdirectories (cec2022/, cec2021/, ...).
	DataRoot string

	// Version selects the suite release, which fixes the function table,
	// file layout and sizing rules.
	Version auxdata.Version

	// ApplyBias adds the published per-function offset to every objective
	// value. Disable it to benchmark against raw kernel values.
	ApplyBias bool

	// OnMissingData selects the missing-file behaviour.
	OnMissingData MissingDataPolicy
}

// DefaultOptions returns the recommended configuration: the 2022 release,
// published biases applied, missing data rejected.
func DefaultOptions() Options {
	return Options{
		Version:       auxdata.CEC2022,
		ApplyBias:     true,
		OnMissingData: FailConstruction,
	}
}
