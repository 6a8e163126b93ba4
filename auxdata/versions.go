// Package auxdata - per-version sizing rules.
//
// The published suites fix, per version, a threshold function id and a
// coefficient: functions below the threshold use plain dim (or dim²)
// buffers; functions at or above it bundle several sub-kernels and scale
// the buffer by the coefficient. Shuffle buffers use their own fixed
// coefficient of 10 outside the active range, independent of the
// shift/matrix coefficient. CEC-2015 instead publishes a per-function
// coefficient array for every kind. These are fixed published values,
// not derivable formulas, and must be reproduced exactly.
package auxdata

// Version identifies a benchmark suite release with its own data layout.
type Version int

const (
	CEC2014 Version = iota
	CEC2015
	CEC2017
	CEC2019
	CEC2021
	CEC2022
)

// Tag returns the directory name a version's data files live under.
func (v Version) Tag() string {
	switch v {
	case CEC2014:
		return "cec2014"
	case CEC2015:
		return "cec2015"
	case CEC2017:
		return "cec2017"
	case CEC2019:
		return "cec2019"
	case CEC2021:
		return "cec2021"
	case CEC2022:
		return "cec2022"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (v Version) String() string { return v.Tag() }

// rule holds the published sizing constants of one suite version.
type rule struct {
	// threshold separates plain functions (fn < threshold) from
	// composition functions; negative disables the split (every function
	// is coefficient-scaled).
	threshold int

	// coeff scales composition buffers; ignored when perFn is non-nil.
	coeff int

	// perFn, when non-nil, keys the coefficient off the function id.
	perFn []int

	// shuffleCoeff scales shuffle buffers outside the active range; the
	// published suites fix it at 10 regardless of coeff. Ignored when
	// perFn is non-nil.
	shuffleCoeff int

	// shuffleLo..shuffleHi (inclusive) is the function-id range whose
	// shuffle files hold exactly dim entries; outside it they hold
	// shuffleCoeff×dim. A zero range means no function uses dim-sized
	// shuffles.
	shuffleLo, shuffleHi int
}

var rules = map[Version]rule{
	CEC2014: {threshold: 23, coeff: 10, shuffleCoeff: 10, shuffleLo: 17, shuffleHi: 22},
	CEC2015: {threshold: -1, perFn: []int{0, 1, 1, 1, 1, 1, 1, 1, 1, 3, 3, 5, 5, 5, 7, 10}},
	CEC2017: {threshold: 20, coeff: 10, shuffleCoeff: 10, shuffleLo: 11, shuffleHi: 20},
	CEC2019: {threshold: 100, coeff: 1, shuffleCoeff: 10},
	CEC2021: {threshold: 7, coeff: 10, shuffleCoeff: 10, shuffleLo: 5, shuffleHi: 7},
	CEC2022: {threshold: 9, coeff: 12, shuffleCoeff: 10, shuffleLo: 6, shuffleHi: 8},
}

// ruleFor resolves the sizing rule for a version.
func ruleFor(v Version) (rule, error) {
	r, ok := rules[v]
	if !ok {
		return rule{}, ErrUnsupportedVersion
	}

	return r, nil
}

// coeffFor resolves the effective coefficient for a function id.
func (r rule) coeffFor(fn int) (int, error) {
	if r.perFn == nil {
		return r.coeff, nil
	}
	if fn < 1 || fn >= len(r.perFn) {
		return 0, ErrUnsupportedVersion
	}

	return r.perFn[fn], nil
}

// scaled reports whether fn is a composition function whose buffers are
// coefficient-scaled.
func (r rule) scaled(fn int) bool {
	return r.threshold < 0 || fn >= r.threshold
}

// shuffleActive reports whether fn's shuffle file holds exactly dim
// entries.
func (r rule) shuffleActive(fn int) bool {
	return r.shuffleLo != 0 && fn >= r.shuffleLo && fn <= r.shuffleHi
}

// ShiftLen returns the expected shift-vector element count for
// (version, fn, dim).
func ShiftLen(v Version, fn, dim int) (int, error) {
	r, err := ruleFor(v)
	if err != nil {
		return 0, err
	}
	if !r.scaled(fn) {
		return dim, nil
	}
	c, err := r.coeffFor(fn)
	if err != nil {
		return 0, err
	}

	return c * dim, nil
}

// MatrixLen returns the expected rotation-matrix element count for
// (version, fn, dim).
func MatrixLen(v Version, fn, dim int) (int, error) {
	r, err := ruleFor(v)
	if err != nil {
		return 0, err
	}
	if !r.scaled(fn) {
		return dim * dim, nil
	}
	c, err := r.coeffFor(fn)
	if err != nil {
		return 0, err
	}

	return c * dim * dim, nil
}

// shuffleCoeffFor resolves the effective shuffle coefficient for a
// function id.
func (r rule) shuffleCoeffFor(fn int) (int, error) {
	if r.perFn == nil {
		return r.shuffleCoeff, nil
	}

	return r.coeffFor(fn)
}

// ShuffleLen returns the expected shuffle-permutation entry count for
// (version, fn, dim).
func ShuffleLen(v Version, fn, dim int) (int, error) {
	r, err := ruleFor(v)
	if err != nil {
		return 0, err
	}
	if r.shuffleActive(fn) {
		return dim, nil
	}
	c, err := r.shuffleCoeffFor(fn)
	if err != nil {
		return 0, err
	}

	return c * dim, nil
}
