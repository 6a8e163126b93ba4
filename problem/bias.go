// Package problem - per-version function bias tables.
//
// Bias values are published constants of each suite release, added to the
// raw kernel output so every function's optimum lands on its own plateau
// of the reporting scale. They are data, not formulas, and application is
// an explicit construction flag (Options.ApplyBias), never a hidden
// global.
package problem

import "github.com/katalvlaran/lvlbench/auxdata"

// biasDict holds the shared ten-function table of the 2021/2022 releases.
var biasDict = [...]float64{100, 1100, 700, 1900, 1700, 1600, 2100, 2200, 2400, 2500}

// Bias returns the published offset for (version, fn) and whether one is
// defined. The 2014/2017 releases step by 100 per function id; the 2019
// release pins every optimum at 1.
func Bias(v auxdata.Version, fn int) (float64, bool) {
	switch v {
	case auxdata.CEC2021, auxdata.CEC2022:
		if fn >= 1 && fn <= len(biasDict) {
			return biasDict[fn-1], true
		}
	case auxdata.CEC2014, auxdata.CEC2017:
		if fn >= 1 && fn <= 30 {
			return float64(100 * fn), true
		}
	case auxdata.CEC2019:
		if fn >= 1 && fn <= 10 {
			return 1, true
		}
	}

	return 0, false
}
