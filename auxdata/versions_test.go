package auxdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbench/auxdata"
)

// TestSizingRules_Scalar verifies the published threshold/coefficient
// pairs for the scalar-rule versions.
func TestSizingRules_Scalar(t *testing.T) {
	cases := []struct {
		name    string
		version auxdata.Version
		fn, dim int
		shift   int
		matrix  int
	}{
		{"2014 plain", auxdata.CEC2014, 1, 10, 10, 100},
		{"2014 composition", auxdata.CEC2014, 23, 10, 100, 1000},
		{"2017 plain", auxdata.CEC2017, 19, 10, 10, 100},
		{"2017 composition", auxdata.CEC2017, 20, 10, 100, 1000},
		{"2019 plain", auxdata.CEC2019, 10, 9, 9, 81},
		{"2021 composition", auxdata.CEC2021, 8, 10, 100, 1000},
		{"2022 plain", auxdata.CEC2022, 8, 20, 20, 400},
		{"2022 composition", auxdata.CEC2022, 9, 20, 240, 4800},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := auxdata.ShiftLen(tc.version, tc.fn, tc.dim)
			require.NoError(t, err)
			assert.Equal(t, tc.shift, got, "shift length")

			got, err = auxdata.MatrixLen(tc.version, tc.fn, tc.dim)
			require.NoError(t, err)
			assert.Equal(t, tc.matrix, got, "matrix length")
		})
	}
}

// TestSizingRules_PerFunction verifies the CEC-2015 per-function
// coefficient array.
func TestSizingRules_PerFunction(t *testing.T) {
	// fn 9 → coeff 3, fn 15 → coeff 10, fn 1 → coeff 1; always scaled.
	got, err := auxdata.ShiftLen(auxdata.CEC2015, 9, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	got, err = auxdata.MatrixLen(auxdata.CEC2015, 15, 2)
	require.NoError(t, err)
	assert.Equal(t, 40, got)

	got, err = auxdata.ShiftLen(auxdata.CEC2015, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	// Function id outside the published array has no rule.
	_, err = auxdata.ShiftLen(auxdata.CEC2015, 16, 2)
	assert.ErrorIs(t, err, auxdata.ErrUnsupportedVersion)
}

// TestSizingRules_Shuffle verifies the per-version shuffle-active ranges
// and the fixed shuffle coefficient of 10 outside them, which is
// independent of the shift/matrix coefficient.
func TestSizingRules_Shuffle(t *testing.T) {
	cases := []struct {
		version auxdata.Version
		fn, dim int
		want    int
	}{
		{auxdata.CEC2014, 17, 5, 5},  // active range 17–22
		{auxdata.CEC2014, 16, 5, 50}, // outside → 10×dim
		{auxdata.CEC2017, 11, 4, 4},  // active range 11–20
		{auxdata.CEC2021, 7, 6, 6},   // active range 5–7
		{auxdata.CEC2022, 6, 3, 3},   // active range 6–8
		{auxdata.CEC2022, 9, 3, 30},  // outside → 10×dim, not 12×dim
		{auxdata.CEC2019, 1, 4, 40},  // no active range → 10×dim, not 1×dim
		{auxdata.CEC2015, 9, 2, 6},   // per-function coefficient (fn 9 → 3)
	}
	for _, tc := range cases {
		got, err := auxdata.ShuffleLen(tc.version, tc.fn, tc.dim)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s fn=%d", tc.version, tc.fn)
	}
}

// TestSizingRules_UnknownVersion ensures an out-of-set version fails fast.
func TestSizingRules_UnknownVersion(t *testing.T) {
	_, err := auxdata.ShiftLen(auxdata.Version(99), 1, 2)
	assert.ErrorIs(t, err, auxdata.ErrUnsupportedVersion)
}
