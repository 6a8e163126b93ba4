package problem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbench/auxdata"
	"github.com/katalvlaran/lvlbench/problem"
)

// fixtureOptions points construction at the checked-in testdata root.
func fixtureOptions() problem.Options {
	opts := problem.DefaultOptions()
	opts.DataRoot = "testdata"

	return opts
}

// fixtureDim returns the dimension the testdata fixtures carry per
// function id (hybrids need room for their part split).
func fixtureDim(fn int) int {
	if fn >= 6 && fn <= 8 {
		return 4
	}

	return 2
}

// TestNewReal_F1 builds F1 from the fixtures and checks that evaluating
// the shift point collapses the kernel to zero, leaving only the bias.
func TestNewReal_F1(t *testing.T) {
	p, err := problem.NewReal(1, 1, 2, fixtureOptions())
	require.NoError(t, err)

	assert.Equal(t, "CEC2022_F1_Zakharov", p.Name())
	assert.Equal(t, 1, p.FunctionID())
	assert.Equal(t, 1, p.Instance())
	assert.Equal(t, 2, p.Dimension())
	assert.Equal(t, auxdata.CEC2022, p.Version())

	y, err := p.Evaluate([]float64{1, -1})
	require.NoError(t, err)
	assert.InDelta(t, 100, y, 1e-12)
}

// TestOptimum_SelfConsistent re-evaluates every function's reported
// optimum input through the public path and expects the reported value.
func TestOptimum_SelfConsistent(t *testing.T) {
	for fn := 1; fn <= 10; fn++ {
		p, err := problem.NewReal(fn, 1, fixtureDim(fn), fixtureOptions())
		require.NoError(t, err, "fn %d", fn)

		x, y := p.Optimum()
		got, err := p.Evaluate(x)
		require.NoError(t, err, "fn %d", fn)
		assert.InDelta(t, y, got, 1e-9, "fn %d optimum value", fn)
	}
}

// TestOptimum_MatchesBias checks that with the fixtures' exact rotation
// data every function's optimum value equals its published bias.
func TestOptimum_MatchesBias(t *testing.T) {
	for fn := 1; fn <= 10; fn++ {
		p, err := problem.NewReal(fn, 1, fixtureDim(fn), fixtureOptions())
		require.NoError(t, err, "fn %d", fn)

		want, ok := problem.Bias(auxdata.CEC2022, fn)
		require.True(t, ok, "fn %d", fn)
		_, y := p.Optimum()
		assert.InDelta(t, want, y, 1e-8, "fn %d", fn)
	}
}

// TestHybrid_OptimumAtShift verifies the hybrid optimum sits on the shift
// vector itself.
func TestHybrid_OptimumAtShift(t *testing.T) {
	p, err := problem.NewReal(6, 1, 4, fixtureOptions())
	require.NoError(t, err)

	x, y := p.Optimum()
	assert.Equal(t, []float64{0.5, -0.5, 1.0, -1.0}, x)
	assert.InDelta(t, 1600, y, 1e-12)
}

// TestComposition_OptimumAtFirstCenter verifies the composition optimum
// sits on the first component's center and the zero-distance shortcut
// yields exactly the bias.
func TestComposition_OptimumAtFirstCenter(t *testing.T) {
	p, err := problem.NewReal(9, 1, 2, fixtureOptions())
	require.NoError(t, err)

	x, y := p.Optimum()
	assert.Equal(t, []float64{1, -1}, x)
	assert.InDelta(t, 2400, y, 1e-12)

	// Away from every center the blend is strictly above the optimum.
	far, err := p.Evaluate([]float64{30, 30})
	require.NoError(t, err)
	assert.Greater(t, far, y)
}

// TestEvaluate_DimensionMismatch rejects inputs of the wrong length.
func TestEvaluate_DimensionMismatch(t *testing.T) {
	p, err := problem.NewReal(1, 1, 2, fixtureOptions())
	require.NoError(t, err)

	_, err = p.Evaluate([]float64{1, 2, 3})
	assert.ErrorIs(t, err, problem.ErrDimensionMismatch)
}

// TestNewReal_MissingDataFails keeps the default policy strict: no data
// files, no problem.
func TestNewReal_MissingDataFails(t *testing.T) {
	opts := fixtureOptions()
	opts.DataRoot = t.TempDir()

	_, err := problem.NewReal(1, 1, 2, opts)
	assert.ErrorIs(t, err, auxdata.ErrDataUnavailable)
}

// TestNewReal_MissingDataIdentity falls back to the identity transforms
// and still reports a self-consistent optimum.
func TestNewReal_MissingDataIdentity(t *testing.T) {
	opts := fixtureOptions()
	opts.DataRoot = t.TempDir()
	opts.OnMissingData = problem.IdentityTransform

	p, err := problem.NewReal(1, 1, 2, opts)
	require.NoError(t, err)

	x, y := p.Optimum()
	assert.Equal(t, []float64{0, 0}, x)
	assert.InDelta(t, 100, y, 1e-12)

	got, err := p.Evaluate([]float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 100, got, 1e-12)
}

// TestNewReal_BiasOff strips the published offset from the objective.
func TestNewReal_BiasOff(t *testing.T) {
	opts := fixtureOptions()
	opts.ApplyBias = false

	p, err := problem.NewReal(1, 1, 2, opts)
	require.NoError(t, err)

	_, y := p.Optimum()
	assert.InDelta(t, 0, y, 1e-12)
}

// TestNewReal_CEC2021 exercises the second shipped function table.
func TestNewReal_CEC2021(t *testing.T) {
	opts := fixtureOptions()
	opts.Version = auxdata.CEC2021

	p, err := problem.NewReal(1, 1, 2, opts)
	require.NoError(t, err)
	assert.Equal(t, "CEC2021_F1_BentCigar", p.Name())

	_, y := p.Optimum()
	assert.InDelta(t, 100, y, 1e-12)
}

// TestNewReal_Validation covers the construction guards.
func TestNewReal_Validation(t *testing.T) {
	opts := fixtureOptions()

	_, err := problem.NewReal(42, 1, 2, opts)
	assert.ErrorIs(t, err, problem.ErrUnknownFunction)

	_, err = problem.NewReal(1, 0, 2, opts)
	assert.ErrorIs(t, err, problem.ErrBadInstance)

	_, err = problem.NewReal(1, 1, 0, opts)
	assert.ErrorIs(t, err, problem.ErrBadDimension)

	// F7 is a three-part hybrid; two coordinates cannot host it.
	_, err = problem.NewReal(7, 1, 2, opts)
	assert.ErrorIs(t, err, problem.ErrBadDimension)
}

// TestNew_FamilyDispatch checks the generic constructor routes and never
// returns a typed-nil interface.
func TestNew_FamilyDispatch(t *testing.T) {
	m, err := problem.New(problem.FamilyReal, 1, 1, 2, fixtureOptions())
	require.NoError(t, err)
	assert.Equal(t, "CEC2022_F1_Zakharov", m.Name())

	m, err = problem.New(problem.FamilyBits, 1, 1, 8, problem.Options{})
	require.NoError(t, err)
	assert.Equal(t, "PBO_F1_OneMax", m.Name())

	m, err = problem.New(problem.Family(99), 1, 1, 2, fixtureOptions())
	assert.ErrorIs(t, err, problem.ErrUnknownFamily)
	assert.Nil(t, m)
}

// TestBias spot-checks the published offset tables across versions.
func TestBias(t *testing.T) {
	cases := []struct {
		v    auxdata.Version
		fn   int
		want float64
	}{
		{auxdata.CEC2022, 1, 100},
		{auxdata.CEC2022, 10, 2500},
		{auxdata.CEC2021, 3, 700},
		{auxdata.CEC2017, 7, 700},
		{auxdata.CEC2014, 30, 3000},
		{auxdata.CEC2019, 5, 1},
	}
	for _, tc := range cases {
		got, ok := problem.Bias(tc.v, tc.fn)
		require.True(t, ok, "%s fn %d", tc.v, tc.fn)
		assert.Equal(t, tc.want, got, "%s fn %d", tc.v, tc.fn)
	}

	_, ok := problem.Bias(auxdata.CEC2022, 11)
	assert.False(t, ok)
}
