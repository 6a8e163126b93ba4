package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbench/transform"
)

// rot2D returns an exact 2×2 rotation matrix built from a 3-4-5 triangle,
// so orthogonality holds without trigonometric rounding.
func rot2D() []float64 {
	return []float64{0.6, -0.8, 0.8, 0.6}
}

// TestShift_RoundTrip verifies Shift followed by UnShift restores the
// input element-wise.
func TestShift_RoundTrip(t *testing.T) {
	x := []float64{1.5, -2.25, 0, 4}
	s := []float64{0.5, 0.25, -3, 100}
	orig := append([]float64(nil), x...)

	require.NoError(t, transform.Shift(x, s))
	require.NoError(t, transform.UnShift(x, s))
	for i := range x {
		assert.InDelta(t, orig[i], x[i], 1e-12, "round trip at index %d", i)
	}
}

// TestShift_ShortVector ensures a shift vector shorter than x errors.
func TestShift_ShortVector(t *testing.T) {
	err := transform.Shift([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, transform.ErrDimensionMismatch)
}

// TestRotate_Linearity checks rotate(a·x + b·y) == a·rotate(x) + b·rotate(y).
func TestRotate_Linearity(t *testing.T) {
	m := rot2D()
	const a, b = 2.0, -3.0
	x := []float64{1.25, -0.5}
	y := []float64{0.75, 2}

	combined := []float64{a*x[0] + b*y[0], a*x[1] + b*y[1]}
	require.NoError(t, transform.Rotate(combined, m))

	require.NoError(t, transform.Rotate(x, m))
	require.NoError(t, transform.Rotate(y, m))
	for i := range combined {
		assert.InDelta(t, a*x[i]+b*y[i], combined[i], 1e-12, "linearity at index %d", i)
	}
}

// TestRotate_TransposeInverse verifies RotateT undoes Rotate for an
// orthogonal matrix.
func TestRotate_TransposeInverse(t *testing.T) {
	m := rot2D()
	x := []float64{3.5, -1.25}
	orig := append([]float64(nil), x...)

	require.NoError(t, transform.Rotate(x, m))
	require.NoError(t, transform.RotateT(x, m))
	for i := range x {
		assert.InDelta(t, orig[i], x[i], 1e-12)
	}
}

// TestRotate_NotSquare ensures an undersized matrix errors.
func TestRotate_NotSquare(t *testing.T) {
	err := transform.Rotate([]float64{1, 2}, []float64{1, 0, 0})
	assert.ErrorIs(t, err, transform.ErrNotSquare)
}

// TestApply_OrderSensitivity confirms the shift→scale→rotate order is
// enforced: with scale=2 and a non-identity rotation, Apply differs from
// rotating first and scaling afterwards.
func TestApply_OrderSensitivity(t *testing.T) {
	spec := transform.DefaultSpec()
	spec.ScaleRate = 2
	spec.Rotation = rot2D()
	spec.ApplyRotate = true
	spec.Shift = []float64{1, -1}
	spec.ApplyShift = true

	applied := []float64{2, 3}
	require.NoError(t, transform.Apply(applied, spec))

	// Rotate first, then shift and scale.
	other := []float64{2, 3}
	require.NoError(t, transform.Rotate(other, spec.Rotation))
	require.NoError(t, transform.Shift(other, spec.Shift))
	transform.Scale(other, spec.ScaleRate)

	assert.False(t, applied[0] == other[0] && applied[1] == other[1],
		"reordered pipeline must not reproduce Apply's result")
}

// TestApply_InvertRoundTrip verifies Invert is the exact inverse of Apply
// for orthogonal rotation data.
func TestApply_InvertRoundTrip(t *testing.T) {
	spec := transform.Spec{
		Shift:       []float64{1, -1},
		Rotation:    rot2D(),
		ScaleRate:   0.05,
		ApplyShift:  true,
		ApplyRotate: true,
	}
	x := []float64{12.5, -7.75}
	orig := append([]float64(nil), x...)

	require.NoError(t, transform.Apply(x, spec))
	require.NoError(t, transform.Invert(x, spec))
	for i := range x {
		assert.InDelta(t, orig[i], x[i], 1e-9)
	}
}

// TestShuffle_Reorders verifies index semantics x'[i] = x[perm[i]] and
// range validation.
func TestShuffle_Reorders(t *testing.T) {
	x := []float64{10, 20, 30, 40}
	require.NoError(t, transform.Shuffle(x, []int{2, 0, 3, 1}))
	assert.Equal(t, []float64{30, 10, 40, 20}, x)

	err := transform.Shuffle([]float64{1, 2}, []int{0, 5})
	assert.ErrorIs(t, err, transform.ErrIndexRange)

	err = transform.Shuffle([]float64{1, 2}, []int{0})
	assert.ErrorIs(t, err, transform.ErrDimensionMismatch)
}
