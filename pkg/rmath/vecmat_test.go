package rmath

import(
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	assert.Equal(t, float32(0), Clamp01(-0.5))
	assert.Equal(t, float32(0), Clamp01(float32(math.Inf(-1))))
	assert.Equal(t, float32(1), Clamp01(1.5))
	assert.Equal(t, float32(1), Clamp01(float32(math.Inf(1))))
	assert.Equal(t, float32(0.25), Clamp01(0.25))
	assert.Equal(t, float32(0), Clamp01(0))
	assert.Equal(t, float32(1), Clamp01(1))

	// NaN has a fixed policy: it clamps to 0
	assert.Equal(t, float32(0), Clamp01(float32(math.NaN())))
}

func TestClamp01Idempotent(t *testing.T) {
	inputs := []float32{
		-1e30, -1, -0.001, 0, 0.0001, 0.5, 0.9999, 1, 1.0001, 3.5, 1e30,
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
	}
	for _, v := range inputs {
		once := Clamp01(v)
		assert.Equal(t, once, Clamp01(once), "clamp twice differs from once for %v", v)
	}
}

func TestFMAMatchesFloat64Reference(t *testing.T) {
	cases := [][3]float32{
		{1, 1, 1},
		{0.1, 0.2, 0.3},
		{3.2404542, 0.5, -0.4985314},
		{-1.5371385, 0.0078125, 1.0572252},
		{1e-8, 1e8, -1},
	}
	for _, c := range cases {
		want := float64(c[0])*float64(c[1]) + float64(c[2])
		assert.InDelta(t, want, float64(FMA(c[0], c[1], c[2])), math.Abs(want)*1e-6+1e-12)
	}
}

func TestMat34Apply(t *testing.T) {
	identity := Mat34FromMat3(Mat3{1,0,0, 0,1,0, 0,0,1})
	v := Vec3{0.25, 0.5, 0.75}
	assert.Equal(t, v, identity.Apply(v))

	// The 4th column is an unconditional offset: it shows up even
	// when the input vector is zero.
	withOffset := Mat34{
		1, 0, 0, 0.125,
		0, 1, 0, 0.25,
		0, 0, 1, 0.5,
	}
	assert.Equal(t, Vec3{0.125, 0.25, 0.5}, withOffset.Apply(Vec3{0, 0, 0}))
	got := withOffset.Apply(v)
	assert.InDelta(t, 0.375, float64(got[0]), 1e-6)
	assert.InDelta(t, 0.75, float64(got[1]), 1e-6)
	assert.InDelta(t, 1.25, float64(got[2]), 1e-6)
}

func TestMat3Apply(t *testing.T) {
	m := Mat3{
		2, 0, 0,
		0, 3, 0,
		1, 1, 1,
	}
	got := m.Apply(Vec3{0.5, 0.25, 0.125})
	assert.InDelta(t, 1.0, float64(got[0]), 1e-6)
	assert.InDelta(t, 0.75, float64(got[1]), 1e-6)
	assert.InDelta(t, 0.875, float64(got[2]), 1e-6)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-123.5))
	assert.False(t, IsFinite(float32(math.NaN())))
	assert.False(t, IsFinite(float32(math.Inf(1))))
	assert.False(t, IsFinite(float32(math.Inf(-1))))
}

func TestFloatGrid(t *testing.T) {
	fg := NewFloatGrid(4, 3)
	assert.Equal(t, 4, fg.Dx())
	assert.Equal(t, 3, fg.Dy())

	fg.Set(2, 1, 0.5)
	assert.Equal(t, float32(0.5), fg.Get(2, 1))
	assert.Equal(t, float32(0), fg.Get(0, 0))
}
