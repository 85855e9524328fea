package develop

import(
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrationDefaults(t *testing.T) {
	c := NewCalibration()
	require.NoError(t, c.Finalize())
	require.NoError(t, c.Validate())

	m := c.Matrix()
	assert.Equal(t, float32(1), m[0])
	assert.Equal(t, float32(1), m[5])
	assert.Equal(t, float32(1), m[10])
	assert.Equal(t, float32(0), m[3])

	wb := c.WhiteBalance()
	assert.Equal(t, float32(1), wb.R)
	assert.Equal(t, float32(1), wb.G)
	assert.Equal(t, float32(1), wb.B)
}

func TestCalibrationExplicitCamToXYZ(t *testing.T) {
	c := NewCalibration()
	c.CamToXYZ = []float32{
		0.5, 0.1, 0.1, 0.01,
		0.1, 0.5, 0.1, 0.02,
		0.1, 0.1, 0.5, 0.03,
	}
	require.NoError(t, c.Finalize())

	m := c.Matrix()
	assert.Equal(t, float32(0.5), m[0])
	assert.Equal(t, float32(0.01), m[3])
	assert.Equal(t, float32(0.03), m[11])
}

func TestCalibrationBadMatrixLengths(t *testing.T) {
	c := NewCalibration()
	c.CamToXYZ = []float32{1, 2, 3}
	assert.Error(t, c.Finalize())

	c = NewCalibration()
	c.XYZToCam = []float64{1, 2, 3, 4}
	assert.Error(t, c.Finalize())
}

func TestCalibrationInvertsXYZToCam(t *testing.T) {
	// Rows that are already scaled versions of identity rows: the
	// row normalization must wash the scales out, leaving identity.
	c := NewCalibration()
	c.XYZToCam = []float64{
		2, 0, 0,
		0, 4, 0,
		0, 0, 5,
	}
	require.NoError(t, c.Finalize())

	m := c.Matrix()
	want := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
	for i := range want {
		assert.InDelta(t, float64(want[i]), float64(m[i]), 1e-6, "entry %d", i)
	}
}

func TestCalibrationInversionAnalytic(t *testing.T) {
	// [[1,1,0],[0,1,0],[0,0,1]] row-normalizes to
	// [[.5,.5,0],[0,1,0],[0,0,1]], whose inverse is
	// [[2,-1,0],[0,1,0],[0,0,1]].
	c := NewCalibration()
	c.XYZToCam = []float64{
		1, 1, 0,
		0, 1, 0,
		0, 0, 1,
	}
	require.NoError(t, c.Finalize())

	m := c.Matrix()
	want := []float64{
		2, -1, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
	for i := range want {
		assert.InDelta(t, want[i], float64(m[i]), 1e-6, "entry %d", i)
	}
}

func TestCalibrationDegenerateMatrix(t *testing.T) {
	c := NewCalibration()
	c.XYZToCam = []float64{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}
	assert.Error(t, c.Finalize(), "singular matrix must be rejected")

	c = NewCalibration()
	c.XYZToCam = []float64{
		1, -1, 0,
		0, 1, 0,
		0, 0, 1,
	}
	assert.Error(t, c.Finalize(), "zero row sum must be rejected")
}

func TestCalibrationValidate(t *testing.T) {
	// white <= black is the degenerate normalization range the core
	// would happily turn into garbage; the app layer must reject it.
	c := NewCalibration()
	c.BlackLevel = 1000
	c.WhiteLevel = 1000
	require.NoError(t, c.Finalize())
	assert.Error(t, c.Validate())

	c = NewCalibration()
	c.BlackLevel = 2000
	c.WhiteLevel = 512
	require.NoError(t, c.Finalize())
	assert.Error(t, c.Validate())

	// Non-positive WB gains
	c = NewCalibration()
	c.WBCoeffs = []float32{0, 1, 1, 0}
	require.NoError(t, c.Finalize())
	assert.Error(t, c.Validate())

	// Zero green coefficient makes the other gains infinite
	c = NewCalibration()
	c.WBCoeffs = []float32{1, 0, 1, 0}
	require.NoError(t, c.Finalize())
	assert.Error(t, c.Validate())

	// Wrong coefficient count
	c = NewCalibration()
	c.WBCoeffs = []float32{1, 1}
	require.NoError(t, c.Finalize())
	assert.Error(t, c.Validate())

	// Non-finite matrix entries
	c = NewCalibration()
	c.CamToXYZ = []float32{
		float32(math.NaN()), 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
	require.NoError(t, c.Finalize())
	assert.Error(t, c.Validate())

	// Validation requires finalization first
	c = NewCalibration()
	assert.Error(t, c.Validate())
}
