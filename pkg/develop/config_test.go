package develop

import(
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromYaml(t *testing.T) {
	doc := `
verbosity: 2
inputkind: mosaic
outputfilename: out.tif
previewfilename: preview.png
maxdimension: 9000
repeat: 3

calibration:
  blacklevel: 512
  whitelevel: 16383
  wbcoeffs: [2.217, 1.0, 1.548, 0.0]
  xyztocam: [ 0.7798, -0.2562, -0.0850,
             -0.4318,  1.2263,  0.2268,
             -0.0330,  0.1487,  0.6250]
`
	cfg, err := newConfigFromYaml([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, "mosaic", cfg.InputKind)
	assert.Equal(t, "out.tif", cfg.OutputFilename)
	assert.Equal(t, "preview.png", cfg.PreviewFilename)
	assert.Equal(t, 9000, cfg.MaxDimension)
	assert.Equal(t, 3, cfg.Repeat)

	assert.Equal(t, 512, cfg.Calibration.BlackLevel)
	assert.Equal(t, 16383, cfg.Calibration.WhiteLevel)
	require.Len(t, cfg.Calibration.WBCoeffs, 4)
	assert.InDelta(t, 2.217, float64(cfg.Calibration.WBCoeffs[0]), 1e-6)
	require.Len(t, cfg.Calibration.XYZToCam, 9)

	require.NoError(t, cfg.Calibration.Finalize())
	require.NoError(t, cfg.Calibration.Validate())
}

func TestConfigDefaultsSurviveYaml(t *testing.T) {
	cfg, err := newConfigFromYaml([]byte("verbosity: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Verbosity)
	assert.Equal(t, "developed.tif", cfg.OutputFilename)
	assert.Equal(t, 50000, cfg.MaxDimension)
	assert.Equal(t, 1, cfg.Repeat)
	assert.Equal(t, 0xFFFF, cfg.Calibration.WhiteLevel)
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Verbosity = 3
	cfg.Calibration.BlackLevel = 256

	cfg2, err := newConfigFromYaml([]byte(cfg.AsYaml()))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg2.Verbosity)
	assert.Equal(t, 256, cfg2.Calibration.BlackLevel)
}
