package develop

import(
	"log"

	"gopkg.in/yaml.v2"
)

/* Example config file ...

verbosity: 1
inputkind: mosaic
outputfilename: developed.tif
previewfilename: preview.png
maxdimension: 50000

calibration:
  blacklevel: 512
  whitelevel: 16383
  wbcoeffs: [2.217, 1.0, 1.548, 0.0]
  xyztocam: [ 0.7798, -0.2562, -0.0850,
             -0.4318,  1.2263,  0.2268,
             -0.0330,  0.1487,  0.6250]

*/

type Config struct {
	Verbosity           int

	// InputKind forces how an image file is interpreted: "mosaic"
	// (single-channel RGGB Bayer data) or "rgb" (already demosaiced).
	// Empty means infer from the image's pixel format.
	InputKind           string

	OutputFilename      string  // 16-bit TIFF output
	HDRFilename         string  // optional Radiance .hdr output
	PreviewFilename     string  // optional half-size PNG preview
	DiffInputs          bool    // log a perceptual diff when two inputs are loaded

	MaxDimension        int     // reject images wider/taller than this
	Repeat              int     // develop this many times, for timing runs

	Calibration         Calibration
}

func NewConfig() Config {
	return Config{
		OutputFilename: "developed.tif",
		MaxDimension:   50000,
		Repeat:         1,
		Calibration:    NewCalibration(),
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}
