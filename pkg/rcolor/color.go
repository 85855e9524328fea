package rcolor

import(
	"fmt"

	"github.com/abworrall/raw-develop/pkg/rmath"
)

// A CameraRGB color is a normalized, white-balanced sensor reading.
// It exists in a linear RGB space specific to the camera, and has no
// upper bound; values above 1.0 mean the white balance gain pushed a
// channel past the sensor's clipping point.
type CameraRGB struct {
	R, G, B float32
}

// An XYZ color is device-independent CIE XYZ (D65 here, since the
// calibration matrices we consume target D65).
type XYZ struct {
	X, Y, Z float32
}

// A LinearSRGB color uses sRGB/D65 primaries but remains linear
// light - no gamma/OETF encoding has been applied. Channels are
// clamped to [0.0, 1.0] when produced by Develop.
type LinearSRGB struct {
	R, G, B float32
}

var(
	// Translates XYZ(D65) to linear sRGB(D65).
	//
	// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
	//
	// This is the plain D65 matrix, with no chromatic adaptation
	// bundled in; the camera matrices we take in already target a D65
	// white point.
	XYZD65_to_linear_sRGBD65 = rmath.Mat3{
		 3.2404542, -1.5371385, -0.4985314,
		-0.9692660,  1.8760108,  0.0415560,
		 0.0556434, -0.2040259,  1.0572252,
	}
)

// Exposure is a flat multiplier applied to every output channel,
// after color space conversion and before clamping. It is an
// architectural constant of this pipeline, not a tunable.
const Exposure float32 = 3.5

func (c CameraRGB)String() string {
	return fmt.Sprintf("cam[%12.10f, %12.10f, %12.10f]", c.R, c.G, c.B)
}

// ToXYZ applies the camera's calibration matrix. The 4th column of
// each row is an unconditional additive offset.
func (c CameraRGB)ToXYZ(camToXYZ rmath.Mat34) XYZ {
	v := camToXYZ.Apply(rmath.Vec3{c.R, c.G, c.B})
	return XYZ{v[0], v[1], v[2]}
}

func (x XYZ)ToLinearSRGB() LinearSRGB {
	v := XYZD65_to_linear_sRGBD65.Apply(rmath.Vec3{x.X, x.Y, x.Z})
	return LinearSRGB{v[0], v[1], v[2]}
}

// Expose scales all channels by the fixed exposure factor.
func (s LinearSRGB)Expose() LinearSRGB {
	return LinearSRGB{s.R * Exposure, s.G * Exposure, s.B * Exposure}
}

// Clamp bounds each channel to [0.0, 1.0] independently; NaN clamps
// to 0. Idempotent.
func (s LinearSRGB)Clamp() LinearSRGB {
	return LinearSRGB{rmath.Clamp01(s.R), rmath.Clamp01(s.G), rmath.Clamp01(s.B)}
}

// Develop runs the whole color-transform stage for one pixel:
// camera RGB -> XYZ -> linear sRGB -> exposure -> clamp.
func Develop(c CameraRGB, camToXYZ rmath.Mat34) LinearSRGB {
	return c.ToXYZ(camToXYZ).ToLinearSRGB().Expose().Clamp()
}
