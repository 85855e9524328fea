package debayer

import(
	"github.com/abworrall/raw-develop/pkg/rcolor"
	"github.com/abworrall/raw-develop/pkg/rmath"
)

// Params carries everything a pipeline invocation needs beyond the
// pixel buffers themselves. The core does not validate any of it;
// degenerate values (e.g. WhiteLevel <= BlackLevel) produce garbage
// output but never touch memory outside the buffers. Callers that
// want validation should go through pkg/develop.
type Params struct {
	Width, Height int

	WhiteBalance  rcolor.WhiteBalance

	// Sensor calibration: the raw sample range [BlackLevel,
	// WhiteLevel] maps onto the [0,1] dynamic range.
	BlackLevel    int
	WhiteLevel    int

	// Maps white-balanced camera RGB into XYZ(D65). Row-major 3x4;
	// the 4th column is a constant offset.
	CamToXYZ      rmath.Mat34
}

// kernel is the per-invocation state shared by every unit of work.
// The normalization divisor is precomputed as its reciprocal, so the
// inner loops multiply instead of divide.
type kernel struct {
	w, h     int
	black    int32
	invRange float32
	wb       rcolor.WhiteBalance
	camToXYZ rmath.Mat34
}

func (p Params)kernel() kernel {
	return kernel{
		w:        p.Width,
		h:        p.Height,
		black:    int32(p.BlackLevel),
		invRange: 1.0 / float32(p.WhiteLevel - p.BlackLevel),
		wb:       p.WhiteBalance,
		camToXYZ: p.CamToXYZ,
	}
}

// normalize maps a raw sensor sample to a non-negative fraction of
// the usable dynamic range. Samples at or below the black level come
// out as 0; samples above the white level come out above 1.0 and are
// left that way - only the final output stage clamps.
//
// Multiplying by the precomputed reciprocal can differ from a true
// division in the last bit of the mantissa; the pipeline treats the
// reciprocal form as canonical.
func (k kernel)normalize(s uint16) float32 {
	v := float32(int32(s) - k.black)
	if v < 0 {
		return 0
	}
	return v * k.invRange
}
