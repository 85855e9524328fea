package rcolor

import "fmt"

// WhiteBalance holds per-channel multiplicative gains that correct
// for the illuminant's color temperature. Gains are applied to
// normalized camera RGB, once per channel.
type WhiteBalance struct {
	R, G, B float32
}

// NeutralWhiteBalance leaves the colors alone.
func NeutralWhiteBalance() WhiteBalance {
	return WhiteBalance{1, 1, 1}
}

// NormalizeByGreen builds gains from raw camera WB coefficients (the
// [R,G,B,E] quad cameras record), rescaled so green is exactly 1.0.
func NormalizeByGreen(coeffs [4]float32) WhiteBalance {
	return WhiteBalance{
		R: coeffs[0] / coeffs[1],
		G: 1.0,
		B: coeffs[2] / coeffs[1],
	}
}

func (wb WhiteBalance)Apply(c CameraRGB) CameraRGB {
	return CameraRGB{c.R * wb.R, c.G * wb.G, c.B * wb.B}
}

func (wb WhiteBalance)String() string {
	return fmt.Sprintf("wb[%.4f, %.4f, %.4f]", wb.R, wb.G, wb.B)
}
