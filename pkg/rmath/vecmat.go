package rmath

// Small float32 vector/matrix types, used for color transforms. The
// Apply methods accumulate their dot products through fused
// multiply-add, because the downstream calibration data is sensitive
// to rounding order.

import(
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

type Vec3 [3]float32

// A Mat3 is a 3x3 matrix, row-major.
type Mat3 [9]float32

// A Mat34 is a 3x4 affine matrix, row-major; the 4th column of each
// row is a constant offset that is always added.
type Mat34 [12]float32

// FMA computes a*b+c with a single rounding step on the product-sum.
// The float64 product of two float32 values is exact, so this matches
// a hardware float32 fmaf up to the final float64->float32 conversion
// (a double rounding that can differ from fmaf in the last bit).
func FMA(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

// Apply accumulates each row innermost-term first: fma(m0, v0, fma(m1, v1, m2*v2)).
func (m Mat3)Apply(v Vec3) Vec3 {
	return Vec3{
		FMA(m[3*0+0], v[0], FMA(m[3*0+1], v[1], m[3*0+2]*v[2])),
		FMA(m[3*1+0], v[0], FMA(m[3*1+1], v[1], m[3*1+2]*v[2])),
		FMA(m[3*2+0], v[0], FMA(m[3*2+1], v[1], m[3*2+2]*v[2])),
	}
}

// Apply maps v through the affine matrix. The constant column seeds
// the accumulator, so it always contributes, even for a zero vector.
func (m Mat34)Apply(v Vec3) Vec3 {
	return Vec3{
		FMA(m[4*0+0], v[0], FMA(m[4*0+1], v[1], FMA(m[4*0+2], v[2], m[4*0+3]))),
		FMA(m[4*1+0], v[0], FMA(m[4*1+1], v[1], FMA(m[4*1+2], v[2], m[4*1+3]))),
		FMA(m[4*2+0], v[0], FMA(m[4*2+1], v[1], FMA(m[4*2+2], v[2], m[4*2+3]))),
	}
}

func (m Mat3)String() string {
	str := fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*0+0], m[3*0+1], m[3*0+2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*1+0], m[3*1+1], m[3*1+2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*2+0], m[3*2+1], m[3*2+2])
	return str
}

func (m Mat34)String() string {
	str := fmt.Sprintf("[%10f, %10f, %10f | %10f]\n", m[4*0+0], m[4*0+1], m[4*0+2], m[4*0+3])
	str += fmt.Sprintf("[%10f, %10f, %10f | %10f]\n", m[4*1+0], m[4*1+1], m[4*1+2], m[4*1+3])
	str += fmt.Sprintf("[%10f, %10f, %10f | %10f]\n", m[4*2+0], m[4*2+1], m[4*2+2], m[4*2+3])
	return str
}

func (v Vec3)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f]", v[0], v[1], v[2])
}

// Mat34FromMat3 embeds a 3x3 matrix into a 3x4 affine matrix with a
// zero offset column.
func Mat34FromMat3(m Mat3) Mat34 {
	return Mat34{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
	}
}

// Clamp01 clamps v to [0.0, 1.0]. NaN clamps to 0, so that all
// outputs of the clamp are valid display intensities.
func Clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Min(math32.Max(v, 0), 1)
}

func (v Vec3)Clamp01() Vec3 {
	return Vec3{Clamp01(v[0]), Clamp01(v[1]), Clamp01(v[2])}
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
