package develop

import(
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ImgDiff compares two developed images and returns the mean
// per-pixel distance in Lab space; the less similar, the higher the
// value. It's mostly useful for judging how far an externally
// demosaiced frame drifts from our own demosaic of the same mosaic.
//
// The inputs are linear-light values, which go-colorful treats as
// display sRGB; since both sides get the same treatment the metric
// is still monotone in the real difference.
func ImgDiff(a, b *DevelopedImage) (float64, error) {
	if a.W != b.W || a.H != b.H {
		return 0, fmt.Errorf("dimension mismatch: %dx%d vs %dx%d", a.W, a.H, b.W, b.H)
	}

	total := 0.0
	n := a.W * a.H

	for i := 0; i < n; i++ {
		ca := colorful.Color{
			R: float64(a.Pix[i*3+0]),
			G: float64(a.Pix[i*3+1]),
			B: float64(a.Pix[i*3+2]),
		}
		cb := colorful.Color{
			R: float64(b.Pix[i*3+0]),
			G: float64(b.Pix[i*3+1]),
			B: float64(b.Pix[i*3+2]),
		}
		total += ca.DistanceLab(cb)
	}

	return total / float64(n), nil
}
