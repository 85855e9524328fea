// Package debayer is the per-pixel numeric core of the pipeline: it
// turns a single-channel RGGB Bayer mosaic (or an already-demosaiced
// 16-bit RGB buffer) into normalized, color-corrected, exposure-
// adjusted linear sRGB floats in [0,1].
//
// Every output pixel is an independent unit of work: each one reads
// at most a 3x3 window of the input and writes exactly one output
// location, so any parallel execution order gives identical results.
// The package shards rows across goroutines; no synchronization
// exists beyond the final join.
package debayer

import(
	"github.com/abworrall/raw-develop/pkg/rcolor"
)

// sample returns the normalized mosaic sample at (x,y). Callers must
// keep coordinates in range; the interior-only loops below guarantee
// that for every neighborhood access.
func (k kernel)sample(raw []uint16, x, y int) float32 {
	return k.normalize(raw[y*k.w + x])
}

// reconstruct produces the full camera RGB at (x,y) by bilinear
// interpolation over the RGGB tile. Which branch runs per channel is
// dictated entirely by (x mod 2, y mod 2):
//
//	R G   even rows hold red on even columns,
//	G B   odd rows hold blue on odd columns, green fills the rest.
//
// Neighbors are normalized before they are averaged. White balance
// is NOT applied here; it belongs after reconstruction, once per
// channel.
func (k kernel)reconstruct(raw []uint16, x, y int) rcolor.CameraRGB {
	xOdd := x&1 == 1
	yOdd := y&1 == 1

	var r, g, b float32

	// Green sits on the anti-diagonal of each 2x2 tile.
	if xOdd != yOdd {
		g = k.sample(raw, x, y)
	} else {
		g = 0.25 * (k.sample(raw, x-1, y) + k.sample(raw, x+1, y) +
			k.sample(raw, x, y-1) + k.sample(raw, x, y+1))
	}

	switch {
	case !xOdd && !yOdd:
		// Red photosite: red is direct, blue from the four diagonals.
		r = k.sample(raw, x, y)
		b = 0.25 * (k.sample(raw, x-1, y-1) + k.sample(raw, x+1, y-1) +
			k.sample(raw, x-1, y+1) + k.sample(raw, x+1, y+1))

	case xOdd && !yOdd:
		// Green photosite on a red row: red left/right, blue up/down.
		r = 0.5 * (k.sample(raw, x-1, y) + k.sample(raw, x+1, y))
		b = 0.5 * (k.sample(raw, x, y-1) + k.sample(raw, x, y+1))

	case !xOdd && yOdd:
		// Green photosite on a blue row: red up/down, blue left/right.
		r = 0.5 * (k.sample(raw, x, y-1) + k.sample(raw, x, y+1))
		b = 0.5 * (k.sample(raw, x-1, y) + k.sample(raw, x+1, y))

	default:
		// Blue photosite: blue is direct, red from the four diagonals.
		r = 0.25 * (k.sample(raw, x-1, y-1) + k.sample(raw, x+1, y-1) +
			k.sample(raw, x-1, y+1) + k.sample(raw, x+1, y+1))
		b = k.sample(raw, x, y)
	}

	return rcolor.CameraRGB{R: r, G: g, B: b}
}

// DemosaicAndColorTransform runs the full pipeline over an RGGB
// mosaic: normalize -> reconstruct -> white balance -> camera->XYZ ->
// XYZ->sRGB -> exposure -> clamp.
//
// Pixels within 1 of the image edge are skipped entirely - no
// channel is computed and nothing is written there - because
// reconstruction needs a full 3x3 neighborhood. Callers either
// tolerate the unprocessed border or pre-pad the input.
//
// raw must hold Width*Height samples; out must hold Width*Height*3
// floats and is only written at interior pixel offsets.
func DemosaicAndColorTransform(raw []uint16, p Params, out []float32) {
	if p.Width < 3 || p.Height < 3 {
		return // no interior pixels at all
	}

	k := p.kernel()

	parallelRows(p.Height-2, func(r0, r1 int) {
		for y := r0 + 1; y <= r1; y++ {
			for x := 1; x < k.w-1; x++ {
				cam  := k.wb.Apply(k.reconstruct(raw, x, y))
				srgb := rcolor.Develop(cam, k.camToXYZ)

				o := (y*k.w + x) * 3
				out[o+0] = srgb.R
				out[o+1] = srgb.G
				out[o+2] = srgb.B
			}
		}
	})
}
