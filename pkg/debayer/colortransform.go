package debayer

import(
	"github.com/abworrall/raw-develop/pkg/rcolor"
)

// ColorTransform runs the color stage alone, for input that some
// external step already demosaiced: normalize -> white balance ->
// camera->XYZ -> XYZ->sRGB -> exposure -> clamp.
//
// No neighborhood reads happen here, so unlike the demosaic entry
// point every pixel is processed, edges included.
//
// rgb must hold Width*Height interleaved R,G,B triplets; out must
// hold Width*Height*3 floats.
func ColorTransform(rgb []uint16, p Params, out []float32) {
	k := p.kernel()

	parallelRows(p.Height, func(r0, r1 int) {
		for y := r0; y < r1; y++ {
			for x := 0; x < k.w; x++ {
				i := (y*k.w + x) * 3

				cam := k.wb.Apply(rcolor.CameraRGB{
					R: k.normalize(rgb[i+0]),
					G: k.normalize(rgb[i+1]),
					B: k.normalize(rgb[i+2]),
				})
				srgb := rcolor.Develop(cam, k.camToXYZ)

				out[i+0] = srgb.R
				out[i+1] = srgb.G
				out[i+2] = srgb.B
			}
		}
	})
}
