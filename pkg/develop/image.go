package develop

import(
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
	"github.com/nfnt/resize"
	"golang.org/x/image/tiff"
)

// A DevelopedImage is the pipeline's output buffer: interleaved
// R,G,B float32 triplets in [0,1], linear light with sRGB primaries.
// The buffer is allocated zeroed, which is what gives the demosaic
// path its black 1-pixel border (the core never writes there).
//
// Implements image.Image and hdr.Image.
type DevelopedImage struct {
	W, H int
	Pix  []float32
}

func NewDevelopedImage(w, h int) *DevelopedImage {
	return &DevelopedImage{
		W:   w,
		H:   h,
		Pix: make([]float32, w*h*3),
	}
}

// Implement image.Image
func (di *DevelopedImage)ColorModel() color.Model { return hdrcolor.RGBModel }
func (di *DevelopedImage)Bounds() image.Rectangle { return image.Rect(0, 0, di.W, di.H) }
func (di *DevelopedImage)At(x, y int) color.Color { return di.HDRAt(x, y) }

// Implement hdr.Image
func (di *DevelopedImage)HDRAt(x, y int) hdrcolor.Color {
	i := (y*di.W + x) * 3
	return hdrcolor.RGB{
		R: float64(di.Pix[i+0]),
		G: float64(di.Pix[i+1]),
		B: float64(di.Pix[i+2]),
	}
}
func (di *DevelopedImage)Size() int { return di.W * di.H }

// toRGBA64 scales [0,1] floats to 16-bit channels. The pipeline has
// already clamped, so the scale can't wrap.
func (di *DevelopedImage)toRGBA64() *image.RGBA64 {
	img := image.NewRGBA64(di.Bounds())
	for y := 0; y < di.H; y++ {
		for x := 0; x < di.W; x++ {
			i := (y*di.W + x) * 3
			img.SetRGBA64(x, y, color.RGBA64{
				R: uint16(di.Pix[i+0] * 65535.0),
				G: uint16(di.Pix[i+1] * 65535.0),
				B: uint16(di.Pix[i+2] * 65535.0),
				A: 0xFFFF,
			})
		}
	}
	return img
}

// WriteToTIFF writes a deflate-compressed 16-bit RGB TIFF.
func (di *DevelopedImage)WriteToTIFF(filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	defer writer.Close()

	opts := tiff.Options{Compression: tiff.Deflate, Predictor: true}
	return tiff.Encode(writer, di.toRGBA64(), &opts)
}

// WriteToHDR outputs a Radiance .hdr image. You can load this into
// photoshop or other HDR tools.
func (di *DevelopedImage)WriteToHDR(filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	defer writer.Close()

	return rgbe.Encode(writer, di)
}

// WritePreview writes a half-size PNG, for a quick look.
func (di *DevelopedImage)WritePreview(filename string) error {
	w := di.W / 2
	if w < 1 {
		w = 1
	}
	small := resize.Resize(uint(w), 0, di.toRGBA64(), resize.Bilinear)
	return WritePNG(small, filename)
}

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}
