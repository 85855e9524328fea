package develop

import(
	"fmt"
	"image"
	"path/filepath"
)

type InputKind int

const (
	// KindMosaic input is single-channel RGGB Bayer data: one uint16
	// sample per pixel, pixel (x,y) red iff x,y both even, blue iff
	// both odd, green otherwise.
	KindMosaic InputKind = iota

	// KindRGB input was demosaiced by some external step: one
	// interleaved R,G,B uint16 triplet per pixel.
	KindRGB
)

func (k InputKind)String() string {
	if k == KindMosaic {
		return "mosaic"
	}
	return "rgb"
}

// An Input is one frame waiting to be developed. Samples is owned by
// the Input; the pipeline only borrows it for the duration of a run.
type Input struct {
	LoadFilename string
	Kind         InputKind
	Width        int
	Height       int
	Samples      []uint16 // Width*Height for mosaic, Width*Height*3 for rgb
}

func (in Input)String() string {
	return fmt.Sprintf("%s: %dx%d %s", in.Filename(), in.Width, in.Height, in.Kind)
}

func (in Input)Filename() string {
	return filepath.Base(in.LoadFilename)
}

// InputFromImage converts a decoded image into pipeline input. A
// 16-bit grayscale image is taken to be a Bayer mosaic; anything
// else is treated as already-demosaiced RGB, read out at 16 bits per
// channel. `kind` forces the interpretation ("mosaic"/"rgb"); pass
// "" to infer.
func InputFromImage(img image.Image, kind string) (Input, error) {
	bounds := img.Bounds()
	in := Input{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	gray, isGray := img.(*image.Gray16)

	wantMosaic := kind == "mosaic" || (kind == "" && isGray)
	if kind == "mosaic" && !isGray {
		return in, fmt.Errorf("mosaic input must be 16-bit grayscale, got %T", img)
	}

	if wantMosaic {
		in.Kind = KindMosaic
		in.Samples = make([]uint16, in.Width*in.Height)
		for y := 0; y < in.Height; y++ {
			for x := 0; x < in.Width; x++ {
				in.Samples[y*in.Width + x] = gray.Gray16At(bounds.Min.X + x, bounds.Min.Y + y).Y
			}
		}
		return in, nil
	}

	in.Kind = KindRGB
	in.Samples = make([]uint16, in.Width*in.Height*3)
	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X + x, bounds.Min.Y + y).RGBA()
			i := (y*in.Width + x) * 3
			in.Samples[i+0] = uint16(r)
			in.Samples[i+1] = uint16(g)
			in.Samples[i+2] = uint16(b)
		}
	}
	return in, nil
}
