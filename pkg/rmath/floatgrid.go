package rmath

import(
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/fogleman/gg"
)

// A FloatGrid is a single-channel plane of float32 values. The
// develop pipeline uses these for debug dumps of intermediate
// channel planes.
type FloatGrid struct {
	stride int
	values []float32
}

func NewFloatGrid(w, h int) FloatGrid {
	return FloatGrid{
		stride: w,
		values: make([]float32, w*h),
	}
}

func (fg *FloatGrid)Set(x, y int, v float32) { fg.values[fg.stride*y + x] = v }
func (fg *FloatGrid)Get(x, y int) float32    { return fg.values[fg.stride*y + x] }
func (fg *FloatGrid)Dx() int                 { return fg.stride }
func (fg *FloatGrid)Dy() int                 { return len(fg.values) / fg.stride }

func (fg *FloatGrid)Stats() string {
	min := float32(math32.MaxFloat32)
	max := -min

	for i:=0 ; i<len(fg.values) ; i++ {
		if fg.values[i] > max { max = fg.values[i] }
		if fg.values[i] < min { min = fg.values[i] }
	}
	return fmt.Sprintf("fg[%dx%d, vals{%f,%f}]", fg.Dx(), fg.Dy(), min, max)
}

// ToImg saves a simple grayscale render of the grid, scaled to the
// range of values present, with a title drawn in the corner.
func (fg *FloatGrid)ToImg(title, filename string) error {
	min, max := float32(math32.MaxFloat32), float32(-math32.MaxFloat32)
	for i:=0; i<len(fg.values); i++ {
		if fg.values[i] > max { max = fg.values[i] }
		if fg.values[i] < min { min = fg.values[i] }
	}
	if max <= min {
		max = min + 1
	}

	img := image.NewRGBA64(image.Rectangle{Max:image.Point{fg.Dx(), fg.Dy()}})
	for x:=0; x<fg.Dx(); x++ {
		for y:=0; y<fg.Dy(); y++ {
			gray := (fg.Get(x,y) - min) / (max - min)
			col := color.RGBA64{uint16(gray * 65535.0), uint16(gray * 65535.0), uint16(gray * 65535.0), 0xFFFF}
			img.Set(x, y, col)
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1,1,1)
	dc.DrawString(title, 50, 50)
	return dc.SavePNG(filename)
}
