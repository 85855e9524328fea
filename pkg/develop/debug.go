package develop

import(
	"fmt"
	"log"

	"github.com/abworrall/raw-develop/pkg/rmath"
)

// DumpChannelPlanes writes each output channel as a grayscale debug
// PNG, and logs the value range per channel. Handy for spotting a
// white balance gain that pushed a whole channel into clipping.
func (di *DevelopedImage)DumpChannelPlanes(prefix string) {
	names := []string{"r", "g", "b"}

	for ci, name := range names {
		fg := rmath.NewFloatGrid(di.W, di.H)
		for y := 0; y < di.H; y++ {
			for x := 0; x < di.W; x++ {
				fg.Set(x, y, di.Pix[(y*di.W + x)*3 + ci])
			}
		}

		log.Printf("%s channel %s: %s", prefix, name, fg.Stats())

		filename := fmt.Sprintf("debug-%s-%s.png", prefix, name)
		if err := fg.ToImg(fmt.Sprintf("%s %s", prefix, name), filename); err != nil {
			log.Printf("debug dump %s: %v", filename, err)
		}
	}
}
