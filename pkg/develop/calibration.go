package develop

import(
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/abworrall/raw-develop/pkg/rcolor"
	"github.com/abworrall/raw-develop/pkg/rmath"
)

// Calibration is the sensor-specific data needed to develop a raw
// frame: the usable sample range, the as-shot white balance
// coefficients, and the camera's color matrix. It normally comes
// from the config file; cameras record all of it in their raw
// metadata.
type Calibration struct {
	BlackLevel int
	WhiteLevel int

	// WBCoeffs are the raw [R,G,B,E] multipliers as cameras record
	// them; they get rescaled so green is 1.0. Three values are
	// accepted too (the E channel is unused).
	WBCoeffs   []float32

	// CamToXYZ, when present, is used directly: 12 row-major values,
	// 3 rows of [r,g,b,offset].
	CamToXYZ   []float32

	// XYZToCam is the matrix most raw metadata actually carries: 9
	// row-major values mapping XYZ into camera RGB. When CamToXYZ is
	// absent, the camera->XYZ matrix is derived from this one by
	// row-normalizing and inverting it.
	XYZToCam   []float64

	// Derived by Finalize.
	camToXYZ   rmath.Mat34
	finalized  bool
}

func NewCalibration() Calibration {
	return Calibration{
		WhiteLevel: 0xFFFF,
		WBCoeffs:   []float32{1, 1, 1, 0},
	}
}

// Finalize derives the camera->XYZ matrix, preferring an explicit
// CamToXYZ over inverting XYZToCam. With neither, the identity
// matrix is used and the output stays in white-balanced camera RGB
// pushed through the sRGB matrix - useful for eyeballing, wrong for
// color accuracy.
func (c *Calibration)Finalize() error {
	switch {
	case len(c.CamToXYZ) == 12:
		for i, v := range c.CamToXYZ {
			c.camToXYZ[i] = v
		}

	case len(c.CamToXYZ) != 0:
		return fmt.Errorf("camtoxyz needs exactly 12 values, got %d", len(c.CamToXYZ))

	case len(c.XYZToCam) == 9:
		m, err := invertXYZToCam(c.XYZToCam)
		if err != nil {
			return err
		}
		c.camToXYZ = m

	case len(c.XYZToCam) != 0:
		return fmt.Errorf("xyztocam needs exactly 9 values, got %d", len(c.XYZToCam))

	default:
		c.camToXYZ = rmath.Mat34FromMat3(rmath.Mat3{1,0,0, 0,1,0, 0,0,1})
	}

	c.finalized = true
	return nil
}

// invertXYZToCam turns the XYZ->camera matrix from raw metadata into
// the camera->XYZ matrix the pipeline wants. Each row is first
// scaled so it sums to 1 (so the camera maps the reference white
// (1,1,1) to 1.0 per channel), then the matrix is inverted. The
// offset column of the result is zero.
func invertXYZToCam(xyzToCam []float64) (rmath.Mat34, error) {
	var out rmath.Mat34

	m := mat.NewDense(3, 3, nil)
	for r := 0; r < 3; r++ {
		sum := xyzToCam[r*3+0] + xyzToCam[r*3+1] + xyzToCam[r*3+2]
		if sum == 0 {
			return out, fmt.Errorf("xyztocam row %d sums to zero", r)
		}
		for col := 0; col < 3; col++ {
			m.Set(r, col, xyzToCam[r*3+col]/sum)
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return out, fmt.Errorf("xyztocam is not invertible: %v", err)
	}

	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			out[r*4+col] = float32(inv.At(r, col))
		}
		out[r*4+3] = 0
	}
	return out, nil
}

// Matrix returns the finalized camera->XYZ matrix.
func (c Calibration)Matrix() rmath.Mat34 {
	return c.camToXYZ
}

// WhiteBalance returns the per-channel gains, green-normalized.
func (c Calibration)WhiteBalance() rcolor.WhiteBalance {
	coeffs := [4]float32{1, 1, 1, 0}
	copy(coeffs[:], c.WBCoeffs)
	return rcolor.NormalizeByGreen(coeffs)
}

// Validate enforces the constraints the numeric core assumes but
// never checks: a non-degenerate normalization range, strictly
// positive white balance gains, and a finite color matrix. This is
// the guard layer - the core itself produces garbage (not crashes)
// if handed bad values.
func (c Calibration)Validate() error {
	if !c.finalized {
		return fmt.Errorf("calibration not finalized")
	}

	if c.WhiteLevel <= c.BlackLevel {
		return fmt.Errorf("white level %d must exceed black level %d", c.WhiteLevel, c.BlackLevel)
	}

	if n := len(c.WBCoeffs); n != 3 && n != 4 {
		return fmt.Errorf("wbcoeffs needs 3 or 4 values, got %d", n)
	}
	wb := c.WhiteBalance()
	for _, gain := range []float32{wb.R, wb.G, wb.B} {
		if !(gain > 0) || !rmath.IsFinite(gain) {
			return fmt.Errorf("white balance gains must be strictly positive and finite, got %s", wb)
		}
	}

	for i, v := range c.camToXYZ {
		if !rmath.IsFinite(v) {
			return fmt.Errorf("cam-to-xyz entry %d is not finite", i)
		}
	}

	return nil
}
