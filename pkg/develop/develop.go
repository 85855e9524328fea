package develop

import(
	"fmt"
	"log"

	"github.com/abworrall/raw-develop/pkg/debayer"
)

// A Job holds the configuration and input frames, and develops each
// frame through the numeric core. The core itself validates nothing;
// everything it assumes is enforced here first.
type Job struct {
	Config
	Inputs  []Input
	Results []*DevelopedImage
}

func NewJob() Job {
	return Job{
		Config: NewConfig(),
	}
}

func (j Job)String() string {
	str := "Job[\n"
	for _, in := range j.Inputs {
		str += fmt.Sprintf("  %s\n", in)
	}
	return str + "]\n"
}

func (j *Job)AddInput(in Input) {
	j.Inputs = append(j.Inputs, in)
}

// Params maps the finalized calibration onto the core's parameter
// block for one input frame.
func (j *Job)Params(in Input) debayer.Params {
	return debayer.Params{
		Width:        in.Width,
		Height:       in.Height,
		WhiteBalance: j.Config.Calibration.WhiteBalance(),
		BlackLevel:   j.Config.Calibration.BlackLevel,
		WhiteLevel:   j.Config.Calibration.WhiteLevel,
		CamToXYZ:     j.Config.Calibration.Matrix(),
	}
}

// Validate checks one input frame against the config and the core's
// undocumented assumptions. The core tolerates none of this; it is
// the caller's job (i.e. ours) to reject bad frames before launch.
func (j *Job)Validate(in Input) error {
	if in.Width <= 0 || in.Height <= 0 {
		return fmt.Errorf("%s: bad dimensions %dx%d", in.Filename(), in.Width, in.Height)
	}
	if j.Config.MaxDimension > 0 && (in.Width > j.Config.MaxDimension || in.Height > j.Config.MaxDimension) {
		return fmt.Errorf("%s: dimensions %dx%d exceed maximum %d",
			in.Filename(), in.Width, in.Height, j.Config.MaxDimension)
	}

	want := in.Width * in.Height
	if in.Kind == KindRGB {
		want *= 3
	}
	if len(in.Samples) != want {
		return fmt.Errorf("%s: sample buffer has %d values, want %d", in.Filename(), len(in.Samples), want)
	}

	return j.Config.Calibration.Validate()
}

// DevelopOne runs the pipeline over a single frame and returns the
// output buffer plus the per-step timings.
func (j *Job)DevelopOne(in Input) (*DevelopedImage, PipelineTimings, error) {
	timings := PipelineTimings{}

	t := StartTimer("validate")
	err := j.Validate(in)
	timings.Add(t.Stop())
	if err != nil {
		return nil, timings, err
	}

	t = StartTimer("alloc")
	out := NewDevelopedImage(in.Width, in.Height)
	timings.Add(t.Stop())

	switch in.Kind {
	case KindMosaic:
		t = StartTimer("demosaic+color")
		debayer.DemosaicAndColorTransform(in.Samples, j.Params(in), out.Pix)
		timings.Add(t.Stop())
	case KindRGB:
		t = StartTimer("color")
		debayer.ColorTransform(in.Samples, j.Params(in), out.Pix)
		timings.Add(t.Stop())
	}

	return out, timings, nil
}

// Run finalizes the calibration and develops every loaded frame,
// repeating each one Config.Repeat times for timing purposes (the
// pipeline is a pure function, so repeats are free of side effects).
func (j *Job)Run() error {
	if len(j.Inputs) == 0 {
		return fmt.Errorf("no input frames loaded")
	}
	if err := j.Config.Calibration.Finalize(); err != nil {
		return fmt.Errorf("calibration: %v", err)
	}

	repeat := j.Config.Repeat
	if repeat < 1 {
		repeat = 1
	}
	bench := NewBenchStats()

	for _, in := range j.Inputs {
		log.Printf("Developing %s", in)

		if j.Config.Verbosity > 0 && in.Kind == KindMosaic {
			j.LogMosaicStats(in)
		}

		var result *DevelopedImage
		for i := 0; i < repeat; i++ {
			out, timings, err := j.DevelopOne(in)
			if err != nil {
				return err
			}
			result = out
			bench.Record(timings)
			if j.Config.Verbosity > 0 && i == 0 {
				log.Printf("%s", timings.Summary())
			}
		}
		j.Results = append(j.Results, result)

		if j.Config.Verbosity > 1 {
			result.DumpChannelPlanes(in.Filename())
		}
	}

	if repeat > 1 {
		log.Printf("%s", bench.Summary())
	}

	if j.Config.DiffInputs && len(j.Results) >= 2 {
		d, err := ImgDiff(j.Results[0], j.Results[1])
		if err != nil {
			return fmt.Errorf("diff: %v", err)
		}
		log.Printf("Perceptual diff between %s and %s: %.6f (mean Lab distance)",
			j.Inputs[0].Filename(), j.Inputs[1].Filename(), d)
	}

	return nil
}

// WriteOutputs writes each developed frame per the config. Filenames
// get a -N suffix when more than one frame was developed.
func (j *Job)WriteOutputs() error {
	for i, result := range j.Results {
		if f := j.Config.OutputFilename; f != "" {
			if err := result.WriteToTIFF(numbered(f, i, len(j.Results))); err != nil {
				return err
			}
		}
		if f := j.Config.HDRFilename; f != "" {
			if err := result.WriteToHDR(numbered(f, i, len(j.Results))); err != nil {
				return err
			}
		}
		if f := j.Config.PreviewFilename; f != "" {
			if err := result.WritePreview(numbered(f, i, len(j.Results))); err != nil {
				return err
			}
		}
	}
	return nil
}

func numbered(filename string, i, n int) string {
	if n <= 1 {
		return filename
	}
	ext := ""
	base := filename
	if dot := len(filename) - 4; dot > 0 && filename[dot] == '.' {
		base, ext = filename[:dot], filename[dot:]
	}
	return fmt.Sprintf("%s-%02d%s", base, i, ext)
}
