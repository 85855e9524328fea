package main

import(
	"flag"
	"log"

	"github.com/abworrall/raw-develop/pkg/develop"
)

var(
	fVerbosity int
	fInputKind string
	fOutput string
	fHDR string
	fPreview string
	fRepeat int
	fDiff bool
	fBlackLevel int
	fWhiteLevel int
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fInputKind, "kind", "", "force input interpretation: 'mosaic' or 'rgb' (default: infer)")
	flag.StringVar(&fOutput, "out", "developed.tif", "output filename (16-bit TIFF)")
	flag.StringVar(&fHDR, "hdr", "", "also write a Radiance .hdr to this filename")
	flag.StringVar(&fPreview, "preview", "", "also write a half-size PNG preview to this filename")
	flag.IntVar(&fRepeat, "repeat", 1, "develop each frame this many times, and report timing percentiles")
	flag.BoolVar(&fDiff, "diff", false, "log a perceptual diff between the first two developed frames")
	flag.IntVar(&fBlackLevel, "black", -1, "override calibration black level")
	flag.IntVar(&fWhiteLevel, "white", -1, "override calibration white level")
	flag.Parse()

	log.Printf("raw-develop starting\n")
}

func main() {
	job := develop.NewJob()

	// These two matter while loading (list the config .yaml before
	// any image files so it is in force when they are interpreted).
	job.Config.Verbosity = fVerbosity
	job.Config.InputKind = fInputKind

	if err := job.LoadFilesAndDirs(flag.Args()...); err != nil {
		log.Fatal(err)
	}

	job.Config.Verbosity = fVerbosity
	if fInputKind != "" {
		job.Config.InputKind = fInputKind
	}
	job.Config.OutputFilename = fOutput
	job.Config.HDRFilename = fHDR
	job.Config.PreviewFilename = fPreview
	job.Config.Repeat = fRepeat
	if fDiff {
		job.Config.DiffInputs = true
	}
	if fBlackLevel >= 0 {
		job.Config.Calibration.BlackLevel = fBlackLevel
	}
	if fWhiteLevel >= 0 {
		job.Config.Calibration.WhiteLevel = fWhiteLevel
	}

	if job.Config.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", job.Config.AsYaml())
	}

	if err := job.Run(); err != nil {
		log.Fatal(err)
	}
	if err := job.WriteOutputs(); err != nil {
		log.Fatal(err)
	}
}
