package develop

import(
	"log"

	"github.com/skypies/util/histogram"
)

// LogMosaicStats reports how the raw samples sit against the
// calibration levels - how much of the frame is at the black floor
// and how much has clipped. A large clipped fraction usually means
// the white level is set too low for this sensor.
func (j *Job)LogMosaicStats(in Input) {
	if len(in.Samples) == 0 {
		return
	}

	hist := histogram.Histogram{NumBuckets: 256, ValMin: 0, ValMax: 65536}

	black := in.Samples[0]
	white := in.Samples[0]
	nFloor, nClipped := 0, 0

	blackLevel := j.Config.Calibration.BlackLevel
	whiteLevel := j.Config.Calibration.WhiteLevel

	for _, s := range in.Samples {
		hist.Add(histogram.ScalarVal(int(s)))
		if s < black { black = s }
		if s > white { white = s }
		if int(s) <= blackLevel { nFloor++ }
		if int(s) >= whiteLevel { nClipped++ }
	}

	n := float64(len(in.Samples))
	log.Printf("%s: samples [%d,%d], %.2f%% at black floor (<=%d), %.2f%% clipped (>=%d)",
		in.Filename(), black, white,
		100.0*float64(nFloor)/n, blackLevel,
		100.0*float64(nClipped)/n, whiteLevel)

	if j.Config.Verbosity > 1 {
		log.Printf("%s: sample histogram %v", in.Filename(), hist)
	}
}
