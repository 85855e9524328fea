package develop

import(
	"fmt"
	"time"

	"github.com/codahale/hdrhistogram"
)

// Timing of the pipeline steps, mostly so the demosaic pass can be
// compared across machines and repeat runs.

type StepTiming struct {
	Name     string
	Duration time.Duration
}

type PipelineTimings struct {
	Steps []StepTiming
}

type Timer struct {
	name  string
	start time.Time
}

func StartTimer(name string) Timer {
	return Timer{name: name, start: time.Now()}
}

func (t Timer)Stop() StepTiming {
	return StepTiming{Name: t.name, Duration: time.Since(t.start)}
}

func (pt *PipelineTimings)Add(st StepTiming) {
	pt.Steps = append(pt.Steps, st)
}

func (pt PipelineTimings)Total() time.Duration {
	total := time.Duration(0)
	for _, s := range pt.Steps {
		total += s.Duration
	}
	return total
}

func (pt PipelineTimings)Summary() string {
	total := pt.Total()
	str := "Pipeline timing:-\n"
	for _, s := range pt.Steps {
		pct := 0.0
		if total > 0 {
			pct = 100.0 * float64(s.Duration) / float64(total)
		}
		str += fmt.Sprintf("  %-24.24s %10.3fms (%5.1f%%)\n", s.Name, s.Duration.Seconds()*1000.0, pct)
	}
	str += fmt.Sprintf("  %-24.24s %10.3fms\n", "total", total.Seconds()*1000.0)
	return str
}

// BenchStats accumulates step durations across repeat runs into
// HDR histograms, so the summary can report percentiles rather than
// a single noisy sample.
type BenchStats struct {
	hists map[string]*hdrhistogram.Histogram
	names []string // insertion order, for stable summaries
}

func NewBenchStats() *BenchStats {
	return &BenchStats{hists: map[string]*hdrhistogram.Histogram{}}
}

func (b *BenchStats)Record(pt PipelineTimings) {
	for _, s := range pt.Steps {
		h, exists := b.hists[s.Name]
		if !exists {
			// 1us .. 60s, 3 sig figs
			h = hdrhistogram.New(1, 60_000_000, 3)
			b.hists[s.Name] = h
			b.names = append(b.names, s.Name)
		}
		h.RecordValue(s.Duration.Microseconds())
	}
}

func (b *BenchStats)Summary() string {
	str := "Step percentiles over repeat runs:-\n"
	for _, name := range b.names {
		h := b.hists[name]
		str += fmt.Sprintf("  %-24.24s p50 %8.3fms   p99 %8.3fms   (n=%d)\n",
			name,
			float64(h.ValueAtQuantile(50))/1000.0,
			float64(h.ValueAtQuantile(99))/1000.0,
			h.TotalCount())
	}
	return str
}
