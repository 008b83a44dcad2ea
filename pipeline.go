package jumptrack

import (
	"github.com/cyclopcam/logs"
	"github.com/swdee/go-jumptrack/config"
	"github.com/swdee/go-jumptrack/postprocess"
	"github.com/swdee/go-jumptrack/tracker"
)

// Stats are running totals of a Pipeline since it was created or reset
type Stats struct {
	Frames     int
	Detections int
	Accepted   int
	Tracks     int
	Jumps      int
}

// Pipeline runs the detections of a single video stream through the filter,
// tracker and trail history.  It is not safe for concurrent use
type Pipeline struct {
	cfg     config.Config
	filter  *postprocess.Filter
	tracker *tracker.JumpTracker
	trail   *tracker.Trail
	stats   Stats
}

// NewPipeline returns a pipeline configured with cfg
func NewPipeline(cfg config.Config) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		filter:  postprocess.NewFilter(cfg.Filter),
		tracker: tracker.NewJumpTracker(cfg.Tracker),
		trail:   tracker.NewTrail(cfg.TrailSize),
	}
}

// SetLogger passes the logger to the tracker
func (p *Pipeline) SetLogger(log logs.Log) {
	p.tracker.SetLogger(log)
}

// Process runs one frame of raw detections through the pipeline and returns
// the tracker result for the frame
func (p *Pipeline) Process(dets []postprocess.DetectResult) *tracker.Result {

	accepted := p.filter.Apply(dets)
	res := p.tracker.Update(tracker.DetectionsToObjects(accepted))
	p.trail.Update(res)

	p.stats.Frames++
	p.stats.Detections += len(dets)
	p.stats.Accepted += len(accepted)
	p.stats.Tracks += len(res.Created)
	p.stats.Jumps += len(res.JumpOnsets)

	return res
}

// Reset clears all tracks, trail history and stats
func (p *Pipeline) Reset() {
	p.tracker.Reset()
	p.trail.Reset()
	p.stats = Stats{}
}

// Trail returns the trail history of tracked box centers
func (p *Pipeline) Trail() *tracker.Trail {
	return p.trail
}

// Tracker returns the underlying tracker
func (p *Pipeline) Tracker() *tracker.JumpTracker {
	return p.tracker
}

// Config returns the settings the pipeline was created with
func (p *Pipeline) Config() config.Config {
	return p.cfg
}

// Stats returns the running totals
func (p *Pipeline) Stats() Stats {
	return p.stats
}
