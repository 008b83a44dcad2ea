package tracker

import (
	"github.com/cyclopcam/logs"
	"gonum.org/v1/gonum/mat"
)

// Params are the tunable settings of the JumpTracker
type Params struct {
	// JumpThreshold is the accumulated upward movement (negative) needed
	// to classify a track as jumping
	JumpThreshold float64
	// NoiseTolerance is the downward movement per frame ignored as jitter
	NoiseTolerance float64
	// MinOverlap is the IoU a track and detection pair must exceed to be
	// matched.  Zero disables the gate so the solver alone decides
	MinOverlap float64
	// MaxMissed is the number of consecutive unmatched frames a track
	// survives.  Zero removes a track on the first frame it is not matched
	MaxMissed int
}

// DefaultParams returns the default tracker settings
func DefaultParams() Params {
	return Params{
		JumpThreshold:  DefaultJumpThreshold,
		NoiseTolerance: DefaultNoiseTolerance,
		MinOverlap:     0,
		MaxMissed:      0,
	}
}

// JumpEvent is emitted on the frame a track starts jumping
type JumpEvent struct {
	TrackID uint64
	FrameID int
	Rect    Rect
	// Accumulator is the accumulated upward movement at onset
	Accumulator float64
}

// Result is the outcome of a single update cycle
type Result struct {
	// FrameID is the cycle count, starting at 1
	FrameID int
	// Tracks are the current tracks in insertion order
	Tracks []TrackView
	// JumpOnsets are the tracks that started jumping this cycle
	JumpOnsets []JumpEvent
	// Created are the IDs of tracks created this cycle
	Created []uint64
	// Removed are the IDs of tracks removed this cycle
	Removed []uint64
}

// JumpTracker associates detections with tracks frame to frame using IoU and
// optimal assignment, and classifies the vertical motion of each track.  It
// is not safe for concurrent use, each update cycle must complete before the
// next begins
type JumpTracker struct {
	params  Params
	store   *TrackStore
	frameID int
	log     logs.Log
}

// NewJumpTracker initializes and returns a new JumpTracker
func NewJumpTracker(params Params) *JumpTracker {
	return &JumpTracker{
		params: params,
		store:  newTrackStore(params.JumpThreshold, params.NoiseTolerance),
	}
}

// SetLogger enables logging of jump onsets and track lifecycle
func (jt *JumpTracker) SetLogger(log logs.Log) {
	jt.log = log
}

// Params returns the tracker settings
func (jt *JumpTracker) Params() Params {
	return jt.params
}

// Reset removes all tracks.  Track IDs continue from where they were so
// they are never reused by this tracker
func (jt *JumpTracker) Reset() {
	jt.frameID = 0
	jt.store.Clear()
}

// Tracks returns the current tracks in insertion order
func (jt *JumpTracker) Tracks() []TrackView {
	views := make([]TrackView, 0, jt.store.Len())

	for _, id := range jt.store.IDs() {
		track, _ := jt.store.Get(id)
		views = append(views, track.View())
	}

	return views
}

// Update runs one association cycle with the detections of a new frame
func (jt *JumpTracker) Update(objects []Object) *Result {

	jt.frameID++

	res := &Result{
		FrameID: jt.frameID,
	}

	// Step 1: snapshot row order
	ids := jt.store.IDs()

	// Step 2: similarity of each track's previous box to each detection
	var sim *mat.Dense

	if len(ids) > 0 && len(objects) > 0 {
		sim = jt.calcIous(ids, objects)
	}

	// Step 3: optimal assignment
	var simM mat.Matrix
	if sim != nil {
		simM = sim
	}

	matchesIdx, unmatchTrackIdx, unmatchDetectionIdx := LinearAssignment(
		simM, len(ids), len(objects), jt.params.MinOverlap,
	)

	// Step 4: update matched tracks
	for _, m := range matchesIdx {
		track, _ := jt.store.Get(ids[m.Row])
		obj := objects[m.Col]

		d := obj.Rect.TLY() - track.rect.TLY()

		if track.motion.Update(d) {
			ev := JumpEvent{
				TrackID:     track.trackID,
				FrameID:     jt.frameID,
				Rect:        obj.Rect,
				Accumulator: track.motion.Accumulator(),
			}
			res.JumpOnsets = append(res.JumpOnsets, ev)

			if jt.log != nil {
				jt.log.Infof("Track %v JUMP at frame %v (accumulated %.1f)",
					ev.TrackID, ev.FrameID, ev.Accumulator)
			}
		}

		jt.store.Update(track.trackID, obj.Rect)
		track.observe(obj, jt.frameID)
		track.hits++
		track.missed = 0
	}

	// Step 5: unmatched tracks are removed once past the grace period
	for _, row := range unmatchTrackIdx {
		track, _ := jt.store.Get(ids[row])
		track.missed++

		if track.missed > jt.params.MaxMissed {
			jt.store.Remove(track.trackID)
			res.Removed = append(res.Removed, track.trackID)

			if jt.log != nil {
				jt.log.Debugf("Track %v removed after %v missed frames",
					track.trackID, track.missed)
			}
		}
	}

	// Step 6: new tracks for unmatched detections
	for _, col := range unmatchDetectionIdx {
		obj := objects[col]
		id := jt.store.Create(obj.Rect)

		track, _ := jt.store.Get(id)
		track.observe(obj, jt.frameID)
		track.startFrameID = jt.frameID

		res.Created = append(res.Created, id)

		if jt.log != nil {
			jt.log.Debugf("Track %v created at %.0f,%.0f", id, obj.Rect.TLX(), obj.Rect.TLY())
		}
	}

	res.Tracks = jt.Tracks()

	return res
}

// calcIous builds the similarity matrix with a row per track ID and a
// column per detection
func (jt *JumpTracker) calcIous(ids []uint64, objects []Object) *mat.Dense {

	ious := mat.NewDense(len(ids), len(objects), nil)

	for i, id := range ids {
		track, _ := jt.store.Get(id)

		for j := range objects {
			ious.Set(i, j, CalcIoU(track.rect, objects[j].Rect))
		}
	}

	return ious
}
