package tracker

// Track represents a single tracked object identity
type Track struct {
	// Unique ID for the track, never reused
	trackID uint64
	// Bounding box from the most recent matched detection
	rect Rect
	// motion classifies vertical movement of the track
	motion *MotionClassifier
	// Detection score of the most recent matched detection
	score float32
	// label is the object class of the detection that created the track
	label string
	// Unique ID of the most recent matched detection
	detectionID int64
	// Frame ID of the last match
	frameID int
	// Frame ID when the track started
	startFrameID int
	// hits is the number of frames the track has been matched, including
	// its creation
	hits int
	// missed is the number of consecutive frames without a match
	missed int
}

// newTrack creates a track in the Idle motion state
func newTrack(trackID uint64, rect Rect, threshold, tolerance float64) *Track {
	return &Track{
		trackID: trackID,
		rect:    rect,
		motion:  NewMotionClassifier(threshold, tolerance),
		hits:    1,
	}
}

// GetTrackID returns the unique ID for the track
func (t *Track) GetTrackID() uint64 {
	return t.trackID
}

// GetRect returns the bounding box of the tracked object
func (t *Track) GetRect() Rect {
	return t.rect
}

// GetScore returns the detection score
func (t *Track) GetScore() float32 {
	return t.score
}

// GetLabel returns the object class label
func (t *Track) GetLabel() string {
	return t.label
}

// GetDetectionID returns the unique ID of the last matched detection
func (t *Track) GetDetectionID() int64 {
	return t.detectionID
}

// GetFrameID returns the frame ID of the last match
func (t *Track) GetFrameID() int {
	return t.frameID
}

// GetStartFrameID returns the frame ID when the track started
func (t *Track) GetStartFrameID() int {
	return t.startFrameID
}

// GetHits returns the number of frames the track was matched in
func (t *Track) GetHits() int {
	return t.hits
}

// GetMissed returns the number of consecutive frames the track went unmatched
func (t *Track) GetMissed() int {
	return t.missed
}

// Motion returns the track's motion classifier
func (t *Track) Motion() *MotionClassifier {
	return t.motion
}

// IsJumping returns true while the track is classified as jumping
func (t *Track) IsJumping() bool {
	return t.motion.IsJumping()
}

// observe records the detection attributes of a match
func (t *Track) observe(obj Object, frameID int) {
	t.score = obj.Prob
	t.label = obj.Label
	t.detectionID = obj.ID
	t.frameID = frameID
}

// View returns a read-only snapshot of the track
func (t *Track) View() TrackView {
	return TrackView{
		ID:          t.trackID,
		Rect:        t.rect,
		IsJumping:   t.motion.IsJumping(),
		State:       t.motion.State(),
		Accumulator: t.motion.Accumulator(),
		Label:       t.label,
		Score:       t.score,
		DetectionID: t.detectionID,
		Missed:      t.missed,
	}
}

// TrackView is a read-only copy of a track's state handed to callers after
// each update cycle
type TrackView struct {
	ID          uint64
	Rect        Rect
	IsJumping   bool
	State       MotionState
	Accumulator float64
	Label       string
	Score       float32
	DetectionID int64
	// Missed is the number of consecutive frames the track went unmatched,
	// only non-zero when a grace period is configured
	Missed int
}
