package tracker

// MotionState represents the vertical motion state of a tracked object
type MotionState int

const (
	// Idle is not moving upwards, the accumulator is at zero
	Idle MotionState = 0
	// Ascending is moving upwards but has not yet passed the jump threshold
	Ascending MotionState = 1
	// Jumping has moved upwards past the jump threshold
	Jumping MotionState = 2
)

const (
	// DefaultJumpThreshold is the accumulated upward displacement in pixels
	// (negative is up in screen coordinates) needed to classify a jump
	DefaultJumpThreshold = -100.0
	// DefaultNoiseTolerance is the downward displacement in pixels that is
	// ignored as detector jitter
	DefaultNoiseTolerance = 5.0
)

// String returns the name of the motion state
func (s MotionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ascending:
		return "ascending"
	case Jumping:
		return "jumping"
	default:
		return "unknown"
	}
}

// MotionClassifier is a per track state machine that accumulates consecutive
// upward movement of the top edge of a bounding box and reports when the
// accumulated movement crosses the jump threshold
type MotionClassifier struct {
	// threshold is the negative accumulator value a jump must pass
	threshold float64
	// tolerance is the downward movement treated as noise
	tolerance float64
	// accumulator is the running total of upward movement
	accumulator float64
	state       MotionState
}

// NewMotionClassifier returns a classifier in the Idle state
func NewMotionClassifier(threshold, tolerance float64) *MotionClassifier {
	return &MotionClassifier{
		threshold: threshold,
		tolerance: tolerance,
		state:     Idle,
	}
}

// Update feeds the vertical displacement d (new y min - previous y min) of
// the tracked box into the classifier.  It returns true only on the frame the
// classifier enters the Jumping state
func (m *MotionClassifier) Update(d float64) bool {

	switch {
	case d < 0:
		m.accumulator += d

		if m.accumulator < m.threshold {
			if m.state != Jumping {
				m.state = Jumping
				return true
			}
			return false
		}

		if m.state == Idle {
			m.state = Ascending
		}

	case d > m.tolerance:
		m.Reset()
	}

	// small downward movement is jitter and leaves the state unchanged
	return false
}

// Reset returns the classifier to the Idle state
func (m *MotionClassifier) Reset() {
	m.accumulator = 0
	m.state = Idle
}

// State returns the current motion state
func (m *MotionClassifier) State() MotionState {
	return m.state
}

// Accumulator returns the accumulated upward displacement
func (m *MotionClassifier) Accumulator() float64 {
	return m.accumulator
}

// IsJumping returns true while the classifier is in the Jumping state
func (m *MotionClassifier) IsJumping() bool {
	return m.state == Jumping
}
