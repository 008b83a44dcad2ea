package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMotionClassifierJumpOnsetOnce(t *testing.T) {
	m := NewMotionClassifier(DefaultJumpThreshold, DefaultNoiseTolerance)

	assert.Equal(t, Idle, m.State())

	onsets := 0
	wantAcc := []float64{-30, -60, -90, -120, -150}
	wantState := []MotionState{Ascending, Ascending, Ascending, Jumping, Jumping}

	for i := range wantAcc {
		if m.Update(-30) {
			onsets++
			assert.Equal(t, 3, i, "jump onset should be on the fourth frame")
		}

		assert.Equal(t, wantAcc[i], m.Accumulator())
		assert.Equal(t, wantState[i], m.State())
	}

	assert.Equal(t, 1, onsets)
	assert.True(t, m.IsJumping())
}

func TestMotionClassifierResetOnDownward(t *testing.T) {
	m := NewMotionClassifier(DefaultJumpThreshold, DefaultNoiseTolerance)

	assert.True(t, m.Update(-150))
	assert.True(t, m.IsJumping())

	assert.False(t, m.Update(10))
	assert.Zero(t, m.Accumulator())
	assert.Equal(t, Idle, m.State())
	assert.False(t, m.IsJumping())

	// a new ascent can trigger another onset
	assert.True(t, m.Update(-101))
}

func TestMotionClassifierJitter(t *testing.T) {
	m := NewMotionClassifier(DefaultJumpThreshold, DefaultNoiseTolerance)

	m.Update(-40)
	m.Update(-40)

	// downward movement within tolerance leaves the ascent intact
	for _, d := range []float64{0, 3, 5} {
		assert.False(t, m.Update(d))
		assert.Equal(t, -80.0, m.Accumulator())
		assert.Equal(t, Ascending, m.State())
	}

	assert.True(t, m.Update(-30))
	assert.Equal(t, -110.0, m.Accumulator())

	// jitter while jumping keeps the jump
	assert.False(t, m.Update(5))
	assert.True(t, m.IsJumping())

	// just beyond tolerance resets
	m.Update(5.5)
	assert.Equal(t, Idle, m.State())
	assert.Zero(t, m.Accumulator())
}

func TestMotionClassifierThresholdIsStrict(t *testing.T) {
	m := NewMotionClassifier(-100, 5)

	assert.False(t, m.Update(-100))
	assert.Equal(t, Ascending, m.State())

	assert.True(t, m.Update(-0.5))
}

func TestMotionStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "ascending", Ascending.String())
	assert.Equal(t, "jumping", Jumping.String())
	assert.Equal(t, "unknown", MotionState(9).String())
}
