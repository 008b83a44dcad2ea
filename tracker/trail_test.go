package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrailKeepsMostRecentPoints(t *testing.T) {
	trail := NewTrail(3)

	for i := 0; i < 5; i++ {
		x := float64(i * 10)
		trail.Add(TrackView{ID: 7, Rect: NewRect(x, 0, x+10, 20)})
	}

	assert.Equal(t, []Point{{25, 10}, {35, 10}, {45, 10}}, trail.GetPoints(7))
	assert.Nil(t, trail.GetPoints(8))
}

func TestTrailUpdateDropsRemovedTracks(t *testing.T) {
	jt := NewJumpTracker(DefaultParams())
	trail := NewTrail(10)

	trail.Update(jt.Update([]Object{person(0, 0, 1), person(300, 0, 2)}))
	assert.Equal(t, 2, trail.Len())

	res := jt.Update([]Object{person(300, -10, 3)})
	trail.Update(res)

	assert.Equal(t, 1, trail.Len())
	assert.Nil(t, trail.GetPoints(0))
	assert.Equal(t, []Point{{350, 100}, {350, 90}}, trail.GetPoints(1))

	trail.Reset()
	assert.Zero(t, trail.Len())
}
