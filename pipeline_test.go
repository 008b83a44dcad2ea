package jumptrack

import (
	"testing"

	"github.com/cyclopcam/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-jumptrack/config"
	"github.com/swdee/go-jumptrack/postprocess"
)

func detection(label string, prob float32, x, y float64) postprocess.DetectResult {
	return postprocess.DetectResult{
		Label:       label,
		Probability: prob,
		Box: postprocess.BoxRect{
			Left:   x,
			Top:    y,
			Right:  x + 100,
			Bottom: y + 200,
		},
	}
}

func TestPipelineJump(t *testing.T) {
	p := NewPipeline(config.Default())
	p.SetLogger(logs.NewTestingLog(t))

	var onsetFrame int

	for i, y := range []float64{300, 270, 240, 210, 180, 150} {
		res := p.Process([]postprocess.DetectResult{
			detection("person", 0.9, 100, y),
			// rejected by the default filter
			detection("dog", 0.9, 400, 300),
			detection("person", 0.3, 600, 300),
		})

		require.Len(t, res.Tracks, 1, "frame %d", i+1)
		assert.Equal(t, uint64(0), res.Tracks[0].ID)

		if len(res.JumpOnsets) > 0 {
			require.Zero(t, onsetFrame, "onset fired twice")
			onsetFrame = res.FrameID
			assert.Equal(t, uint64(0), res.JumpOnsets[0].TrackID)
		}
	}

	// accumulated -30 per frame crosses -100 on the fourth movement
	assert.Equal(t, 5, onsetFrame)
	assert.True(t, p.Tracker().Tracks()[0].IsJumping)

	pts := p.Trail().GetPoints(0)
	require.Len(t, pts, 6)
	assert.Equal(t, 150, pts[0].X)
	assert.Equal(t, 400, pts[0].Y)
	assert.Equal(t, 250, pts[5].Y)

	st := p.Stats()
	assert.Equal(t, Stats{Frames: 6, Detections: 18, Accepted: 6, Tracks: 1, Jumps: 1}, st)
}

func TestPipelineTrailDropsRemovedTracks(t *testing.T) {
	p := NewPipeline(config.Default())

	p.Process([]postprocess.DetectResult{detection("person", 0.9, 0, 0)})
	assert.Equal(t, 1, p.Trail().Len())

	res := p.Process(nil)
	assert.Equal(t, []uint64{0}, res.Removed)
	assert.Equal(t, 0, p.Trail().Len())
}

func TestPipelineReset(t *testing.T) {
	p := NewPipeline(config.Default())

	p.Process([]postprocess.DetectResult{detection("person", 0.9, 0, 0)})
	p.Reset()

	assert.Empty(t, p.Tracker().Tracks())
	assert.Equal(t, 0, p.Trail().Len())
	assert.Equal(t, Stats{}, p.Stats())

	// IDs are not reused after a reset
	res := p.Process([]postprocess.DetectResult{detection("person", 0.9, 0, 0)})
	assert.Equal(t, []uint64{1}, res.Created)
}

func TestPool(t *testing.T) {
	pool := NewPool(2, config.Default())
	assert.Equal(t, 2, pool.Size())

	a := pool.Get()
	b := pool.Get()
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotSame(t, a, b)

	a.Process([]postprocess.DetectResult{detection("person", 0.9, 0, 0)})
	pool.Return(a)

	// returned pipelines start with no tracks
	c := pool.Get()
	assert.Empty(t, c.Tracker().Tracks())

	pool.Return(b)
	pool.Return(c)
	pool.Close()

	// returning or closing after close is a no-op
	pool.Return(a)
	pool.Close()
	assert.Nil(t, pool.Get())
}
