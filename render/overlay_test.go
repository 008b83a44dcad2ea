package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swdee/go-jumptrack/tracker"
)

func trackView(id uint64, jumping bool, l, t, r, b float64) tracker.TrackView {
	return tracker.TrackView{
		ID:        id,
		Rect:      tracker.NewRect(l, t, r, b),
		IsJumping: jumping,
		Label:     "person",
	}
}

func TestSnapshotBoxes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))

	tracks := []tracker.TrackView{
		trackView(3, false, 20, 40, 80, 180),
		trackView(4, true, 110, 40, 190, 180),
	}

	Snapshot(img, tracks, nil, DefaultSnapshotStyle())

	// left edge of each box
	assert.Equal(t, TrackColor(3), img.RGBAAt(20, 120))
	assert.Equal(t, Red, img.RGBAAt(110, 120))
	// jumping tracks have a thicker outline
	assert.Equal(t, Red, img.RGBAAt(113, 120))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(23, 120))

	// inside of the boxes is untouched
	assert.Equal(t, color.RGBA{}, img.RGBAAt(50, 120))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(150, 120))

	// label background sits above the box
	assert.Equal(t, TrackColor(3), img.RGBAAt(21, 39))
}

func TestSnapshotLabelInsideAtTop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	Snapshot(img, []tracker.TrackView{trackView(0, false, 10, 2, 90, 90)}, nil,
		DefaultSnapshotStyle())

	// no room above so the label is drawn inside the box
	assert.Equal(t, TrackColor(0), img.RGBAAt(12, 18))
}

func TestSnapshotTrail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	trail := tracker.NewTrail(10)

	// centers at (50,50) then (150,50)
	first := trackView(1, false, 40, 40, 60, 60)
	second := trackView(1, false, 140, 40, 160, 60)
	trail.Add(first)
	trail.Add(second)

	style := DefaultSnapshotStyle()
	Snapshot(img, []tracker.TrackView{second}, trail, style)

	// trail segment between the two centers
	assert.Equal(t, style.Trail.LineColor, img.RGBAAt(100, 50))
	// circle on the latest point uses the track color
	assert.Equal(t, TrackColor(1), img.RGBAAt(150, 50))
}

func TestTrackColorWraps(t *testing.T) {
	n := uint64(len(trackColors))
	assert.Equal(t, TrackColor(2), TrackColor(2+n))
}
