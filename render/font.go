package render

import (
	"image/color"

	"gocv.io/x/gocv"
)

// Alignment of a text label relative to its bounding box
type Alignment int

const (
	Left   Alignment = 1
	Center Alignment = 2
	Right  Alignment = 3
)

// baseFrameHeight is the frame height DefaultFont is sized for
const baseFrameHeight = 480

// Font defines the parameters for rendering label text on a video frame
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding around the label text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
	Alignment Alignment
}

// DefaultFont returns font settings sized for a 480 pixel high frame
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		RightPad:  4,
		TopPad:    4,
		BottomPad: 6,
		Alignment: Left,
	}
}

// ScaledFor returns a copy of the font scaled so labels keep the same
// proportion of the frame at other resolutions.  Frames at or below 480
// pixels high use the font unchanged
func (f Font) ScaledFor(frameHeight int) Font {

	if frameHeight <= baseFrameHeight {
		return f
	}

	factor := float64(frameHeight) / baseFrameHeight
	scaleInt := func(v int) int {
		return int(float64(v)*factor + 0.5)
	}

	f.Scale *= factor
	f.Thickness = scaleInt(f.Thickness)
	f.LeftPad = scaleInt(f.LeftPad)
	f.RightPad = scaleInt(f.RightPad)
	f.TopPad = scaleInt(f.TopPad)
	f.BottomPad = scaleInt(f.BottomPad)

	return f
}
