package render

import (
	"image"
	"image/color"

	"github.com/swdee/go-jumptrack/tracker"
	"gocv.io/x/gocv"
)

// TrailStyle defines the parameters used for rendering the trail style
type TrailStyle struct {
	// LineSame defines if the color of the trail line should be the
	// same color as that of the bounding box.  If set to false then use
	// the color specified at LineColor
	LineSame      bool
	LineColor     color.RGBA
	LineThickness int
	// CircleSame defines if the color of the midpoint circle should be the
	// same color as that of the bounding box.  If set to false then use
	// the color specified at CircleColor
	CircleSame   bool
	CircleColor  color.RGBA
	CircleRadius int
}

// DefaultTrailStyle returns default trail style settings
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineSame:      false,
		LineColor:     Yellow,
		LineThickness: 1,
		CircleSame:    true,
		CircleColor:   Pink,
		CircleRadius:  3,
	}
}

// trailColors returns the line and circle colors of a track's trail
func (s TrailStyle) trailColors(track tracker.TrackView) (color.RGBA, color.RGBA) {

	objClr := TrackColor(track.ID)

	if track.IsJumping {
		objClr = Red
	}

	lineClr := objClr
	circleClr := objClr

	if !s.LineSame {
		lineClr = s.LineColor
	}

	if !s.CircleSame {
		circleClr = s.CircleColor
	}

	return lineClr, circleClr
}

// Trail draws the tracker trail lines on the source image
func Trail(img *gocv.Mat, tracks []tracker.TrackView, trail *tracker.Trail,
	style TrailStyle) {

	for _, track := range tracks {

		lineClr, circleClr := style.trailColors(track)
		points := trail.GetPoints(track.ID)

		if len(points) < 2 {
			continue
		}

		for i := 1; i < len(points); i++ {
			gocv.Line(img,
				image.Pt(points[i-1].X, points[i-1].Y),
				image.Pt(points[i].X, points[i].Y),
				lineClr, style.LineThickness,
			)
		}

		// draw center point circle on current rect/box
		last := points[len(points)-1]
		gocv.Circle(img, image.Pt(last.X, last.Y), style.CircleRadius, circleClr, -1)
	}
}
