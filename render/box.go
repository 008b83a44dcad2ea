package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/swdee/go-jumptrack/postprocess"
	"github.com/swdee/go-jumptrack/tracker"
	"gocv.io/x/gocv"
)

// boxLabel is a precalculated label drawn after all boxes
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// newBoxLabel calculates the placement of a text label on top of a box
func newBoxLabel(box image.Rectangle, text string, clr color.RGBA, font Font,
	lineThickness int) boxLabel {

	textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

	// Calculate the alignment of text label
	var centerX int

	switch font.Alignment {
	case Center:
		centerX = (box.Min.X + box.Max.X) / 2

	case Right:
		centerX = box.Max.X - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

	case Left:
		fallthrough
	default:
		centerX = box.Min.X + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
	}

	return boxLabel{
		rect: image.Rect(centerX-textSize.X/2-font.LeftPad,
			box.Min.Y-textSize.Y-font.TopPad-font.BottomPad,
			centerX+textSize.X/2+font.RightPad, box.Min.Y),
		clr:     clr,
		text:    text,
		textPos: image.Pt(centerX-textSize.X/2, box.Min.Y-font.BottomPad),
	}
}

// drawLabels draws the precalculated box labels so they are the top most
// layer on the image
func drawLabels(img *gocv.Mat, labels []boxLabel, font Font) {
	for _, box := range labels {
		// draw box text gets written on
		gocv.Rectangle(img, box.rect, box.clr, -1)

		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

// DetectionBoxes renders the bounding boxes around the objects detected
func DetectionBoxes(img *gocv.Mat, detectResults []postprocess.DetectResult,
	font Font, lineThickness int) {

	labels := make([]boxLabel, 0, len(detectResults))

	for i, det := range detectResults {

		useClr := trackColors[i%len(trackColors)]

		rect := image.Rect(int(det.Box.Left), int(det.Box.Top),
			int(det.Box.Right), int(det.Box.Bottom))
		gocv.Rectangle(img, rect, useClr, lineThickness)

		text := fmt.Sprintf("%s %.2f", det.Label, det.Probability)
		labels = append(labels, newBoxLabel(rect, text, useClr, font, lineThickness))
	}

	drawLabels(img, labels, font)
}

// TrackerBoxes renders the bounding boxes of the tracks.  Jumping tracks
// are painted red with a thicker outline
func TrackerBoxes(img *gocv.Mat, tracks []tracker.TrackView, font Font,
	lineThickness int) {

	labels := make([]boxLabel, 0, len(tracks))

	for _, track := range tracks {

		rect := image.Rect(int(track.Rect.TLX()), int(track.Rect.TLY()),
			int(track.Rect.BRX()), int(track.Rect.BRY()))

		useClr := TrackColor(track.ID)
		thickness := lineThickness
		text := fmt.Sprintf("%s %d", track.Label, track.ID)

		if track.IsJumping {
			useClr = Red
			thickness = lineThickness * 2
			text += " JUMP"
		}

		gocv.Rectangle(img, rect, useClr, thickness)
		labels = append(labels, newBoxLabel(rect, text, useClr, font, thickness))
	}

	drawLabels(img, labels, font)
}
