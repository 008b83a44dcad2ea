package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/swdee/go-jumptrack/tracker"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// SnapshotStyle defines the parameters used when drawing a snapshot overlay
// onto a Go image without OpenCV
type SnapshotStyle struct {
	LineThickness int
	Trail         TrailStyle
	Face          font.Face
	TextColor     color.RGBA
	// Padding placed around label text
	Pad int
}

// DefaultSnapshotStyle returns default snapshot style settings
func DefaultSnapshotStyle() SnapshotStyle {
	return SnapshotStyle{
		LineThickness: 2,
		Trail:         DefaultTrailStyle(),
		Face:          basicfont.Face7x13,
		TextColor:     White,
		Pad:           2,
	}
}

// Snapshot draws the track boxes, labels and trails onto dst.  A nil trail
// skips drawing trails
func Snapshot(dst draw.Image, tracks []tracker.TrackView, trail *tracker.Trail,
	style SnapshotStyle) {

	if trail != nil {
		for _, track := range tracks {
			lineClr, circleClr := style.Trail.trailColors(track)
			drawTrail(dst, trail.GetPoints(track.ID), lineClr, circleClr, style.Trail)
		}
	}

	for _, track := range tracks {
		rect := image.Rect(int(track.Rect.TLX()), int(track.Rect.TLY()),
			int(track.Rect.BRX()), int(track.Rect.BRY()))

		useClr := TrackColor(track.ID)
		thickness := style.LineThickness
		text := fmt.Sprintf("%s %d", track.Label, track.ID)

		if track.IsJumping {
			useClr = Red
			thickness *= 2
			text += " JUMP"
		}

		drawOutline(dst, rect, useClr, thickness)
		drawText(dst, rect, text, useClr, style)
	}
}

// drawOutline draws the border of rect with the given thickness
func drawOutline(dst draw.Image, rect image.Rectangle, clr color.RGBA, thickness int) {

	if thickness < 1 {
		thickness = 1
	}

	src := image.NewUniform(clr)
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+thickness),
		image.Rect(rect.Min.X, rect.Max.Y-thickness, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+thickness, rect.Max.Y),
		image.Rect(rect.Max.X-thickness, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}

	for _, edge := range edges {
		draw.Draw(dst, edge.Intersect(dst.Bounds()), src, image.Point{}, draw.Src)
	}
}

// drawText draws a filled label above the box, or inside the top of the box
// when there is no room above it
func drawText(dst draw.Image, box image.Rectangle, text string, bg color.RGBA,
	style SnapshotStyle) {

	metrics := style.Face.Metrics()
	width := font.MeasureString(style.Face, text).Ceil()
	height := metrics.Height.Ceil()

	top := box.Min.Y - height - 2*style.Pad

	if top < dst.Bounds().Min.Y {
		top = box.Min.Y
	}

	label := image.Rect(box.Min.X, top, box.Min.X+width+2*style.Pad, top+height+2*style.Pad)
	draw.Draw(dst, label.Intersect(dst.Bounds()), image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(style.TextColor),
		Face: style.Face,
		Dot:  fixed.P(label.Min.X+style.Pad, label.Min.Y+style.Pad+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)
}

// drawTrail draws the trail line segments and a circle on the most recent
// point
func drawTrail(dst draw.Image, points []tracker.Point, lineClr, circleClr color.RGBA,
	style TrailStyle) {

	if len(points) < 2 {
		return
	}

	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	half := float32(math.Max(float64(style.LineThickness), 1)) / 2

	for i := 1; i < len(points); i++ {
		segment(z, b.Min, points[i-1], points[i], half)
	}

	z.Draw(dst, b, image.NewUniform(lineClr), image.Point{})

	last := points[len(points)-1]
	z.Reset(b.Dx(), b.Dy())
	circle(z, b.Min, last, float32(style.CircleRadius))
	z.Draw(dst, b, image.NewUniform(circleClr), image.Point{})
}

// segment adds a line from a to b of width 2*half to the rasterizer path
func segment(z *vector.Rasterizer, origin image.Point, a, b tracker.Point, half float32) {

	ax, ay := float32(a.X-origin.X)+0.5, float32(a.Y-origin.Y)+0.5
	bx, by := float32(b.X-origin.X)+0.5, float32(b.Y-origin.Y)+0.5

	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))

	if length == 0 {
		return
	}

	// normal to the segment scaled to half the line width
	nx, ny := -dy/length*half, dx/length*half

	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}

// circle adds a polygon approximating a circle to the rasterizer path
func circle(z *vector.Rasterizer, origin image.Point, c tracker.Point, radius float32) {

	if radius <= 0 {
		return
	}

	const sides = 16

	cx, cy := float32(c.X-origin.X)+0.5, float32(c.Y-origin.Y)+0.5

	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / sides
		x := cx + radius*float32(math.Cos(a))
		y := cy + radius*float32(math.Sin(a))

		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}

	z.ClosePath()
}
