package tracker

import (
	"math"
)

// Tlwh (top, left, width, height) represents a 1x4 matrix
type Tlwh [4]float64

// Tlbr (x min, y min, x max, y max) represents a 1x4 matrix
type Tlbr [4]float64

// Rect is an axis aligned bounding box in frame pixel space.  It is a value
// type, a new Rect replaces the old one rather than being modified
type Rect struct {
	Tlbr Tlbr
}

// NewRect creates a new Rect from its corner coordinates
func NewRect(xMin, yMin, xMax, yMax float64) Rect {
	return Rect{
		Tlbr: Tlbr{xMin, yMin, xMax, yMax},
	}
}

// GenerateRectByTlwh creates a Rect from Tlwh (top, left, width, height) format
func GenerateRectByTlwh(tlwh Tlwh) Rect {
	return NewRect(tlwh[0], tlwh[1], tlwh[0]+tlwh[2], tlwh[1]+tlwh[3])
}

// TLX returns the top-left x coordinate of the rectangle
func (r Rect) TLX() float64 {
	return r.Tlbr[0]
}

// TLY returns the top-left y coordinate of the rectangle
func (r Rect) TLY() float64 {
	return r.Tlbr[1]
}

// BRX returns the bottom-right x coordinate of the rectangle
func (r Rect) BRX() float64 {
	return r.Tlbr[2]
}

// BRY returns the bottom-right y coordinate of the rectangle
func (r Rect) BRY() float64 {
	return r.Tlbr[3]
}

// Width returns the width of the rectangle
func (r Rect) Width() float64 {
	return r.Tlbr[2] - r.Tlbr[0]
}

// Height returns the height of the rectangle
func (r Rect) Height() float64 {
	return r.Tlbr[3] - r.Tlbr[1]
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Center returns the center point of the rectangle
func (r Rect) Center() (float64, float64) {
	return (r.Tlbr[0] + r.Tlbr[2]) / 2, (r.Tlbr[1] + r.Tlbr[3]) / 2
}

// GetTlwh converts the rectangle to Tlwh (top, left, width, height) format
func (r Rect) GetTlwh() Tlwh {
	return Tlwh{r.Tlbr[0], r.Tlbr[1], r.Width(), r.Height()}
}

// IsValid reports whether all coordinates are finite and the corners are
// not inverted
func (r Rect) IsValid() bool {
	for _, v := range r.Tlbr {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return r.Tlbr[0] <= r.Tlbr[2] && r.Tlbr[1] <= r.Tlbr[3]
}

// CalcIoU calculates the Intersection over Union (IoU) with another rectangle
func (r Rect) CalcIoU(other Rect) float64 {
	return CalcIoU(r, other)
}

// CalcIoU returns the intersection over union of two rectangles in the
// range [0, 1].  Disjoint, touching and zero area rectangles return 0
func CalcIoU(a, b Rect) float64 {

	iw := math.Min(a.Tlbr[2], b.Tlbr[2]) - math.Max(a.Tlbr[0], b.Tlbr[0])

	if iw <= 0 {
		return 0
	}

	ih := math.Min(a.Tlbr[3], b.Tlbr[3]) - math.Max(a.Tlbr[1], b.Tlbr[1])

	if ih <= 0 {
		return 0
	}

	inter := iw * ih
	ua := a.Area() + b.Area() - inter

	if ua <= 0 {
		return 0
	}

	return inter / ua
}
