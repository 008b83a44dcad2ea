package postprocess

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
)

const (
	// DefaultMinProb is the confidence a detection must exceed
	DefaultMinProb = 0.66
	// DefaultMinZoneOverlap is the fraction of a detection box that must lie
	// inside the zone polygon
	DefaultMinZoneOverlap = 0.5

	// zoneScale converts pixel coordinates to clipper integer coordinates
	// with sub pixel precision
	zoneScale = 16
)

// FilterParams defines which detections are passed on to the tracker
type FilterParams struct {
	// MinProb is the confidence a detection must be greater than
	MinProb float32
	// Labels restricts detections to these class names, empty allows all
	Labels []string
	// Zone is an optional region of interest polygon as x,y points
	Zone [][2]float64
	// MinZoneOverlap is the fraction of a detection box area that must be
	// inside Zone
	MinZoneOverlap float64
	// NMSThreshold suppresses overlapping detections of the same class
	// whose IoU exceeds it.  Zero disables suppression
	NMSThreshold float64
}

// DefaultFilterParams returns a filter allowing confident person detections
func DefaultFilterParams() FilterParams {
	return FilterParams{
		MinProb:        DefaultMinProb,
		Labels:         []string{"person"},
		MinZoneOverlap: DefaultMinZoneOverlap,
	}
}

// Filter discards detections the tracker should not see.  The tracker
// assumes its input is filtered by class and confidence and has well formed
// boxes
type Filter struct {
	params FilterParams
	labels map[string]bool
	zone   clipper.Path
}

// NewFilter returns a detection filter for the given params
func NewFilter(params FilterParams) *Filter {

	f := &Filter{
		params: params,
		labels: make(map[string]bool, len(params.Labels)),
	}

	for _, l := range params.Labels {
		f.labels[l] = true
	}

	if len(params.Zone) >= 3 {
		for _, pt := range params.Zone {
			f.zone = append(f.zone, toIntPoint(pt[0], pt[1]))
		}
	}

	return f
}

// Apply returns the detections that pass the filter, preserving order
func (f *Filter) Apply(dets []DetectResult) []DetectResult {

	out := make([]DetectResult, 0, len(dets))

	for _, det := range dets {
		if f.Accept(det) {
			out = append(out, det)
		}
	}

	if f.params.NMSThreshold > 0 {
		out = NMS(out, f.params.NMSThreshold)
	}

	return out
}

// Accept reports whether a single detection passes the filter
func (f *Filter) Accept(det DetectResult) bool {

	if det.Probability <= f.params.MinProb {
		return false
	}

	if len(f.labels) > 0 && !f.labels[det.Label] {
		return false
	}

	if !validBox(det.Box) {
		return false
	}

	if f.zone != nil && f.zoneOverlap(det.Box) < f.params.MinZoneOverlap {
		return false
	}

	return true
}

// zoneOverlap returns the fraction of the box area inside the zone polygon
func (f *Filter) zoneOverlap(box BoxRect) float64 {

	boxPath := clipper.Path{
		toIntPoint(box.Left, box.Top),
		toIntPoint(box.Right, box.Top),
		toIntPoint(box.Right, box.Bottom),
		toIntPoint(box.Left, box.Bottom),
	}

	boxArea := pathArea(boxPath)

	if boxArea <= 0 {
		return 0
	}

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPath(boxPath, clipper.PtSubject, true)
	c.AddPath(f.zone, clipper.PtClip, true)

	solution, ok := c.Execute1(clipper.CtIntersection, clipper.PftNonZero, clipper.PftNonZero)

	if !ok {
		return 0
	}

	inside := 0.0

	for _, path := range solution {
		inside += pathArea(path)
	}

	return inside / boxArea
}

// validBox checks the coordinates are finite and not inverted
func validBox(box BoxRect) bool {
	for _, v := range []float64{box.Left, box.Top, box.Right, box.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return box.Left <= box.Right && box.Top <= box.Bottom
}

func toIntPoint(x, y float64) *clipper.IntPoint {
	return &clipper.IntPoint{
		X: clipper.CInt(math.Round(x * zoneScale)),
		Y: clipper.CInt(math.Round(y * zoneScale)),
	}
}

// pathArea returns the unsigned area of a closed path using the shoelace
// formula, in pixel units
func pathArea(path clipper.Path) float64 {

	if len(path) < 3 {
		return 0
	}

	var sum float64

	for i := range path {
		j := (i + 1) % len(path)
		sum += float64(path[i].X)*float64(path[j].Y) - float64(path[j].X)*float64(path[i].Y)
	}

	return math.Abs(sum) / 2 / (zoneScale * zoneScale)
}
