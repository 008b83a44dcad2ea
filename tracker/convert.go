package tracker

import "github.com/swdee/go-jumptrack/postprocess"

// DetectionsToObjects takes the detector adapter results and converts them
// into tracker objects
func DetectionsToObjects(dets []postprocess.DetectResult) []Object {

	objs := make([]Object, 0, len(dets))

	for _, det := range dets {
		objs = append(objs, Object{
			Rect:  NewRect(det.Box.Left, det.Box.Top, det.Box.Right, det.Box.Bottom),
			Label: det.Label,
			Prob:  det.Probability,
			ID:    det.ID,
		})
	}

	return objs
}
