package postprocess

import (
	"math"
	"sort"
)

// NMS implements Non-Maximum Suppression on detections of the same class.
// Detections are considered from highest probability down and any detection
// whose IoU with an already kept one of the same class exceeds threshold is
// dropped.  Kept detections are returned in their input order
func NMS(dets []DetectResult, threshold float64) []DetectResult {

	if len(dets) < 2 {
		return dets
	}

	order := make([]int, len(dets))

	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return dets[order[a]].Probability > dets[order[b]].Probability
	})

	suppressed := make([]bool, len(dets))

	for i, n := range order {
		if suppressed[n] {
			continue
		}

		for _, m := range order[i+1:] {
			if suppressed[m] || dets[m].Label != dets[n].Label {
				continue
			}

			if calculateOverlap(dets[n].Box, dets[m].Box) > threshold {
				suppressed[m] = true
			}
		}
	}

	kept := make([]DetectResult, 0, len(dets))

	for i, det := range dets {
		if !suppressed[i] {
			kept = append(kept, det)
		}
	}

	return kept
}

// calculateOverlap works out the Intersection over Union (IoU) value of two
// boxes
func calculateOverlap(a, b BoxRect) float64 {

	w := math.Max(0, math.Min(a.Right, b.Right)-math.Max(a.Left, b.Left))
	h := math.Max(0, math.Min(a.Bottom, b.Bottom)-math.Max(a.Top, b.Top))
	intersection := w * h

	union := (a.Right-a.Left)*(a.Bottom-a.Top) + (b.Right-b.Left)*(b.Bottom-b.Top) - intersection

	if union <= 0 {
		return 0
	}

	return intersection / union
}
