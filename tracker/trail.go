package tracker

import "sync"

// Point represents the x,y coordinates of the center of a tracked bounding box
type Point struct {
	X, Y int
}

// history is the point history of a single track
type history struct {
	points []Point
}

// Trail keeps a history of track center points used for drawing a trail
type Trail struct {
	// size is the maximum number of most recent points to keep in history
	size int
	// history of tracked points by track id
	history map[uint64]*history
	sync.Mutex
}

// NewTrail returns a new trail history instance.  Size is the number of most
// recent points to keep and specifies the maximum length of the trail
func NewTrail(size int) *Trail {
	return &Trail{
		size:    size,
		history: make(map[uint64]*history),
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.Lock()
	defer t.Unlock()

	t.history = make(map[uint64]*history)
}

// Add appends the current center point of a track to its history
func (t *Trail) Add(track TrackView) {
	t.Lock()
	defer t.Unlock()

	h, exists := t.history[track.ID]

	if !exists {
		h = &history{}
		t.history[track.ID] = h
	}

	x, y := track.Rect.Center()

	h.points = append(h.points, Point{
		X: int(x),
		Y: int(y),
	})

	// drop oldest point once history is exceeded
	if len(h.points) > t.size {
		h.points = h.points[1:]
	}
}

// Remove drops the history of a track
func (t *Trail) Remove(id uint64) {
	t.Lock()
	defer t.Unlock()

	delete(t.history, id)
}

// Update adds the tracks of a cycle result and drops the history of removed
// tracks
func (t *Trail) Update(res *Result) {
	for _, id := range res.Removed {
		t.Remove(id)
	}

	for _, track := range res.Tracks {
		// tracks in a grace period have no new position
		if track.Missed > 0 {
			continue
		}
		t.Add(track)
	}
}

// GetPoints gets a copy of the point history for a specific track id
func (t *Trail) GetPoints(id uint64) []Point {
	t.Lock()
	defer t.Unlock()

	h, exists := t.history[id]

	if !exists {
		// no history yet
		return nil
	}

	points := make([]Point, len(h.points))
	copy(points, h.points)

	return points
}

// Len returns the number of tracks with history
func (t *Trail) Len() int {
	t.Lock()
	defer t.Unlock()

	return len(t.history)
}
