package tracker

// TrackStore owns the tracked objects and issues their IDs.  Enumeration
// order is insertion order which gives the row order of the similarity
// matrix for an update cycle
type TrackStore struct {
	// nextID is the ID handed to the next created track
	nextID uint64
	// order of track IDs by insertion
	order  []uint64
	tracks map[uint64]*Track
	// motion classifier settings for new tracks
	threshold float64
	tolerance float64
}

// NewTrackStore returns an empty store whose tracks classify jumps using the
// default threshold and noise tolerance
func NewTrackStore() *TrackStore {
	return newTrackStore(DefaultJumpThreshold, DefaultNoiseTolerance)
}

func newTrackStore(threshold, tolerance float64) *TrackStore {
	return &TrackStore{
		tracks:    make(map[uint64]*Track),
		threshold: threshold,
		tolerance: tolerance,
	}
}

// Create inserts a new track for the bounding box and returns its ID.  IDs
// start at zero and strictly increase for the lifetime of the store
func (s *TrackStore) Create(rect Rect) uint64 {
	id := s.nextID
	s.nextID++

	s.tracks[id] = newTrack(id, rect, s.threshold, s.tolerance)
	s.order = append(s.order, id)

	return id
}

// Update replaces the bounding box of a track.  The motion classifier must
// be fed the displacement before calling Update as the previous box is
// overwritten.  Returns false if the track does not exist
func (s *TrackStore) Update(id uint64, rect Rect) bool {
	track, ok := s.tracks[id]

	if !ok {
		return false
	}

	track.rect = rect
	return true
}

// Remove deletes a track along with its motion state.  Removing an unknown
// ID does nothing
func (s *TrackStore) Remove(id uint64) {
	if _, ok := s.tracks[id]; !ok {
		return
	}

	delete(s.tracks, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// IDs returns the track IDs in insertion order
func (s *TrackStore) IDs() []uint64 {
	ids := make([]uint64, len(s.order))
	copy(ids, s.order)
	return ids
}

// Get returns the track with the given ID
func (s *TrackStore) Get(id uint64) (*Track, bool) {
	track, ok := s.tracks[id]
	return track, ok
}

// Len returns the number of tracks held
func (s *TrackStore) Len() int {
	return len(s.order)
}

// Clear removes all tracks without resetting the ID counter
func (s *TrackStore) Clear() {
	s.order = nil
	s.tracks = make(map[uint64]*Track)
}
