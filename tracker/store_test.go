package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackStoreCreate(t *testing.T) {
	s := NewTrackStore()

	id := s.Create(NewRect(0, 0, 10, 10))
	assert.Equal(t, uint64(0), id)

	track, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, NewRect(0, 0, 10, 10), track.GetRect())
	assert.Zero(t, track.Motion().Accumulator())
	assert.Equal(t, Idle, track.Motion().State())
	assert.False(t, track.IsJumping())
}

func TestTrackStoreIDsMonotonic(t *testing.T) {
	s := NewTrackStore()

	var last uint64
	for i := 0; i < 50; i++ {
		id := s.Create(NewRect(0, 0, 1, 1))
		if i > 0 {
			assert.Greater(t, id, last)
		}
		last = id

		// removal never frees an id for reuse
		if i%3 == 0 {
			s.Remove(id)
		}
	}

	s.Clear()
	assert.Equal(t, uint64(50), s.Create(NewRect(0, 0, 1, 1)))
}

func TestTrackStoreOrder(t *testing.T) {
	s := NewTrackStore()

	for i := 0; i < 5; i++ {
		s.Create(NewRect(float64(i), 0, float64(i)+1, 1))
	}

	s.Remove(2)
	s.Create(NewRect(0, 0, 1, 1))

	assert.Equal(t, []uint64{0, 1, 3, 4, 5}, s.IDs())
	assert.Equal(t, 5, s.Len())

	// caller cannot alter the store through the returned slice
	ids := s.IDs()
	ids[0] = 99
	assert.Equal(t, uint64(0), s.IDs()[0])
}

func TestTrackStoreRemoveIdempotent(t *testing.T) {
	s := NewTrackStore()
	id := s.Create(NewRect(0, 0, 1, 1))

	s.Remove(id)
	s.Remove(id)
	s.Remove(1234)

	_, ok := s.Get(id)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.IDs())
}

func TestTrackStoreUpdate(t *testing.T) {
	s := NewTrackStore()
	id := s.Create(NewRect(0, 0, 10, 10))

	assert.True(t, s.Update(id, NewRect(1, 1, 11, 11)))

	track, _ := s.Get(id)
	assert.Equal(t, NewRect(1, 1, 11, 11), track.GetRect())

	assert.False(t, s.Update(99, NewRect(0, 0, 1, 1)))
}
