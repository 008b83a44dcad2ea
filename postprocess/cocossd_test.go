package postprocess

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCocoSSDDecoder(t *testing.T) {
	input := `{"frame": 4, "predictions": [{"bbox": [10, 20, 100, 200], "class": "person", "score": 0.91}, {"bbox": [0, 0, 5, 5], "class": "kite", "score": 0.7}]}
{"predictions": []}
{"predictions": [{"bbox": [1.5, 2.5, 3, 4], "class": "dog", "score": 0.8}]}
`
	dec := NewCocoSSDDecoder(strings.NewReader(input), []string{"person", "bicycle", "car", "dog"})

	frame, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, 4, frame.Index)
	require.Len(t, frame.Results, 2)

	assert.Equal(t, DetectResult{
		Class:       0,
		Label:       "person",
		Box:         BoxRect{Left: 10, Top: 20, Right: 110, Bottom: 220},
		Probability: 0.91,
		ID:          1,
	}, frame.Results[0])

	assert.Equal(t, -1, frame.Results[1].Class)
	assert.Equal(t, int64(2), frame.Results[1].ID)

	frame, err = dec.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, frame.Index)
	assert.Empty(t, frame.Results)

	frame, err = dec.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, frame.Index)
	require.Len(t, frame.Results, 1)
	assert.Equal(t, 3, frame.Results[0].Class)
	assert.Equal(t, BoxRect{Left: 1.5, Top: 2.5, Right: 4.5, Bottom: 6.5}, frame.Results[0].Box)

	_, err = dec.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestCocoSSDDecoderErrors(t *testing.T) {
	dec := NewCocoSSDDecoder(strings.NewReader(`{"predictions": [{"bbox": [1, 2, 3], "class": "person", "score": 0.9}]}`), nil)

	_, err := dec.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bbox has 3 values")

	dec = NewCocoSSDDecoder(strings.NewReader(`{"predictions": [`), nil)

	_, err = dec.Next()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
