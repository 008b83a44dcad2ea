package postprocess

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/swdee/go-jumptrack/postprocess/result"
)

// cocoSSDPrediction is a single prediction as output by the TensorFlow.js
// COCO-SSD model, the bbox is [x, y, width, height]
type cocoSSDPrediction struct {
	BBox  []float64 `json:"bbox"`
	Class string    `json:"class"`
	Score float32   `json:"score"`
}

// cocoSSDFrame is one line of a detections file
type cocoSSDFrame struct {
	Frame       *int                `json:"frame"`
	Predictions []cocoSSDPrediction `json:"predictions"`
}

// Frame holds the detections for a single video frame
type Frame struct {
	// Index is the video frame number the detections belong to
	Index int
	// Results are the detections in the order the detector reported them
	Results []DetectResult
}

// CocoSSDDecoder reads a stream of JSON encoded COCO-SSD predictions, one
// JSON object per frame, eg:
//
//	{"frame": 0, "predictions": [{"bbox": [10, 20, 100, 200], "class": "person", "score": 0.91}]}
//
// The frame field is optional and defaults to the position in the stream
type CocoSSDDecoder struct {
	dec *json.Decoder
	// classes maps label names to class index
	classes map[string]int
	// idGen issues detection IDs
	idGen *result.IDGenerator
	// count of frames decoded
	count int
}

// NewCocoSSDDecoder returns a decoder reading from r.  labels are the class
// names the detector was trained on and may be nil
func NewCocoSSDDecoder(r io.Reader, labels []string) *CocoSSDDecoder {
	return &CocoSSDDecoder{
		dec:     json.NewDecoder(r),
		classes: labelIndex(labels),
		idGen:   result.NewIDGenerator(),
	}
}

// Next decodes the next frame.  It returns io.EOF when the stream ends
func (d *CocoSSDDecoder) Next() (Frame, error) {

	var raw cocoSSDFrame

	if err := d.dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("error decoding frame %d: %w", d.count, err)
	}

	frame := Frame{
		Index:   d.count,
		Results: make([]DetectResult, 0, len(raw.Predictions)),
	}

	if raw.Frame != nil {
		frame.Index = *raw.Frame
	}

	for i, p := range raw.Predictions {

		if len(p.BBox) != 4 {
			return Frame{}, fmt.Errorf("frame %d prediction %d: bbox has %d values, expected 4",
				frame.Index, i, len(p.BBox))
		}

		class, ok := d.classes[p.Class]

		if !ok {
			class = -1
		}

		frame.Results = append(frame.Results, DetectResult{
			Class: class,
			Label: p.Class,
			Box: BoxRect{
				Left:   p.BBox[0],
				Top:    p.BBox[1],
				Right:  p.BBox[0] + p.BBox[2],
				Bottom: p.BBox[1] + p.BBox[3],
			},
			Probability: p.Score,
			ID:          d.idGen.GetNext(),
		})
	}

	d.count++

	return frame, nil
}
