package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cyclopcam/logs"
	"github.com/swdee/go-jumptrack"
	"github.com/swdee/go-jumptrack/postprocess"
	"github.com/swdee/go-jumptrack/preprocess"
	"github.com/swdee/go-jumptrack/render"
	"github.com/swdee/go-jumptrack/tracker"
	"gocv.io/x/gocv"
)

// Stream replays the detections of a single video stream through a pipeline
type Stream struct {
	// Name identifies the stream in logs and snapshot file names
	Name     string
	Labels   []string
	Pipeline *jumptrack.Pipeline
	// VideoFile is the optional source video, read one frame per detection
	// line
	VideoFile string
	// OutFile is the optional annotated video output
	OutFile string
	// SnapDir is the optional directory jump snapshots are written to
	SnapDir string
	// ShowDetections draws the unfiltered detections under the tracks
	ShowDetections bool
	// Canvas is the width and height of snapshots when there is no video
	Canvas [2]int
	// ModelSize is the width and height of the letter boxed model input the
	// detections were made on.  Zero means detections are in source frame
	// coordinates
	ModelSize [2]int
	Log       logs.Log
}

// RunFile opens the detections file and runs it
func (s *Stream) RunFile(file string) error {

	f, err := os.Open(file)

	if err != nil {
		return fmt.Errorf("error opening detections file: %w", err)
	}

	defer f.Close()

	return s.Run(f)
}

// Run processes every frame of detections read from r
func (s *Stream) Run(r io.Reader) error {

	dec := postprocess.NewCocoSSDDecoder(r, s.Labels)

	var video *gocv.VideoCapture
	var writer *gocv.VideoWriter
	img := gocv.NewMat()
	defer img.Close()

	if s.VideoFile != "" {
		var err error
		video, err = gocv.VideoCaptureFile(s.VideoFile)

		if err != nil {
			return fmt.Errorf("error opening video: %w", err)
		}

		defer video.Close()
	}

	var letterbox *preprocess.Letterbox

	if s.ModelSize[0] > 0 && s.ModelSize[1] > 0 {
		srcW, srcH := s.Canvas[0], s.Canvas[1]

		if video != nil {
			srcW = int(video.Get(gocv.VideoCaptureFrameWidth))
			srcH = int(video.Get(gocv.VideoCaptureFrameHeight))
		}

		letterbox = preprocess.NewLetterbox(srcW, srcH, s.ModelSize[0], s.ModelSize[1])
	}

	for {
		frame, err := dec.Next()

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		if letterbox != nil {
			letterbox.Apply(frame.Results)
		}

		res := s.Pipeline.Process(frame.Results)

		if video != nil {
			if ok := video.Read(&img); !ok || img.Empty() {
				return fmt.Errorf("video ended before detections at frame %d", res.FrameID)
			}

			if s.ShowDetections {
				render.DetectionBoxes(&img, frame.Results, render.DefaultFont().ScaledFor(img.Rows()), 1)
			}

			render.Trail(&img, res.Tracks, s.Pipeline.Trail(), render.DefaultTrailStyle())
			render.TrackerBoxes(&img, res.Tracks, render.DefaultFont().ScaledFor(img.Rows()), 1)

			if s.OutFile != "" {
				if writer == nil {
					writer, err = gocv.VideoWriterFile(s.OutFile, "mp4v",
						video.Get(gocv.VideoCaptureFPS), img.Cols(), img.Rows(), true)

					if err != nil {
						return fmt.Errorf("error creating video writer: %w", err)
					}

					defer writer.Close()
				}

				if err := writer.Write(img); err != nil {
					return fmt.Errorf("error writing video frame: %w", err)
				}
			}
		}

		if len(res.JumpOnsets) > 0 && s.SnapDir != "" {
			if err := s.snapshot(res, img); err != nil {
				return err
			}
		}
	}
}

// snapshot writes a PNG of the tracks on the frame a jump started.  When
// there is no video frame the tracks are drawn on a blank canvas
func (s *Stream) snapshot(res *tracker.Result, frame gocv.Mat) error {

	var canvas *image.RGBA

	if !frame.Empty() {
		src, err := frame.ToImage()

		if err != nil {
			return fmt.Errorf("error converting video frame: %w", err)
		}

		canvas = image.NewRGBA(src.Bounds())
		draw.Draw(canvas, canvas.Bounds(), src, src.Bounds().Min, draw.Src)

	} else {
		canvas = image.NewRGBA(image.Rect(0, 0, s.Canvas[0], s.Canvas[1]))
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(render.Black), image.Point{}, draw.Src)
	}

	render.Snapshot(canvas, res.Tracks, s.Pipeline.Trail(), render.DefaultSnapshotStyle())

	file := filepath.Join(s.SnapDir, fmt.Sprintf("%s-%06d.png", s.Name, res.FrameID))
	f, err := os.Create(file)

	if err != nil {
		return fmt.Errorf("error creating snapshot: %w", err)
	}

	defer f.Close()

	if err := png.Encode(f, canvas); err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}

	s.Log.Infof("Saved jump snapshot %v", file)
	return nil
}

// streamName derives a stream name from the detections file name
func streamName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
