package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"
	"github.com/swdee/go-jumptrack"
	"github.com/swdee/go-jumptrack/config"
	"github.com/swdee/go-jumptrack/postprocess"
)

func main() {
	parser := argparse.NewParser("jump", "Track people in object detector output and report when they jump")
	detFiles := parser.StringList("d", "detections", &argparse.Options{Help: "COCO-SSD JSON lines detection file, repeat to process multiple streams", Required: true})
	cfgFile := parser.String("c", "config", &argparse.Options{Help: "YAML config file", Required: false, Default: ""})
	labelFile := parser.String("l", "labels", &argparse.Options{Help: "Model labels file used to resolve class indexes", Required: false, Default: ""})
	vidFile := parser.String("v", "video", &argparse.Options{Help: "Source video the detections were made on, only with a single detections file", Required: false, Default: ""})
	outFile := parser.String("o", "output", &argparse.Options{Help: "Write annotated video to this file, requires --video", Required: false, Default: ""})
	snapDir := parser.String("s", "snapshots", &argparse.Options{Help: "Write a PNG snapshot to this directory on each jump", Required: false, Default: ""})
	maxMissed := parser.Int("m", "maxmissed", &argparse.Options{Help: "Override tracker.max_missed, frames a track survives unmatched", Required: false, Default: -1})
	workers := parser.Int("w", "workers", &argparse.Options{Help: "Number of streams processed in parallel", Required: false, Default: 2})
	width := parser.Int("", "width", &argparse.Options{Help: "Snapshot width when there is no video", Required: false, Default: 640})
	height := parser.Int("", "height", &argparse.Options{Help: "Snapshot height when there is no video", Required: false, Default: 480})
	modelSize := parser.String("", "modelsize", &argparse.Options{Help: "Letter boxed model input size the detections were made at, eg: 300x300", Required: false, Default: ""})
	rawBoxes := parser.Flag("", "rawboxes", &argparse.Options{Help: "Draw the unfiltered detections on the output video", Default: false})
	verbose := parser.Flag("", "verbose", &argparse.Options{Help: "Log track creation and removal", Default: false})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, err := logs.NewLog()
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if *vidFile != "" && len(*detFiles) > 1 {
		logger.Criticalf("--video can only be used with a single detections file")
		os.Exit(1)
	}

	if *outFile != "" && *vidFile == "" {
		logger.Criticalf("--output requires --video")
		os.Exit(1)
	}

	v := config.New()

	if err := config.ReadFile(v, *cfgFile); err != nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}

	if *maxMissed >= 0 {
		v.Set("tracker.max_missed", *maxMissed)
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		logger.Criticalf("Invalid config: %v", err)
		os.Exit(1)
	}

	var labels []string

	if *labelFile != "" {
		labels, err = postprocess.LoadLabels(*labelFile)

		if err != nil {
			logger.Criticalf("Error loading labels: %v", err)
			os.Exit(1)
		}
	}

	if *snapDir != "" {
		if err := os.MkdirAll(*snapDir, 0755); err != nil {
			logger.Criticalf("Error creating snapshot directory: %v", err)
			os.Exit(1)
		}
	}

	var modelDims [2]int

	if *modelSize != "" {
		if _, err := fmt.Sscanf(*modelSize, "%dx%d", &modelDims[0], &modelDims[1]); err != nil {
			logger.Criticalf("Invalid --modelsize %q, expected WIDTHxHEIGHT", *modelSize)
			os.Exit(1)
		}
	}

	if *workers < 1 {
		*workers = 1
	}

	pool := jumptrack.NewPool(*workers, cfg)
	defer pool.Close()

	var wg sync.WaitGroup
	failed := false
	var failMu sync.Mutex

	for _, file := range *detFiles {
		wg.Add(1)

		go func(file string) {
			defer wg.Done()

			pipeline := pool.Get()
			defer pool.Return(pipeline)

			if *verbose {
				pipeline.SetLogger(logger)
			} else {
				pipeline.SetLogger(&onsetLog{Log: logger})
			}

			s := &Stream{
				Name:           streamName(file),
				Labels:         labels,
				Pipeline:       pipeline,
				VideoFile:      *vidFile,
				OutFile:        *outFile,
				SnapDir:        *snapDir,
				ShowDetections: *rawBoxes,
				Canvas:         [2]int{*width, *height},
				ModelSize:      modelDims,
				Log:            logger,
			}

			if err := s.RunFile(file); err != nil {
				logger.Errorf("Stream %v failed: %v", s.Name, err)

				failMu.Lock()
				failed = true
				failMu.Unlock()
				return
			}

			st := pipeline.Stats()
			logger.Infof("Stream %v: %v frames, %v of %v detections accepted, %v tracks, %v jumps",
				s.Name, st.Frames, st.Accepted, st.Detections, st.Tracks, st.Jumps)
		}(file)
	}

	wg.Wait()

	if failed {
		logger.Close()
		os.Exit(1)
	}
}

// onsetLog passes jump onsets through and drops the per track debug noise
type onsetLog struct {
	logs.Log
}

func (l *onsetLog) Debugf(format string, a ...interface{}) {}
