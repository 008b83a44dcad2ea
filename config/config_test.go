package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	file := filepath.Join(t.TempDir(), "jumptrack.yaml")
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))
	return file
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, -100.0, cfg.Tracker.JumpThreshold)
	assert.Equal(t, 5.0, cfg.Tracker.NoiseTolerance)
	assert.Equal(t, float32(0.66), cfg.Filter.MinProb)
	assert.Equal(t, []string{"person"}, cfg.Filter.Labels)
}

func TestLoadFile(t *testing.T) {
	file := writeConfig(t, `
tracker:
  jump_threshold: -80
  noise_tolerance: 3.5
  min_overlap: 0.1
  max_missed: 2
  trail_size: 10
detect:
  min_prob: 0.5
  labels: [person, dog]
  zone: [[0, 0], [640, 0], [640, 480.5], [0, 480]]
  min_zone_overlap: 0.25
  nms_threshold: 0.45
`)

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, -80.0, cfg.Tracker.JumpThreshold)
	assert.Equal(t, 3.5, cfg.Tracker.NoiseTolerance)
	assert.Equal(t, 0.1, cfg.Tracker.MinOverlap)
	assert.Equal(t, 2, cfg.Tracker.MaxMissed)
	assert.Equal(t, 10, cfg.TrailSize)
	assert.Equal(t, float32(0.5), cfg.Filter.MinProb)
	assert.Equal(t, []string{"person", "dog"}, cfg.Filter.Labels)
	assert.Equal(t, [][2]float64{{0, 0}, {640, 0}, {640, 480.5}, {0, 480}}, cfg.Filter.Zone)
	assert.Equal(t, 0.25, cfg.Filter.MinZoneOverlap)
	assert.Equal(t, 0.45, cfg.Filter.NMSThreshold)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("JUMPTRACK_TRACKER_MAX_MISSED", "4")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Tracker.MaxMissed)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"positive threshold": "tracker:\n  jump_threshold: 10\n",
		"overlap too large":  "tracker:\n  min_overlap: 1.5\n",
		"negative missed":    "tracker:\n  max_missed: -1\n",
		"nms out of range":   "detect:\n  nms_threshold: 2\n",
		"short zone":         "detect:\n  zone: [[0, 0], [1, 1]]\n",
		"bad zone point":     "detect:\n  zone: [[0, 0], [1], [2, 2]]\n",
		"zone not a list":    "detect:\n  zone: 5\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
