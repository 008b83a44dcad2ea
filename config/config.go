// Package config loads the tracker and detection filter settings from a
// YAML file, environment variables and defaults
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/swdee/go-jumptrack/postprocess"
	"github.com/swdee/go-jumptrack/tracker"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// eg: JUMPTRACK_TRACKER_MAX_MISSED
const EnvPrefix = "JUMPTRACK"

// Config holds the complete settings of a tracking pipeline
type Config struct {
	Tracker tracker.Params
	Filter  postprocess.FilterParams
	// TrailSize is the number of points kept in each track's trail
	TrailSize int
}

// Default returns the default settings
func Default() Config {
	return Config{
		Tracker:   tracker.DefaultParams(),
		Filter:    postprocess.DefaultFilterParams(),
		TrailSize: 30,
	}
}

// New returns a viper instance with defaults and environment overrides set
func New() *viper.Viper {
	v := viper.New()
	def := Default()

	v.SetDefault("tracker.jump_threshold", def.Tracker.JumpThreshold)
	v.SetDefault("tracker.noise_tolerance", def.Tracker.NoiseTolerance)
	v.SetDefault("tracker.min_overlap", def.Tracker.MinOverlap)
	v.SetDefault("tracker.max_missed", def.Tracker.MaxMissed)
	v.SetDefault("tracker.trail_size", def.TrailSize)
	v.SetDefault("detect.min_prob", def.Filter.MinProb)
	v.SetDefault("detect.labels", def.Filter.Labels)
	v.SetDefault("detect.min_zone_overlap", def.Filter.MinZoneOverlap)
	v.SetDefault("detect.nms_threshold", def.Filter.NMSThreshold)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the YAML config file at path.  An empty path returns the
// defaults with environment overrides applied
func Load(path string) (Config, error) {
	v := New()

	if err := ReadFile(v, path); err != nil {
		return Config{}, err
	}

	return FromViper(v)
}

// ReadFile merges the YAML config file at path into v.  An empty path does
// nothing
func ReadFile(v *viper.Viper, path string) error {

	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// FromViper builds a Config from the settings held by v
func FromViper(v *viper.Viper) (Config, error) {

	cfg := Config{
		Tracker: tracker.Params{
			JumpThreshold:  v.GetFloat64("tracker.jump_threshold"),
			NoiseTolerance: v.GetFloat64("tracker.noise_tolerance"),
			MinOverlap:     v.GetFloat64("tracker.min_overlap"),
			MaxMissed:      v.GetInt("tracker.max_missed"),
		},
		Filter: postprocess.FilterParams{
			MinProb:        float32(v.GetFloat64("detect.min_prob")),
			Labels:         v.GetStringSlice("detect.labels"),
			MinZoneOverlap: v.GetFloat64("detect.min_zone_overlap"),
			NMSThreshold:   v.GetFloat64("detect.nms_threshold"),
		},
		TrailSize: v.GetInt("tracker.trail_size"),
	}

	zone, err := parseZone(v.Get("detect.zone"))

	if err != nil {
		return Config{}, err
	}

	cfg.Filter.Zone = zone

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings are usable
func (c Config) Validate() error {

	if c.Tracker.JumpThreshold >= 0 {
		return fmt.Errorf("tracker.jump_threshold must be negative, got %v", c.Tracker.JumpThreshold)
	}

	if c.Tracker.NoiseTolerance < 0 {
		return fmt.Errorf("tracker.noise_tolerance must not be negative, got %v", c.Tracker.NoiseTolerance)
	}

	if c.Tracker.MinOverlap < 0 || c.Tracker.MinOverlap >= 1 {
		return fmt.Errorf("tracker.min_overlap must be in the range [0, 1), got %v", c.Tracker.MinOverlap)
	}

	if c.Tracker.MaxMissed < 0 {
		return fmt.Errorf("tracker.max_missed must not be negative, got %v", c.Tracker.MaxMissed)
	}

	if c.TrailSize < 0 {
		return fmt.Errorf("tracker.trail_size must not be negative, got %v", c.TrailSize)
	}

	if c.Filter.NMSThreshold < 0 || c.Filter.NMSThreshold > 1 {
		return fmt.Errorf("detect.nms_threshold must be in the range [0, 1], got %v", c.Filter.NMSThreshold)
	}

	if len(c.Filter.Zone) > 0 && len(c.Filter.Zone) < 3 {
		return fmt.Errorf("detect.zone needs at least 3 points, got %d", len(c.Filter.Zone))
	}

	return nil
}

// parseZone converts the raw detect.zone value, a list of [x, y] pairs,
// into polygon points
func parseZone(raw interface{}) ([][2]float64, error) {

	if raw == nil {
		return nil, nil
	}

	list, ok := raw.([]interface{})

	if !ok {
		return nil, fmt.Errorf("detect.zone must be a list of [x, y] points")
	}

	zone := make([][2]float64, 0, len(list))

	for i, item := range list {
		pair, ok := item.([]interface{})

		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("detect.zone point %d must be an [x, y] pair", i)
		}

		var pt [2]float64

		for k, n := range pair {
			switch val := n.(type) {
			case int:
				pt[k] = float64(val)
			case int64:
				pt[k] = float64(val)
			case float64:
				pt[k] = val
			default:
				return nil, fmt.Errorf("detect.zone point %d has a non numeric coordinate %v", i, n)
			}
		}

		zone = append(zone, pt)
	}

	return zone, nil
}
