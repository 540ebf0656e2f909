package config

import (
	"encoding/json"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the monitor. Fields are loaded from
// a JSON file and may be overridden by MONITOR_* environment variables.
type Config struct {
	Debug bool `json:"debug" env:"MONITOR_DEBUG"`

	// Detection parameters
	CaptureIntervalSeconds float64 `json:"capture_interval_seconds" env:"MONITOR_CAPTURE_INTERVAL"`
	ConfidenceThreshold    float64 `json:"confidence_threshold" env:"MONITOR_CONFIDENCE_THRESHOLD"`
	DetectionEndpoint      string  `json:"detection_endpoint" env:"MONITOR_DETECTION_ENDPOINT"`

	// Exclusion zone persistence
	ZonesPath string `json:"zones_path" env:"MONITOR_ZONES_PATH"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                  false,
		CaptureIntervalSeconds: 1.5,
		ConfidenceThreshold:    0.5,
		DetectionEndpoint:      "http://127.0.0.1:8731",
		ZonesPath:              "excluded_areas.json",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.CaptureIntervalSeconds < 0.1 {
		c.CaptureIntervalSeconds = 1.5
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		c.ConfidenceThreshold = 0.5
	}
	if c.DetectionEndpoint == "" {
		c.DetectionEndpoint = "http://127.0.0.1:8731"
	}
	if c.ZonesPath == "" {
		c.ZonesPath = "excluded_areas.json"
	}
	return nil
}

// Load reads configuration from the given JSON file path, then applies
// environment overrides. A missing file yields DefaultConfig(). On JSON
// error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := env.Parse(cfg); err != nil {
				return cfg, err
			}
			_ = cfg.Validate()
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	if err := env.Parse(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
