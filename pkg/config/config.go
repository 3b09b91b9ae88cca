// Package config loads the optional YAML configuration file shared by the
// command-line tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultZones are the report zones used when the config file is absent
// or names none.
var DefaultZones = []string{"America/New_York", "Europe/London", "Asia/Tokyo"}

// Config holds the tool configuration.
type Config struct {
	// EphemerisPath locates the VSOP87 Earth data file. Empty falls back
	// to the VSOP87 environment variable, then to the series model.
	EphemerisPath string `yaml:"ephemeris_path,omitempty"`

	// Zones lists IANA zone IDs for the international-times report.
	Zones []string `yaml:"zones,omitempty"`

	// Debug enables development logging.
	Debug bool `yaml:"debug,omitempty"`
}

// Load reads a YAML config file. A missing file is not an error: defaults
// apply.
func Load(filename string) (*Config, error) {
	cfg := &Config{Zones: DefaultZones}
	if filename == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", filename, err)
	}
	if len(cfg.Zones) == 0 {
		cfg.Zones = DefaultZones
	}
	return cfg, nil
}
