package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dvarchive/dvsrt/internal/dvtime"
)

// Config holds the optional file-based settings. Command-line flags take
// precedence over everything here.
type Config struct {
	// MinOccurrences is the histogram threshold below which a decoded
	// timecode is discarded as noise.
	MinOccurrences int `yaml:"min_occurrences"`

	// Extensions lists the file extensions scanned when the input path is a
	// directory. Matching is case-insensitive.
	Extensions []string `yaml:"extensions"`

	// Debug enables field-by-field header dumps and per-frame traces.
	Debug bool `yaml:"debug"`
}

func Default() *Config {
	return &Config{
		MinOccurrences: dvtime.DefaultMinCount,
		Extensions:     []string{".avi"},
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// a present but malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.MinOccurrences <= 0 {
		c.MinOccurrences = dvtime.DefaultMinCount
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".avi"}
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
}

// MatchesExtension reports whether a file name carries one of the
// configured extensions.
func (c *Config) MatchesExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
