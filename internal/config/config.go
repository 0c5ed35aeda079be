// Package config handles configuration loading and defaults for the CLI tools.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Built-in defaults applied after the config file and flags.
const (
	DefaultSize    = "600x600"
	DefaultZoom    = 15
	DefaultMapType = "satellite"
	DefaultFormat  = "raw"
	DefaultQuality = 85
	DefaultTimeout = 30 * time.Second
)

// Config represents the root configuration file structure.
type Config struct {
	APIKey   string        `yaml:"api_key,omitempty"`
	Endpoint string        `yaml:"endpoint,omitempty"`
	Size     string        `yaml:"size,omitempty"`
	MapType  string        `yaml:"map_type,omitempty"`
	Format   string        `yaml:"format,omitempty"`
	Zoom     int           `yaml:"zoom,omitempty"`
	Quality  int           `yaml:"quality,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
// An empty path yields an empty Config.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Override copies every non-zero field of o into c.
func (c *Config) Override(o Config) {
	if o.APIKey != "" {
		c.APIKey = o.APIKey
	}
	if o.Endpoint != "" {
		c.Endpoint = o.Endpoint
	}
	if o.Size != "" {
		c.Size = o.Size
	}
	if o.MapType != "" {
		c.MapType = o.MapType
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Zoom > 0 {
		c.Zoom = o.Zoom
	}
	if o.Quality > 0 {
		c.Quality = o.Quality
	}
	if o.Timeout > 0 {
		c.Timeout = o.Timeout
	}
}

// ApplyDefaults fills the fields still unset with built-in defaults.
// Endpoint and APIKey have no defaults.
func (c *Config) ApplyDefaults() {
	if c.Size == "" {
		c.Size = DefaultSize
	}
	if c.Zoom <= 0 {
		c.Zoom = DefaultZoom
	}
	if c.MapType == "" {
		c.MapType = DefaultMapType
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Quality <= 0 {
		c.Quality = DefaultQuality
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}
