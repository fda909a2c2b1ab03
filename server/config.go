package server

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the HTTP service settings. Zero fields fall back to
// DefaultConfig values in New.
type Config struct {
	Addr    string `yaml:"addr"`
	DataDir string `yaml:"data_dir"`
	CSVFile string `yaml:"csv_file"`
	Version string `yaml:"-"`

	// AllowOrigin is sent as Access-Control-Allow-Origin.
	AllowOrigin string `yaml:"allow_origin"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
	// MaxGridSize caps each dimension of generated and submitted grids.
	MaxGridSize int `yaml:"max_grid_size"`
	// MaxExpansions caps every search run by the API; 0 means no cap.
	MaxExpansions int `yaml:"max_expansions"`
	// Parallel bounds concurrent searches within one /compare call.
	Parallel int `yaml:"parallel"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig listens on :5000 and logs to ./data/heuristic_data.csv.
func DefaultConfig() Config {
	return Config{
		Addr:            ":5000",
		DataDir:         "data",
		CSVFile:         "heuristic_data.csv",
		Version:         "dev",
		AllowOrigin:     "*",
		MaxBodyBytes:    8 << 20,
		MaxGridSize:     500,
		Parallel:        4,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    60 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("server: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("server: parse config: %w", err)
	}

	return cfg, nil
}

// CSVPath is where the comparison log lives.
func (c Config) CSVPath() string {
	return filepath.Join(c.DataDir, c.CSVFile)
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if c.CSVFile == "" {
		c.CSVFile = d.CSVFile
	}
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.AllowOrigin == "" {
		c.AllowOrigin = d.AllowOrigin
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = d.MaxBodyBytes
	}
	if c.MaxGridSize <= 0 {
		c.MaxGridSize = d.MaxGridSize
	}
	if c.Parallel <= 0 {
		c.Parallel = d.Parallel
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}

	return c
}
