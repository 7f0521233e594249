package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Export ExportConfig `toml:"export"`
	Fetch  FetchConfig  `toml:"fetch"`
}

// ExportConfig controls where and how export files are written.
type ExportConfig struct {
	OutputDir       string `toml:"output_dir"`
	MarkdownHeading string `toml:"markdown_heading"`
}

// FetchConfig controls the playlist extraction.
type FetchConfig struct {
	Timeout string `toml:"timeout"`
	Install bool   `toml:"install"`
}

// TimeoutDuration parses [FetchConfig.Timeout]. An empty value means no timeout and returns 0.
func (f FetchConfig) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(f.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(f.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: fetch.timeout %q: %v", ErrInvalidConfig, f.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: fetch.timeout must not be negative", ErrInvalidConfig)
	}
	return d, nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their values from [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if _, err := config.Fetch.TimeoutDuration(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfigOrDefault loads the config at path, or returns [DefaultConfig] when the file does not exist.
func LoadConfigOrDefault(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return config, err
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}
