// Package config loads pipeline tuning from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	polymouse "github.com/tphakala/go-polymouse"
)

// DefaultFileName is the config file name used when none is given.
const DefaultFileName = "polymouse.toml"

// Config is the on-disk configuration.
type Config struct {
	Gaze      polymouse.OneEuroParams         `toml:"gaze"`
	Fixation  polymouse.FixationParams        `toml:"fixation"`
	Head      polymouse.Acceleration[float32] `toml:"head"`
	PolyMouse polymouse.PolyMouseParams       `toml:"polymouse"`
	Pipeline  PipelineConfig                  `toml:"pipeline"`
	Logging   LoggingConfig                   `toml:"logging"`
}

// PipelineConfig toggles optional stages.
type PipelineConfig struct {
	GazeFilter       bool `toml:"gaze_filter"`
	Fixation         bool `toml:"fixation"`
	HeadAcceleration bool `toml:"head_acceleration"`
	Feedback         bool `toml:"feedback"`
}

// LoggingConfig defines log verbosity and formatting.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	pc := polymouse.DefaultPipelineConfig()
	return &Config{
		Gaze:      pc.Gaze,
		Fixation:  pc.Fixation,
		Head:      pc.Head,
		PolyMouse: pc.PolyMouse,
		Pipeline: PipelineConfig{
			GazeFilter:       pc.EnableGazeFilter,
			Fixation:         pc.EnableFixation,
			HeadAcceleration: pc.EnableHeadAcceleration,
			Feedback:         true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// PipelineConfig converts the file layout into a pipeline configuration.
func (c *Config) PipelineConfig() polymouse.PipelineConfig {
	return polymouse.PipelineConfig{
		Gaze:                   c.Gaze,
		Fixation:               c.Fixation,
		Head:                   c.Head,
		PolyMouse:              c.PolyMouse,
		EnableGazeFilter:       c.Pipeline.GazeFilter,
		EnableFixation:         c.Pipeline.Fixation,
		EnableHeadAcceleration: c.Pipeline.HeadAcceleration,
	}
}

// Validate checks the pipeline parameters and logging settings.
func (c *Config) Validate() error {
	pc := c.PipelineConfig()
	if err := pc.Validate(); err != nil {
		return err
	}
	if _, err := NormalizeLogLevel(c.Logging.Level); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: unsupported log format %q", polymouse.ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// NormalizeLogLevel lower-cases level and checks it is known.
// An empty level means "info".
func NormalizeLogLevel(level string) (string, error) {
	l := strings.ToLower(strings.TrimSpace(level))
	switch l {
	case "":
		return "info", nil
	case "debug", "info", "warn", "error":
		return l, nil
	default:
		return "", fmt.Errorf("%w: unknown log level %q", polymouse.ErrInvalidConfig, level)
	}
}

// LoadConfig reads configPath. If the file does not exist, the defaults
// are written there and returned.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := SaveConfig(configPath, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	md, err := toml.DecodeFile(configPath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", configPath, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q in %s", polymouse.ErrInvalidConfig, undecoded[0].String(), configPath)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to configPath as TOML, creating parent directories.
func SaveConfig(configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
