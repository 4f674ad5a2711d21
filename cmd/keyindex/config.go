package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bsm/keyindex"
	"gopkg.in/yaml.v3"
)

// Record values are u16, so no table needs more slots than this.
const maxSlotLimit = 1 << 16

// config holds run settings, loaded from an optional YAML file and
// overridden by explicitly set flags.
type config struct {
	Dir      string `yaml:"dir,omitempty"`
	MaxSlots int    `yaml:"max_slots,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

func defaultConfig() *config {
	return &config{
		Dir:      ".",
		MaxSlots: keyindex.DefaultMaxSlots,
		LogLevel: "info",
	}
}

// loadConfig reads a YAML config file on top of the defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-specified config path
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.Dir == "" {
		return errors.New("dir is required")
	}
	if c.MaxSlots < 1 || c.MaxSlots > maxSlotLimit {
		return fmt.Errorf("max_slots must be between 1 and %d, got %d", maxSlotLimit, c.MaxSlots)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *config) level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
}

func (c *config) decoderOptions() *keyindex.DecoderOptions {
	return &keyindex.DecoderOptions{MaxSlots: c.MaxSlots}
}
