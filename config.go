package grasp

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRotateKey = KeyShift
	DefaultTPS       = 60
	DefaultLogLevel  = "info"
)

// Config holds engine-wide defaults applied to Options fields left at their
// zero value, plus settings for the driver and CLI. It is loaded from YAML.
type Config struct {
	RotateKey   string       `yaml:"rotate_key"`
	ScaleKey    string       `yaml:"scale_key"`
	SingleTouch bool         `yaml:"single_touch"`
	MinScale    float64      `yaml:"min_scale"`
	MaxScale    float64      `yaml:"max_scale"`
	TPS         int          `yaml:"tps"`
	LogLevel    string       `yaml:"log_level"`
	Window      WindowConfig `yaml:"window"`
}

// WindowConfig sizes the driver's window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		RotateKey: string(DefaultRotateKey),
		ScaleKey:  string(KeyDisabled),
		MinScale:  DefaultMinScale,
		MaxScale:  DefaultMaxScale,
		TPS:       DefaultTPS,
		LogLevel:  DefaultLogLevel,
		Window: WindowConfig{
			Title:  "grasp",
			Width:  640,
			Height: 480,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.MinScale <= 0 || c.MaxScale < c.MinScale {
		return fmt.Errorf("config: scale range [%v, %v]: %w", c.MinScale, c.MaxScale, ErrInvalidScaleRange)
	}
	if c.TPS < 0 {
		return fmt.Errorf("config: tps %d must not be negative", c.TPS)
	}
	if c.rotateKey() == KeyDisabled && c.scaleKey() == KeyDisabled {
		return fmt.Errorf("config: %w", ErrKeysDisabled)
	}
	return nil
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RotateKey == "" {
		c.RotateKey = d.RotateKey
	}
	if c.ScaleKey == "" {
		c.ScaleKey = d.ScaleKey
	}
	if c.MinScale == 0 {
		c.MinScale = d.MinScale
	}
	if c.MaxScale == 0 {
		c.MaxScale = d.MaxScale
	}
	if c.TPS == 0 {
		c.TPS = d.TPS
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Window.Width == 0 || c.Window.Height == 0 {
		c.Window.Width, c.Window.Height = d.Window.Width, d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	return c
}

func (c Config) rotateKey() Key {
	return parseKeyOption(c.RotateKey, DefaultRotateKey)
}

func (c Config) scaleKey() Key {
	return parseKeyOption(c.ScaleKey, KeyDisabled)
}

// parseKeyOption maps a config string to a Key. "none", "false", "off" and
// "disabled" turn the key off.
func parseKeyOption(s string, def Key) Key {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def
	case "none", "false", "off", "disabled":
		return KeyDisabled
	}
	return Key(strings.TrimSpace(s))
}
