package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	toast "github.com/Ultrajackstr/tea-toast"
)

// Config controls the demo's toast appearance.
type Config struct {
	Anchor struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"anchor"`
	Direction   string            `yaml:"direction"`
	AlignToEnd  bool              `yaml:"alignToEnd"`
	Duration    string            `yaml:"duration"`
	ProgressBar ProgressBarConfig `yaml:"progressBar"`
}

// ProgressBarConfig configures the countdown bar.
type ProgressBarConfig struct {
	Color        string `yaml:"color"`
	Width        int    `yaml:"width"`
	OutlineColor string `yaml:"outlineColor"`
}

// DefaultConfig returns the demo defaults: toasts stack top-down from
// just inside the top-left corner and live for five seconds.
func DefaultConfig() *Config {
	cfg := &Config{
		Direction: "top-down",
		Duration:  "5s",
		ProgressBar: ProgressBarConfig{
			Color:        string(toast.DefaultProgressColor),
			Width:        1,
			OutlineColor: string(toast.DefaultProgressOutlineColor),
		},
	}
	cfg.Anchor.X = 2
	cfg.Anchor.Y = 1
	return cfg
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseDirection maps the config string to a stack direction.
func (c *Config) ParseDirection() (toast.Direction, error) {
	switch c.Direction {
	case "top-down":
		return toast.TopDown, nil
	case "bottom-up":
		return toast.BottomUp, nil
	case "left-to-right":
		return toast.LeftToRight, nil
	case "right-to-left":
		return toast.RightToLeft, nil
	default:
		return 0, fmt.Errorf("unknown direction: %q", c.Direction)
	}
}

// ParseDuration returns the configured toast lifetime.
func (c *Config) ParseDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", c.Duration, err)
	}
	return d, nil
}

// Build assembles a toast registry from the config.
func (c *Config) Build() (*toast.Toasts, error) {
	dir, err := c.ParseDirection()
	if err != nil {
		return nil, err
	}
	return toast.New().
		Anchor(c.Anchor.X, c.Anchor.Y).
		Direction(dir).
		AlignToEnd(c.AlignToEnd).
		ProgressBar(
			lipgloss.Color(c.ProgressBar.Color),
			c.ProgressBar.Width,
			lipgloss.Color(c.ProgressBar.OutlineColor),
		), nil
}
