// Package config loads game tuning from an optional YAML file
// Missing keys keep their default value; the result converts to engine.Settings
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/juwon-cha/TycoonPlayableAD/engine"
)

// Config models the tuning file
type Config struct {
	Economy EconomyConfig `yaml:"economy"`
	Work    WorkConfig    `yaml:"work"`
	Queue   QueueConfig   `yaml:"queue"`
	Offices OfficeConfig  `yaml:"offices"`
	Engine  EngineConfig  `yaml:"engine"`
	Hold    HoldConfig    `yaml:"hold"`
}

// EconomyConfig holds gold amounts and per-action cost growth
type EconomyConfig struct {
	StartingGold      int64 `yaml:"starting_gold"`
	WorkCost          int64 `yaml:"work_cost"`
	WorkReward        int64 `yaml:"work_reward"`
	UpgradeCost       int64 `yaml:"upgrade_cost"`
	ExpandCost        int64 `yaml:"expand_cost"`
	WorkCostGrowth    int64 `yaml:"work_cost_growth"`
	UpgradeCostGrowth int64 `yaml:"upgrade_cost_growth"`
	ExpandCostGrowth  int64 `yaml:"expand_cost_growth"`
}

// WorkConfig holds the work cycle phase durations
type WorkConfig struct {
	Travel Duration `yaml:"travel"`
	Work   Duration `yaml:"work"`
	Return Duration `yaml:"return"`
}

// QueueConfig holds the waiting line tuning
type QueueConfig struct {
	Size  int      `yaml:"size"`
	Shift Duration `yaml:"shift"`
}

// OfficeConfig holds the expansion limit
type OfficeConfig struct {
	Max int `yaml:"max"`
}

// EngineConfig holds the game loop tuning
type EngineConfig struct {
	Tick Duration `yaml:"tick"`
}

// HoldConfig holds the hold-to-repeat accelerator tuning
type HoldConfig struct {
	InitialInterval Duration `yaml:"initial_interval"`
	MinInterval     Duration `yaml:"min_interval"`
	Acceleration    float64  `yaml:"acceleration"`
	KeyTimeout      Duration `yaml:"key_timeout"`
}

// Duration is a time.Duration written as a Go duration string ("500ms", "2s")
type Duration time.Duration

// UnmarshalYAML parses a duration string
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string: %w", node.Line, err)
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration string
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the stock tuning
func Default() *Config {
	return FromSettings(engine.DefaultSettings())
}

// FromSettings mirrors engine settings into a Config
func FromSettings(s engine.Settings) *Config {
	return &Config{
		Economy: EconomyConfig{
			StartingGold:      s.StartingGold,
			WorkCost:          s.WorkCost,
			WorkReward:        s.WorkReward,
			UpgradeCost:       s.UpgradeCost,
			ExpandCost:        s.ExpandCost,
			WorkCostGrowth:    s.WorkCostGrowth,
			UpgradeCostGrowth: s.UpgradeCostGrowth,
			ExpandCostGrowth:  s.ExpandCostGrowth,
		},
		Work: WorkConfig{
			Travel: Duration(s.TravelDuration),
			Work:   Duration(s.WorkDuration),
			Return: Duration(s.ReturnDuration),
		},
		Queue: QueueConfig{
			Size:  s.QueueSize,
			Shift: Duration(s.QueueShiftDuration),
		},
		Offices: OfficeConfig{Max: s.MaxOffices},
		Engine:  EngineConfig{Tick: Duration(s.TickInterval)},
		Hold: HoldConfig{
			InitialInterval: Duration(s.HoldInitialInterval),
			MinInterval:     Duration(s.HoldMinInterval),
			Acceleration:    s.HoldAcceleration,
			KeyTimeout:      Duration(s.KeyHoldTimeout),
		},
	}
}

// ToSettings converts the config into engine settings
func (c *Config) ToSettings() engine.Settings {
	return engine.Settings{
		StartingGold: c.Economy.StartingGold,
		WorkCost:     c.Economy.WorkCost,
		WorkReward:   c.Economy.WorkReward,
		UpgradeCost:  c.Economy.UpgradeCost,
		ExpandCost:   c.Economy.ExpandCost,

		WorkCostGrowth:    c.Economy.WorkCostGrowth,
		UpgradeCostGrowth: c.Economy.UpgradeCostGrowth,
		ExpandCostGrowth:  c.Economy.ExpandCostGrowth,

		QueueSize:  c.Queue.Size,
		MaxOffices: c.Offices.Max,

		TravelDuration:     time.Duration(c.Work.Travel),
		WorkDuration:       time.Duration(c.Work.Work),
		ReturnDuration:     time.Duration(c.Work.Return),
		QueueShiftDuration: time.Duration(c.Queue.Shift),

		TickInterval: time.Duration(c.Engine.Tick),

		HoldInitialInterval: time.Duration(c.Hold.InitialInterval),
		HoldMinInterval:     time.Duration(c.Hold.MinInterval),
		HoldAcceleration:    c.Hold.Acceleration,
		KeyHoldTimeout:      time.Duration(c.Hold.KeyTimeout),
	}
}

// Validate reports the first setting the world cannot be built from
func (c *Config) Validate() error {
	if err := c.ToSettings().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Parse decodes YAML over the defaults; unknown keys are rejected
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a .yaml or .yml tuning file
// An empty path returns the defaults
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Write encodes the config as YAML
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
