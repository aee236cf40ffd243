// Package config loads and saves simulation configuration as YAML and
// carries the compiled-in preset scenarios.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 7.0
	DefaultDuration   = 5600.0
	DefaultHistoryCap = 21
	DefaultLookahead  = 1000
	DefaultAltitude   = 408000.0 // ISS altitude, m
)

type Config struct {
	Integrator string       `yaml:"integrator"`
	Thrust     string       `yaml:"thrust"`
	Dt         float64      `yaml:"dt"`
	Duration   float64      `yaml:"duration"`
	HistoryCap int          `yaml:"history"`
	Lookahead  int          `yaml:"lookahead"`
	Body       BodyConfig   `yaml:"body"`
	Burns      []BurnConfig `yaml:"burns,omitempty"`
}

type BodyConfig struct {
	ID   int     `yaml:"id"`
	Mass float64 `yaml:"mass"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
}

type BurnConfig struct {
	Start   float64 `yaml:"start"`
	Stop    float64 `yaml:"stop"`
	Command string  `yaml:"command"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: "rk4",
		Thrust:     "none",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		HistoryCap: DefaultHistoryCap,
		Lookahead:  DefaultLookahead,
		Body: BodyConfig{
			ID:   1,
			Mass: 1.0,
			X:    0,
			Y:    6.371e6 + DefaultAltitude,
			VX:   8426, // 1.1 × the circular speed band at ISS altitude
			VY:   0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configuration defects before any simulation starts.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %g", c.Duration)
	}
	if c.HistoryCap <= 0 {
		return fmt.Errorf("config: history must be positive, got %d", c.HistoryCap)
	}
	if c.Lookahead <= 0 {
		return fmt.Errorf("config: lookahead must be positive, got %d", c.Lookahead)
	}
	if c.Body.X == 0 && c.Body.Y == 0 {
		return fmt.Errorf("config: body position must not be the origin")
	}
	for _, b := range c.Burns {
		if b.Stop <= b.Start {
			return fmt.Errorf("config: burn window [%g, %g) is empty", b.Start, b.Stop)
		}
		switch b.Command {
		case "prograde", "retrograde":
		default:
			return fmt.Errorf("config: unknown burn command %q", b.Command)
		}
	}
	return nil
}
