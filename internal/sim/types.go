package sim

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/orbit"
)

// ThrustSource supplies the discrete thrust command for each tick.
type ThrustSource interface {
	Command(s orbit.State, t float64) orbit.ThrustCommand
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(s orbit.State, cmd orbit.ThrustCommand, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every advanced step.
type Observer interface {
	OnStep(s orbit.State, cmd orbit.ThrustCommand, t float64)
}

// Config holds the fixed per-tick parameters. Dt is a simulated-time
// increment, decoupled from whatever cadence the host loop runs at.
type Config struct {
	Dt         float64
	HistoryCap int
	Lookahead  int
}

func DefaultConfig() Config {
	return Config{
		Dt:         7.0,
		HistoryCap: 21,
		Lookahead:  1000,
	}
}

// Validate rejects configuration defects up front; they are programming
// errors, never discovered mid-simulation.
func (c Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("sim: dt must be positive, got %g", c.Dt)
	}
	if c.HistoryCap <= 0 {
		return fmt.Errorf("sim: history capacity must be positive, got %d", c.HistoryCap)
	}
	if c.Lookahead <= 0 {
		return fmt.Errorf("sim: lookahead must be positive, got %d", c.Lookahead)
	}
	return nil
}

// Result is the record of a headless run.
type Result struct {
	States   []orbit.State
	Commands []orbit.ThrustCommand
	Times    []float64
	Metrics  map[string]float64

	// EnergyDrift is the relative change in specific orbital energy between
	// the first and last state, a conservation check for unthrusted runs.
	EnergyDrift float64
	StepsTaken  int
}
