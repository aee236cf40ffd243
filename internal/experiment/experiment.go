// Package experiment wires a config into a ready-to-run simulation: force
// model, integrator, thrust source, and the default metric set.
package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/forces"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
)

type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulator
	source    sim.ThrustSource
}

func New(cfg *config.Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := NewRegistry()

	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	source, err := registry.GetThrustSource(cfg.Thrust, BurnsFromConfig(cfg.Burns))
	if err != nil {
		return nil, err
	}

	model := forces.NewModel()
	simulator, err := sim.New(model, integ, sim.Config{
		Dt:         cfg.Dt,
		HistoryCap: cfg.HistoryCap,
		Lookahead:  cfg.Lookahead,
	})
	if err != nil {
		return nil, err
	}

	simulator.AddMetric(metrics.NewEnergyDrift(model))
	simulator.AddMetric(metrics.NewAngularMomentumDrift(model))
	simulator.AddMetric(metrics.NewRadialRange())

	return &Experiment{cfg: cfg, simulator: simulator, source: source}, nil
}

func (e *Experiment) Simulator() *sim.Simulator { return e.simulator }

// InitialState builds the probe state from the config body block.
func (e *Experiment) InitialState() orbit.State {
	b := e.cfg.Body
	return orbit.State{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY}
}

// Run executes the configured duration and returns the trajectory record.
func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	steps := int(e.cfg.Duration / e.cfg.Dt)
	if steps <= 0 {
		return nil, fmt.Errorf("experiment: duration %g yields no steps at dt %g", e.cfg.Duration, e.cfg.Dt)
	}
	return e.simulator.Run(ctx, e.InitialState(), e.source, steps)
}
