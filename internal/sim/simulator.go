// Package sim drives the per-tick orbit simulation: advance one body by one
// fixed time step, record its trail, and forecast where it would coast.
package sim

import (
	"context"
	"math"

	"github.com/san-kum/orbitsim/internal/forces"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/orbit"
)

type Simulator struct {
	model      *forces.Model
	integrator integrators.Integrator
	cfg        Config
	metrics    []Metric
	observers  []Observer
}

func New(model *forces.Model, integ integrators.Integrator, cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		model:      model,
		integrator: integ,
		cfg:        cfg,
	}, nil
}

func (s *Simulator) Config() Config         { return s.cfg }
func (s *Simulator) Model() *forces.Model   { return s.model }
func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// NewBody constructs a probe whose history capacity matches the simulator.
func (s *Simulator) NewBody(id int, mass float64, initial orbit.State) *orbit.Body {
	return orbit.NewBody(id, mass, initial, s.cfg.HistoryCap)
}

// Advance performs one tick: integrate the body's state under cmd, push the
// new state onto its history, and return both the state and a newest-first
// history snapshot for drawing.
func (s *Simulator) Advance(b *orbit.Body, cmd orbit.ThrustCommand) (orbit.State, []orbit.State, error) {
	next, err := s.integrator.Step(s.model, b.State, cmd, s.cfg.Dt)
	if err != nil {
		return b.State, nil, err
	}
	b.State = next
	b.History.Push(next)
	return next, b.History.Snapshot(), nil
}

// Predict forecasts where the body would coast if thrust were released now:
// Lookahead unthrusted steps from a private copy of from. It never touches
// a Body, so the true simulation state is unaffected.
func (s *Simulator) Predict(from orbit.State) ([]orbit.Point, error) {
	path := make([]orbit.Point, 0, s.cfg.Lookahead)
	cur := from
	for i := 0; i < s.cfg.Lookahead; i++ {
		next, err := s.integrator.Step(s.model, cur, orbit.ThrustNone, s.cfg.Dt)
		if err != nil {
			return path, err
		}
		cur = next
		path = append(path, cur.Position())
	}
	return path, nil
}

// Run drives a body from initial for steps ticks, sampling src each tick,
// and records the full trajectory. Used by the headless CLI commands; the
// live view calls Advance/Predict directly instead.
func (s *Simulator) Run(ctx context.Context, initial orbit.State, src ThrustSource, steps int) (*Result, error) {
	b := s.NewBody(0, 1.0, initial)

	result := &Result{
		States:   make([]orbit.State, 0, steps+1),
		Commands: make([]orbit.ThrustCommand, 0, steps),
		Times:    make([]float64, 0, steps+1),
		Metrics:  make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	result.States = append(result.States, b.State)
	result.Times = append(result.Times, t)
	initialEnergy := s.model.Energy(b.State)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		cmd := src.Command(b.State, t)

		for _, m := range s.metrics {
			m.Observe(b.State, cmd, t)
		}
		for _, o := range s.observers {
			o.OnStep(b.State, cmd, t)
		}

		next, _, err := s.Advance(b, cmd)
		if err != nil {
			return result, &orbit.StepError{Step: i, Time: t, Wrapped: err}
		}
		if !next.IsValid() {
			return result, &orbit.StepError{Step: i, Time: t, Wrapped: orbit.ErrInvalidState}
		}

		t += s.cfg.Dt
		result.StepsTaken++
		result.States = append(result.States, next)
		result.Commands = append(result.Commands, cmd)
		result.Times = append(result.Times, t)
	}

	if initialEnergy != 0 {
		final := s.model.Energy(b.State)
		result.EnergyDrift = math.Abs(final-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
