// Package metrics accumulates per-run orbital quantities through the
// simulator's Metric interface.
package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/forces"
	"github.com/san-kum/orbitsim/internal/orbit"
)

// EnergyDrift tracks the maximum relative deviation of specific orbital
// energy from its initial value. Near zero for unthrusted RK4 runs.
type EnergyDrift struct {
	model    *forces.Model
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(model *forces.Model) *EnergyDrift {
	return &EnergyDrift{model: model}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s orbit.State, cmd orbit.ThrustCommand, t float64) {
	energy := e.model.Energy(s)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// AngularMomentumDrift tracks the maximum relative deviation of specific
// angular momentum from its initial value.
type AngularMomentumDrift struct {
	model    *forces.Model
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift(model *forces.Model) *AngularMomentumDrift {
	return &AngularMomentumDrift{model: model}
}

func (a *AngularMomentumDrift) Name() string { return "angular_momentum_drift" }

func (a *AngularMomentumDrift) Observe(s orbit.State, cmd orbit.ThrustCommand, t float64) {
	h := a.model.AngularMomentum(s)
	if a.samples == 0 {
		a.initial = h
	}
	a.samples++

	if a.initial != 0 {
		drift := math.Abs(h-a.initial) / math.Abs(a.initial)
		a.maxDrift = math.Max(a.maxDrift, drift)
	}
}

func (a *AngularMomentumDrift) Value() float64 { return a.maxDrift }

func (a *AngularMomentumDrift) Reset() {
	a.initial = 0
	a.maxDrift = 0
	a.samples = 0
}

// RadialRange records the span between the lowest and highest radius seen,
// relative to the initial radius. Zero for a perfect circular orbit.
type RadialRange struct {
	initial float64
	min     float64
	max     float64
	samples int
}

func NewRadialRange() *RadialRange {
	return &RadialRange{}
}

func (r *RadialRange) Name() string { return "radial_range" }

func (r *RadialRange) Observe(s orbit.State, cmd orbit.ThrustCommand, t float64) {
	radius := s.Radius()
	if r.samples == 0 {
		r.initial = radius
		r.min = radius
		r.max = radius
	}
	r.samples++
	r.min = math.Min(r.min, radius)
	r.max = math.Max(r.max, radius)
}

func (r *RadialRange) Value() float64 {
	if r.samples == 0 || r.initial == 0 {
		return 0
	}
	return (r.max - r.min) / r.initial
}

func (r *RadialRange) Reset() {
	r.initial = 0
	r.min = 0
	r.max = 0
	r.samples = 0
}
