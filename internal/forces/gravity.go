// Package forces computes state derivatives for a probe in the inverse-square
// field of a single massive central body fixed at the origin, with an
// optional fixed-magnitude tangential thrust.
package forces

import (
	"math"

	"github.com/san-kum/orbitsim/internal/orbit"
)

// Physical constants of the default central body (Earth).
const (
	GravitationalConstant = 6.6743e-11 // m³ kg⁻¹ s⁻²
	EarthMass             = 5.972e24   // kg
	EarthRadius           = 6.371e6    // m
	DefaultThrustAccel    = 2.0        // m/s²
)

// Model is the planar two-body force model. The probe is treated as
// massless: acceleration depends only on the central mass.
type Model struct {
	G           float64
	CentralMass float64
	ThrustAccel float64
}

func NewModel() *Model {
	return &Model{
		G:           GravitationalConstant,
		CentralMass: EarthMass,
		ThrustAccel: DefaultThrustAccel,
	}
}

// Mu is the standard gravitational parameter G·M.
func (m *Model) Mu() float64 { return m.G * m.CentralMass }

// Derive returns the derivative of s under gravity plus the commanded
// thrust. It fails fast on the two degenerate inputs instead of letting
// NaN propagate into history and rendering: a state at the origin, and zero
// speed while a thrust command is active.
func (m *Model) Derive(s orbit.State, cmd orbit.ThrustCommand) (orbit.Derivative, error) {
	r := s.Radius()
	if r == 0 {
		return orbit.Derivative{}, orbit.ErrDegenerateRadius
	}

	// a_grav = -(G·M/r³)·pos, the vector form of the inverse-square law.
	f := -m.Mu() / (r * r * r)
	ax := f * s.X
	ay := f * s.Y

	if cmd != orbit.ThrustNone {
		v := s.Speed()
		if v == 0 {
			return orbit.Derivative{}, orbit.ErrDegenerateVelocity
		}
		scale := float64(cmd) * m.ThrustAccel / v
		ax += scale * s.VX
		ay += scale * s.VY
	}

	return orbit.Derivative{AX: ax, AY: ay, VX: s.VX, VY: s.VY}, nil
}

// Energy is the specific orbital energy v²/2 − μ/r, conserved on unthrusted
// trajectories.
func (m *Model) Energy(s orbit.State) float64 {
	v := s.Speed()
	return 0.5*v*v - m.Mu()/s.Radius()
}

// AngularMomentum is the specific angular momentum x·vy − y·vx, also
// conserved without thrust.
func (m *Model) AngularMomentum(s orbit.State) float64 {
	return s.X*s.VY - s.Y*s.VX
}

// CircularSpeed is the speed of a circular orbit at radius r.
func (m *Model) CircularSpeed(r float64) float64 {
	return math.Sqrt(m.Mu() / r)
}
