// Package integrators advances orbit states through fixed-step numerical
// integration schemes.
package integrators

import "github.com/san-kum/orbitsim/internal/orbit"

// System supplies the derivative of a state under a thrust command.
type System interface {
	Derive(s orbit.State, cmd orbit.ThrustCommand) (orbit.Derivative, error)
}

// Integrator advances a state by one fixed time step.
type Integrator interface {
	Step(sys System, s orbit.State, cmd orbit.ThrustCommand, dt float64) (orbit.State, error)
}

// RK4 is the classic fourth-order Runge-Kutta scheme. The thrust command is
// held constant across the four stages. Chosen over Euler for its energy
// and orbit-shape conservation at a fixed, moderate step size.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys System, s orbit.State, cmd orbit.ThrustCommand, dt float64) (orbit.State, error) {
	k1, err := sys.Derive(s, cmd)
	if err != nil {
		return orbit.State{}, err
	}
	k2, err := sys.Derive(s.Apply(k1, dt*0.5), cmd)
	if err != nil {
		return orbit.State{}, err
	}
	k3, err := sys.Derive(s.Apply(k2, dt*0.5), cmd)
	if err != nil {
		return orbit.State{}, err
	}
	k4, err := sys.Derive(s.Apply(k3, dt), cmd)
	if err != nil {
		return orbit.State{}, err
	}

	k := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return s.Apply(k, dt/6.0), nil
}
