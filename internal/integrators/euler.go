package integrators

import "github.com/san-kum/orbitsim/internal/orbit"

// Euler is the explicit first-order scheme. Kept as a comparison baseline:
// at orbital step sizes it drifts visibly where RK4 holds the orbit shape.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys System, s orbit.State, cmd orbit.ThrustCommand, dt float64) (orbit.State, error) {
	d, err := sys.Derive(s, cmd)
	if err != nil {
		return orbit.State{}, err
	}
	return s.Apply(d, dt), nil
}
