package orbit

import "math"

// ThrustCommand is the discrete tangential control input sampled once per
// tick. It scales a fixed thrust acceleration along the velocity direction.
type ThrustCommand int8

const (
	ThrustRetrograde ThrustCommand = -1
	ThrustNone       ThrustCommand = 0
	ThrustPrograde   ThrustCommand = 1
)

func (c ThrustCommand) String() string {
	switch c {
	case ThrustRetrograde:
		return "retrograde"
	case ThrustPrograde:
		return "prograde"
	default:
		return "none"
	}
}

// Point is a position sample consumed by renderers and exporters.
type Point struct {
	X, Y float64
}

// State holds position (m) and velocity (m/s) in the inertial plane centered
// on the central body. States are values: integration produces a new State,
// it never mutates one in place.
type State struct {
	X, Y   float64
	VX, VY float64
}

func (s State) Position() Point { return Point{s.X, s.Y} }

// Radius is the distance from the central body at the origin.
func (s State) Radius() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y)
}

func (s State) Speed() float64 {
	return math.Sqrt(s.VX*s.VX + s.VY*s.VY)
}

func (s State) IsValid() bool {
	for _, v := range [4]float64{s.X, s.Y, s.VX, s.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Apply advances the state by dt along a derivative: the derivative's
// velocity slot feeds position, its acceleration slot feeds velocity.
func (s State) Apply(d Derivative, dt float64) State {
	return State{
		X:  s.X + dt*d.VX,
		Y:  s.Y + dt*d.VY,
		VX: s.VX + dt*d.AX,
		VY: s.VY + dt*d.AY,
	}
}

// Derivative is the instantaneous rate of change of a State: acceleration
// plus the velocity reused as the position's derivative (first-order
// reduction of the equation of motion).
type Derivative struct {
	AX, AY float64
	VX, VY float64
}

func (d Derivative) Add(o Derivative) Derivative {
	return Derivative{
		AX: d.AX + o.AX,
		AY: d.AY + o.AY,
		VX: d.VX + o.VX,
		VY: d.VY + o.VY,
	}
}

func (d Derivative) Scale(factor float64) Derivative {
	return Derivative{
		AX: d.AX * factor,
		AY: d.AY * factor,
		VX: d.VX * factor,
		VY: d.VY * factor,
	}
}
