// Package control supplies per-tick thrust commands from different sources:
// no input, live key state, or a timed burn schedule.
package control

import "github.com/san-kum/orbitsim/internal/orbit"

// None never commands thrust; the probe coasts.
type None struct{}

func NewNone() *None {
	return &None{}
}

func (n *None) Command(s orbit.State, t float64) orbit.ThrustCommand {
	return orbit.ThrustNone
}
