package orbit

import (
	"math"
	"testing"
)

func TestStateApply(t *testing.T) {
	s := State{X: 1, Y: 2, VX: 3, VY: 4}
	d := Derivative{AX: 10, AY: 20, VX: 30, VY: 40}

	next := s.Apply(d, 0.5)

	// velocity slot feeds position, acceleration slot feeds velocity
	if next.X != 1+0.5*30 || next.Y != 2+0.5*40 {
		t.Errorf("position update wrong: got %+v", next)
	}
	if next.VX != 3+0.5*10 || next.VY != 4+0.5*20 {
		t.Errorf("velocity update wrong: got %+v", next)
	}

	if s.X != 1 || s.VX != 3 {
		t.Error("Apply must not mutate the receiver")
	}
}

func TestDerivativeAlgebra(t *testing.T) {
	a := Derivative{AX: 1, AY: 2, VX: 3, VY: 4}
	b := Derivative{AX: 10, AY: 20, VX: 30, VY: 40}

	sum := a.Add(b)
	if sum != (Derivative{AX: 11, AY: 22, VX: 33, VY: 44}) {
		t.Errorf("Add wrong: %+v", sum)
	}

	scaled := a.Scale(2)
	if scaled != (Derivative{AX: 2, AY: 4, VX: 6, VY: 8}) {
		t.Errorf("Scale wrong: %+v", scaled)
	}
}

func TestStateRadiusSpeed(t *testing.T) {
	s := State{X: 3, Y: 4, VX: 6, VY: 8}
	if s.Radius() != 5 {
		t.Errorf("expected radius 5, got %f", s.Radius())
	}
	if s.Speed() != 10 {
		t.Errorf("expected speed 10, got %f", s.Speed())
	}
}

func TestStateIsValid(t *testing.T) {
	if !(State{X: 1, Y: 2, VX: 3, VY: 4}).IsValid() {
		t.Error("finite state should be valid")
	}
	if (State{X: math.NaN()}).IsValid() {
		t.Error("NaN state should be invalid")
	}
	if (State{VY: math.Inf(1)}).IsValid() {
		t.Error("Inf state should be invalid")
	}
}

func TestThrustCommandString(t *testing.T) {
	cases := map[ThrustCommand]string{
		ThrustPrograde:   "prograde",
		ThrustNone:       "none",
		ThrustRetrograde: "retrograde",
	}
	for cmd, want := range cases {
		if cmd.String() != want {
			t.Errorf("expected %s, got %s", want, cmd.String())
		}
	}
}
