package forces

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/orbit"
)

func TestGravityMagnitudeAndDirection(t *testing.T) {
	m := NewModel()

	r := EarthRadius + 408000.0
	s := orbit.State{X: 0, Y: r, VX: 7660, VY: 0}

	d, err := m.Derive(s, orbit.ThrustNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMag := m.Mu() / (r * r)
	gotMag := math.Sqrt(d.AX*d.AX + d.AY*d.AY)
	if math.Abs(gotMag-wantMag)/wantMag > 1e-12 {
		t.Errorf("expected |a| = %g, got %g", wantMag, gotMag)
	}

	// acceleration points exactly opposite the position vector
	if d.AX != 0 {
		t.Errorf("expected zero x acceleration on the y axis, got %g", d.AX)
	}
	if d.AY >= 0 {
		t.Errorf("expected acceleration toward the origin, got %g", d.AY)
	}
}

func TestDeriveVelocitySlot(t *testing.T) {
	m := NewModel()
	s := orbit.State{X: 7e6, Y: 1e6, VX: -1234, VY: 5678}

	d, err := m.Derive(s, orbit.ThrustNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.VX != s.VX || d.VY != s.VY {
		t.Errorf("derivative velocity slot must equal state velocity, got %+v", d)
	}
}

func TestThrustAlongVelocity(t *testing.T) {
	m := NewModel()
	s := orbit.State{X: 0, Y: 6.779e6, VX: 7660, VY: 0}

	coast, err := m.Derive(s, orbit.ThrustNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prograde, err := m.Derive(s, orbit.ThrustPrograde)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	retrograde, err := m.Derive(s, orbit.ThrustRetrograde)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// velocity is +x here, so thrust lands entirely on AX
	if got := prograde.AX - coast.AX; math.Abs(got-m.ThrustAccel) > 1e-12 {
		t.Errorf("expected prograde to add %g to AX, added %g", m.ThrustAccel, got)
	}
	if got := retrograde.AX - coast.AX; math.Abs(got+m.ThrustAccel) > 1e-12 {
		t.Errorf("expected retrograde to subtract %g from AX, added %g", m.ThrustAccel, got)
	}
	if prograde.AY != coast.AY {
		t.Errorf("thrust must not touch the perpendicular component")
	}
}

func TestDegenerateRadius(t *testing.T) {
	m := NewModel()
	_, err := m.Derive(orbit.State{X: 0, Y: 0, VX: 100, VY: 0}, orbit.ThrustNone)
	if !errors.Is(err, orbit.ErrDegenerateRadius) {
		t.Errorf("expected ErrDegenerateRadius, got %v", err)
	}
}

func TestDegenerateVelocity(t *testing.T) {
	m := NewModel()
	s := orbit.State{X: 0, Y: 6.779e6}

	_, err := m.Derive(s, orbit.ThrustPrograde)
	if !errors.Is(err, orbit.ErrDegenerateVelocity) {
		t.Errorf("expected ErrDegenerateVelocity, got %v", err)
	}

	// zero velocity is fine as long as no thrust is commanded
	if _, err := m.Derive(s, orbit.ThrustNone); err != nil {
		t.Errorf("unexpected error without thrust: %v", err)
	}
}

func TestCircularSpeed(t *testing.T) {
	m := NewModel()
	r := EarthRadius + 408000.0
	v := m.CircularSpeed(r)

	// centripetal balance: v²/r = μ/r²
	if math.Abs(v*v/r-m.Mu()/(r*r))/(m.Mu()/(r*r)) > 1e-12 {
		t.Errorf("circular speed %g does not balance gravity at r=%g", v, r)
	}
}

func TestConservedQuantities(t *testing.T) {
	m := NewModel()
	s := orbit.State{X: 1e6, Y: 6.7e6, VX: 7000, VY: -1000}

	wantE := 0.5*s.Speed()*s.Speed() - m.Mu()/s.Radius()
	if got := m.Energy(s); math.Abs(got-wantE) > math.Abs(wantE)*1e-14 {
		t.Errorf("energy: expected %g, got %g", wantE, got)
	}

	wantH := s.X*s.VY - s.Y*s.VX
	if got := m.AngularMomentum(s); got != wantH {
		t.Errorf("angular momentum: expected %g, got %g", wantH, got)
	}
}
