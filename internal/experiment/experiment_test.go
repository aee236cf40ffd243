package experiment

import (
	"context"
	"testing"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/orbit"
)

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"rk4", "euler"} {
		if _, err := r.GetIntegrator(name); err != nil {
			t.Errorf("expected integrator %s: %v", name, err)
		}
	}
	if _, err := r.GetIntegrator("rk99"); err == nil {
		t.Error("expected error for unknown integrator")
	}

	for _, name := range []string{"none", "schedule"} {
		if _, err := r.GetThrustSource(name, nil); err != nil {
			t.Errorf("expected thrust source %s: %v", name, err)
		}
	}
	if _, err := r.GetThrustSource("psychic", nil); err == nil {
		t.Error("expected error for unknown thrust source")
	}

	integrators := r.ListIntegrators()
	if len(integrators) != 2 || integrators[0] != "euler" || integrators[1] != "rk4" {
		t.Errorf("expected sorted [euler rk4], got %v", integrators)
	}
}

func TestBurnsFromConfig(t *testing.T) {
	burns := BurnsFromConfig([]config.BurnConfig{
		{Start: 0, Stop: 60, Command: "prograde"},
		{Start: 100, Stop: 160, Command: "retrograde"},
	})

	if len(burns) != 2 {
		t.Fatalf("expected 2 burns, got %d", len(burns))
	}
	if burns[0].Command != orbit.ThrustPrograde {
		t.Errorf("expected prograde, got %v", burns[0].Command)
	}
	if burns[1].Command != orbit.ThrustRetrograde {
		t.Errorf("expected retrograde, got %v", burns[1].Command)
	}
}

func TestExperimentRun(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Duration = 100
	cfg.Dt = 10

	exp, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	initial := exp.InitialState()
	if initial.Y != cfg.Body.Y || initial.VX != cfg.Body.VX {
		t.Errorf("initial state does not match config body: %+v", initial)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.StepsTaken != 10 {
		t.Errorf("expected 10 steps, got %d", result.StepsTaken)
	}
	for _, name := range []string{"energy_drift", "angular_momentum_drift", "radial_range"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("expected metric %s in result", name)
		}
	}
}

func TestExperimentRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dt = -1
	if _, err := New(cfg); err == nil {
		t.Error("expected error for invalid config")
	}

	cfg = config.DefaultConfig()
	cfg.Integrator = "rk99"
	if _, err := New(cfg); err == nil {
		t.Error("expected error for unknown integrator")
	}
}
