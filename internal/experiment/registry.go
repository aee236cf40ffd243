package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/control"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Registry maps names from config files and CLI flags to integrator and
// thrust-source constructors.
type Registry struct {
	integrators map[string]func() integrators.Integrator
	thrusts     map[string]func(burns []control.Burn) sim.ThrustSource
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() integrators.Integrator),
		thrusts:     make(map[string]func([]control.Burn) sim.ThrustSource),
	}

	r.integrators["rk4"] = func() integrators.Integrator { return integrators.NewRK4() }
	r.integrators["euler"] = func() integrators.Integrator { return integrators.NewEuler() }

	r.thrusts["none"] = func([]control.Burn) sim.ThrustSource { return control.NewNone() }
	r.thrusts["schedule"] = func(burns []control.Burn) sim.ThrustSource { return control.NewSchedule(burns) }

	return r
}

func (r *Registry) GetIntegrator(name string) (integrators.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetThrustSource(name string, burns []control.Burn) (sim.ThrustSource, error) {
	fn, ok := r.thrusts[name]
	if !ok {
		return nil, fmt.Errorf("unknown thrust source: %s", name)
	}
	return fn(burns), nil
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BurnsFromConfig converts config burn entries to control burns.
func BurnsFromConfig(burns []config.BurnConfig) []control.Burn {
	out := make([]control.Burn, 0, len(burns))
	for _, b := range burns {
		cmd := orbit.ThrustPrograde
		if b.Command == "retrograde" {
			cmd = orbit.ThrustRetrograde
		}
		out = append(out, control.Burn{Start: b.Start, Stop: b.Stop, Command: cmd})
	}
	return out
}
