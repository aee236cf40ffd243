package config

// Presets are canned scenarios around the default central body. The body
// states reuse the ISS-altitude starting point of the original scenario.
var Presets = map[string]*Config{
	"iss": {
		Integrator: "rk4", Thrust: "none", Dt: 7.0, Duration: 5600, HistoryCap: 21, Lookahead: 1000,
		Body: BodyConfig{ID: 1, Mass: 1.0, X: 0, Y: 6.779e6, VX: 7660, VY: 0},
	},
	"elliptic": {
		Integrator: "rk4", Thrust: "none", Dt: 7.0, Duration: 8000, HistoryCap: 21, Lookahead: 1000,
		Body: BodyConfig{ID: 1, Mass: 1.0, X: 0, Y: 6.779e6, VX: 8426, VY: 0},
	},
	"boost": {
		Integrator: "rk4", Thrust: "schedule", Dt: 7.0, Duration: 8000, HistoryCap: 21, Lookahead: 1000,
		Body:  BodyConfig{ID: 1, Mass: 1.0, X: 0, Y: 6.779e6, VX: 7660, VY: 0},
		Burns: []BurnConfig{{Start: 0, Stop: 420, Command: "prograde"}},
	},
	"deorbit": {
		Integrator: "rk4", Thrust: "schedule", Dt: 7.0, Duration: 4000, HistoryCap: 21, Lookahead: 1000,
		Body:  BodyConfig{ID: 1, Mass: 1.0, X: 0, Y: 6.779e6, VX: 7660, VY: 0},
		Burns: []BurnConfig{{Start: 0, Stop: 280, Command: "retrograde"}},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
