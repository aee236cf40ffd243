package control

import "github.com/san-kum/orbitsim/internal/orbit"

// Keys maps two held directional keys to a thrust command. Down is checked
// after up, so holding both yields retrograde.
type Keys struct {
	up, down bool
}

func NewKeys() *Keys {
	return &Keys{}
}

// Set records the key state as of the next tick.
func (k *Keys) Set(up, down bool) {
	k.up = up
	k.down = down
}

func (k *Keys) Command(s orbit.State, t float64) orbit.ThrustCommand {
	cmd := orbit.ThrustNone
	if k.up {
		cmd = orbit.ThrustPrograde
	}
	if k.down {
		cmd = orbit.ThrustRetrograde
	}
	return cmd
}
