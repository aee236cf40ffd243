package control

import "github.com/san-kum/orbitsim/internal/orbit"

// Burn is a thrust command held over a simulated-time window [Start, Stop).
type Burn struct {
	Start   float64
	Stop    float64
	Command orbit.ThrustCommand
}

// Schedule replays a list of timed burns, for headless runs where no
// keyboard drives the probe. The first burn covering t wins.
type Schedule struct {
	burns []Burn
}

func NewSchedule(burns []Burn) *Schedule {
	return &Schedule{burns: burns}
}

func (s *Schedule) Command(_ orbit.State, t float64) orbit.ThrustCommand {
	for _, b := range s.burns {
		if t >= b.Start && t < b.Stop {
			return b.Command
		}
	}
	return orbit.ThrustNone
}
