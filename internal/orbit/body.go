package orbit

// Body is one simulated probe: its current state plus a rolling history of
// recent states. Mass and ID are carried as metadata; the force model uses
// neither (the probe's own mass does not affect its acceleration in the
// single-dominant-body approximation).
type Body struct {
	ID      int
	Mass    float64
	State   State
	History *History
}

func NewBody(id int, mass float64, s State, historyCap int) *Body {
	return &Body{
		ID:      id,
		Mass:    mass,
		State:   s,
		History: NewHistory(historyCap),
	}
}
