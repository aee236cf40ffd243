package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for the force model and simulation loop.
var (
	// ErrDegenerateRadius indicates a state at the origin; the gravity term
	// divides by r³ and is undefined there.
	ErrDegenerateRadius = errors.New("orbit: position at origin (r = 0)")

	// ErrDegenerateVelocity indicates zero speed under an active thrust
	// command; the tangential thrust direction is undefined.
	ErrDegenerateVelocity = errors.New("orbit: zero velocity with active thrust")

	// ErrInvalidState indicates a state containing NaN or Inf components.
	ErrInvalidState = errors.New("orbit: invalid state (NaN or Inf detected)")
)

// StepError wraps an error with the step and simulated time it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
