package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for world construction and stepping.
var (
	// ErrNoBodies indicates an attempt to build an empty world.
	ErrNoBodies = errors.New("orbit: world has no bodies")

	// ErrNonPositiveMass indicates a body with zero, negative or non-finite mass.
	ErrNonPositiveMass = errors.New("orbit: body mass must be positive and finite")

	// ErrCoincidentBodies indicates two bodies at the exact same position.
	ErrCoincidentBodies = errors.New("orbit: bodies share the same position")

	// ErrBodyCountMismatch indicates a snapshot or frame sized for a different world.
	ErrBodyCountMismatch = errors.New("orbit: body count mismatch")

	// ErrInvalidState indicates NaN or Inf in a body's kinematic state.
	ErrInvalidState = errors.New("orbit: invalid state (NaN or Inf detected)")

	// ErrInvalidTimestep indicates a zero, negative or non-finite dt.
	ErrInvalidTimestep = errors.New("orbit: timestep must be positive and finite")
)

// StepError wraps an error with the step at which it occurred.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
