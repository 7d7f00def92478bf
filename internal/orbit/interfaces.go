package orbit

// Accelerator computes the net acceleration of every body from current
// positions and masses. The pass is read-only over bodies; the result is
// written into dst (grown if needed) and returned, index-aligned with
// bodies. Implementations are pure: same bodies in, same accelerations out.
type Accelerator interface {
	Accelerations(dst []Vec3, bodies []Body) []Vec3
}

// Integrator advances every body's velocity and position in place by one
// fixed timestep. All accelerations for the step are evaluated from a
// single position snapshot before any body is mutated; schemes needing
// accelerations at intermediate positions work on scratch copies and write
// back at the end of the step.
type Integrator interface {
	Name() string
	Step(field Accelerator, bodies []Body, dt float64)
}

// Metric accumulates a scalar observation over a run.
type Metric interface {
	Name() string
	Observe(w *World, t float64)
	Value() float64
	Reset()
}

// Observer is notified after each completed step.
type Observer interface {
	OnStep(w *World, step int, t float64)
}
