// Package orbit defines the core data model for the gravitational
// simulation: bodies, the world that owns them, and the interfaces the
// force evaluator, the integrators and the step observers implement.
//
//   - [Vec3]: 3D vector algebra shared across packages
//   - [Body]: point mass with position and velocity
//   - [World]: fixed, ordered body set with construction-time invariants
//   - [Accelerator]: per-step acceleration evaluator
//   - [Integrator]: in-place fixed-timestep advance over the body slice
//
// A body's index in the world is its handle; iteration order is fixed so
// runs are reproducible. Accelerations are transient: produced fresh each
// step by an Accelerator and consumed within the same step, never stored.
//
// # Thread Safety
//
// A World is exclusively owned by its simulation loop. Steps never run
// concurrently; observers read the world only after a step completes.
package orbit
