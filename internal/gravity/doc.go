// Package gravity implements the pairwise Newtonian force pass.
//
// [Field] holds the two tuning knobs the simulation exposes, the
// gravitational constant G and the softening threshold, and computes
// per-body accelerations in a single read-only pass over the bodies.
// Conserved quantities (energy, momentum, angular momentum) are computed
// with the same softened force law so drift measurements stay consistent.
package gravity
