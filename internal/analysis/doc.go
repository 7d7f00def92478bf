// Package analysis characterizes recorded trajectories.
//
// The package works on the frame history a run records:
//
//   - [DominantPeriod]: orbital period via the power spectrum
//   - [RadialDrift]: secular inward/outward trend of an orbit radius
//   - [Eccentricity]: radial excursion ratio of an orbit
//   - [DivergenceExponent]: sensitivity to initial conditions via
//     trajectory separation
//   - [PhaseFromFrames], [PoincareFromFrames]: phase-plane views
//
// # Stability
//
// A divergence exponent near zero means neighboring trajectories stay
// together:
//
//	lambda := analysis.DivergenceExponent(field, integ, w, dt, duration, 1e-8)
//	if lambda > 0.5 {
//	    // orbits are strongly sensitive to initial conditions
//	}
package analysis
