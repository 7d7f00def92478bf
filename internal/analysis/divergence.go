package analysis

import (
	"math"

	"github.com/mkol/gravsim/internal/orbit"
)

// DivergenceExponent estimates the largest Lyapunov exponent of a
// configuration using the trajectory separation method: run the world
// and a perturbed twin side by side, measuring the phase-space growth
// each step and renormalizing the twin back to the initial offset so
// the separation stays in the linear regime.
//
// Near zero means regular orbits; clearly positive means neighboring
// configurations fly apart exponentially.
func DivergenceExponent(
	field orbit.Accelerator,
	integ orbit.Integrator,
	w *orbit.World,
	dt, duration, perturbation float64,
) float64 {
	if w == nil || len(w.Bodies) == 0 || dt <= 0 || duration <= 0 || perturbation <= 0 {
		return 0
	}

	ref := w.Clone()
	twin := w.Clone()
	twin.Bodies[0].Pos.X += perturbation

	d0 := perturbation
	sumLog := 0.0
	count := 0

	for t := 0.0; t < duration; t += dt {
		integ.Step(field, ref.Bodies, dt)
		integ.Step(field, twin.Bodies, dt)

		sep := separation(ref.Bodies, twin.Bodies)
		if sep <= 0 {
			continue
		}
		sumLog += math.Log(sep / d0)
		count++

		scale := d0 / sep
		for i := range twin.Bodies {
			dp := twin.Bodies[i].Pos.Sub(ref.Bodies[i].Pos)
			dv := twin.Bodies[i].Vel.Sub(ref.Bodies[i].Vel)
			twin.Bodies[i].Pos = ref.Bodies[i].Pos.Add(dp.Scale(scale))
			twin.Bodies[i].Vel = ref.Bodies[i].Vel.Add(dv.Scale(scale))
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}

// separation is the phase-space distance between two body slices.
func separation(a, b []orbit.Body) float64 {
	sum := 0.0
	for i := range a {
		dp := b[i].Pos.Sub(a[i].Pos)
		dv := b[i].Vel.Sub(a[i].Vel)
		sum += dp.Norm2() + dv.Norm2()
	}
	return math.Sqrt(sum)
}
