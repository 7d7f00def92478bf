package gravity

import (
	"math"

	"github.com/mkol/gravsim/internal/orbit"
)

// Field computes gravitational accelerations over a body slice.
//
// Softening is the singularity guard: pair distances below it are clamped
// to it before dividing, so close encounters stay bounded instead of
// blowing up. Too small a value lets near passes sling-shot bodies out of
// the system; too large weakens close encounters and decays tight orbits.
// Softening must be positive; config validation enforces this before a
// Field reaches the simulation loop.
type Field struct {
	G         float64
	Softening float64
}

// New returns a Field with the given gravitational constant and softening
// threshold.
func New(g, softening float64) Field {
	return Field{G: g, Softening: softening}
}

// Accelerations computes the net acceleration of every body due to all
// others and returns it index-aligned with bodies, reusing dst when its
// capacity allows. Each unordered pair is visited once and both bodies
// accumulate from the same displacement, so pair impulses cancel exactly.
// The pass never mutates bodies.
func (f Field) Accelerations(dst []orbit.Vec3, bodies []orbit.Body) []orbit.Vec3 {
	if cap(dst) < len(bodies) {
		dst = make([]orbit.Vec3, len(bodies))
	}
	dst = dst[:len(bodies)]
	for i := range dst {
		dst[i] = orbit.Vec3{}
	}

	for i := 0; i < len(bodies); i++ {
		pi := bodies[i].Pos
		for j := i + 1; j < len(bodies); j++ {
			d := bodies[j].Pos.Sub(pi)
			r := d.Norm()
			if r < f.Softening {
				r = f.Softening
			}
			inv3 := 1 / (r * r * r)

			fij := f.G * bodies[j].Mass * inv3
			dst[i] = dst[i].Add(d.Scale(fij))

			fji := f.G * bodies[i].Mass * inv3
			dst[j] = dst[j].Sub(d.Scale(fji))
		}
	}
	return dst
}

// PairForce returns the force on a due to b under the softened law:
// G*m_a*m_b/r² along the displacement toward b, with r clamped to the
// softening threshold.
func (f Field) PairForce(a, b orbit.Body) orbit.Vec3 {
	d := b.Pos.Sub(a.Pos)
	r := d.Norm()
	if r < f.Softening {
		r = f.Softening
	}
	return d.Scale(f.G * a.Mass * b.Mass / (r * r * r))
}

// Energy returns kinetic plus pairwise potential energy. The potential
// uses the clamped distance so it is the energy of the force law actually
// integrated, not of the unsoftened one.
func (f Field) Energy(bodies []orbit.Body) float64 {
	ke, pe := 0.0, 0.0
	for i := range bodies {
		ke += bodies[i].KineticEnergy()
		for j := i + 1; j < len(bodies); j++ {
			r := bodies[j].Pos.Dist(bodies[i].Pos)
			if r < f.Softening {
				r = f.Softening
			}
			pe -= f.G * bodies[i].Mass * bodies[j].Mass / r
		}
	}
	return ke + pe
}

// Momentum returns the total linear momentum Σ m·v.
func (f Field) Momentum(bodies []orbit.Body) orbit.Vec3 {
	var p orbit.Vec3
	for _, b := range bodies {
		p = p.Add(b.Momentum())
	}
	return p
}

// AngularMomentum returns Σ r × m·v about the origin.
func (f Field) AngularMomentum(bodies []orbit.Body) orbit.Vec3 {
	var l orbit.Vec3
	for _, b := range bodies {
		l = l.Add(b.Pos.Cross(b.Momentum()))
	}
	return l
}

// CircularSpeed returns the tangential speed sqrt(G*m/r) for a circular
// orbit of radius r about a central mass m.
func CircularSpeed(g, m, r float64) float64 {
	return math.Sqrt(g * m / r)
}

// OrbitalPeriod returns the Keplerian period 2π*sqrt(r³/(G*m)) for a
// circular orbit of radius r about a central mass m.
func OrbitalPeriod(g, m, r float64) float64 {
	return 2 * math.Pi * math.Sqrt(r*r*r/(g*m))
}
