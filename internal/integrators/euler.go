package integrators

import "github.com/mkol/gravsim/internal/orbit"

// Euler is the explicit scheme: positions advance with the pre-update
// velocity. It injects energy into orbits and is kept as the baseline the
// compare workflow measures the others against.
type Euler struct {
	acc []orbit.Vec3
}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(field orbit.Accelerator, bodies []orbit.Body, dt float64) {
	e.acc = field.Accelerations(e.acc, bodies)
	for i := range bodies {
		b := &bodies[i]
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.Vel = b.Vel.Add(e.acc[i].Scale(dt))
	}
}

// SymplecticEuler is the velocity-first update: vel += acc*dt, then
// pos += vel*dt with the fresh velocity. First order like Euler, but it
// keeps near-circular orbits closed instead of spiraling.
type SymplecticEuler struct {
	acc []orbit.Vec3
}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (s *SymplecticEuler) Name() string { return "symplectic-euler" }

func (s *SymplecticEuler) Step(field orbit.Accelerator, bodies []orbit.Body, dt float64) {
	s.acc = field.Accelerations(s.acc, bodies)
	for i := range bodies {
		b := &bodies[i]
		b.Vel = b.Vel.Add(s.acc[i].Scale(dt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}
}
