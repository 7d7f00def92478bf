package integrators

import "github.com/mkol/gravsim/internal/orbit"

// RK4 is classical fourth-order Runge-Kutta over the combined
// position/velocity state. Stage positions live in a scratch body slice
// so the real bodies stay untouched until the final write-back; it is not
// symplectic, but over moderate horizons its truncation error is far
// below the symplectic schemes'.
type RK4 struct {
	scratch        []orbit.Body
	a1, a2, a3, a4 []orbit.Vec3
	v2, v3, v4     []orbit.Vec3
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) ensureScratch(n int) {
	if len(r.scratch) != n {
		r.scratch = make([]orbit.Body, n)
		r.a1 = make([]orbit.Vec3, n)
		r.a2 = make([]orbit.Vec3, n)
		r.a3 = make([]orbit.Vec3, n)
		r.a4 = make([]orbit.Vec3, n)
		r.v2 = make([]orbit.Vec3, n)
		r.v3 = make([]orbit.Vec3, n)
		r.v4 = make([]orbit.Vec3, n)
	}
}

func (r *RK4) Step(field orbit.Accelerator, bodies []orbit.Body, dt float64) {
	n := len(bodies)
	r.ensureScratch(n)
	copy(r.scratch, bodies)
	half := 0.5 * dt

	// Stage 1 at the current positions; the velocity stage is Vel itself.
	r.a1 = field.Accelerations(r.a1, bodies)

	for i := range bodies {
		r.v2[i] = bodies[i].Vel.Add(r.a1[i].Scale(half))
		r.scratch[i].Pos = bodies[i].Pos.Add(bodies[i].Vel.Scale(half))
	}
	r.a2 = field.Accelerations(r.a2, r.scratch)

	for i := range bodies {
		r.v3[i] = bodies[i].Vel.Add(r.a2[i].Scale(half))
		r.scratch[i].Pos = bodies[i].Pos.Add(r.v2[i].Scale(half))
	}
	r.a3 = field.Accelerations(r.a3, r.scratch)

	for i := range bodies {
		r.v4[i] = bodies[i].Vel.Add(r.a3[i].Scale(dt))
		r.scratch[i].Pos = bodies[i].Pos.Add(r.v3[i].Scale(dt))
	}
	r.a4 = field.Accelerations(r.a4, r.scratch)

	dt6 := dt / 6
	for i := range bodies {
		b := &bodies[i]
		dx := b.Vel.Add(r.v2[i].Scale(2)).Add(r.v3[i].Scale(2)).Add(r.v4[i])
		dv := r.a1[i].Add(r.a2[i].Scale(2)).Add(r.a3[i].Scale(2)).Add(r.a4[i])
		b.Pos = b.Pos.Add(dx.Scale(dt6))
		b.Vel = b.Vel.Add(dv.Scale(dt6))
	}
}
