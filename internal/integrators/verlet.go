package integrators

import "github.com/mkol/gravsim/internal/orbit"

// Verlet is velocity Verlet: positions advance with the old acceleration,
// velocities with the average of old and new. Second order, symplectic.
type Verlet struct {
	acc    []orbit.Vec3
	newAcc []orbit.Vec3
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Name() string { return "verlet" }

func (v *Verlet) Step(field orbit.Accelerator, bodies []orbit.Body, dt float64) {
	v.acc = field.Accelerations(v.acc, bodies)
	halfDt2 := 0.5 * dt * dt

	for i := range bodies {
		b := &bodies[i]
		b.Pos = b.Pos.Add(b.Vel.Scale(dt)).Add(v.acc[i].Scale(halfDt2))
	}

	v.newAcc = field.Accelerations(v.newAcc, bodies)

	halfDt := 0.5 * dt
	for i := range bodies {
		b := &bodies[i]
		b.Vel = b.Vel.Add(v.acc[i].Add(v.newAcc[i]).Scale(halfDt))
	}
}

// Leapfrog is the kick-drift-kick form: half velocity kick, full position
// drift, half kick from the new accelerations. Equivalent order to Verlet
// with slightly different roundoff behavior.
type Leapfrog struct {
	acc []orbit.Vec3
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Name() string { return "leapfrog" }

func (l *Leapfrog) Step(field orbit.Accelerator, bodies []orbit.Body, dt float64) {
	halfDt := 0.5 * dt

	l.acc = field.Accelerations(l.acc, bodies)
	for i := range bodies {
		b := &bodies[i]
		b.Vel = b.Vel.Add(l.acc[i].Scale(halfDt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}

	l.acc = field.Accelerations(l.acc, bodies)
	for i := range bodies {
		b := &bodies[i]
		b.Vel = b.Vel.Add(l.acc[i].Scale(halfDt))
	}
}
