package gravity_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mkol/gravsim/internal/gravity"
	"github.com/mkol/gravsim/internal/integrators"
	"github.com/mkol/gravsim/internal/orbit"
)

// An equal-mass pair on a mildly eccentric mutual orbit; the relative
// orbit has period ~6.8 and perihelion ~1.3, well above the softening.
func eccentricBinary() []orbit.Body {
	return []orbit.Body{
		{Name: "a", Mass: 8, Pos: orbit.Vec3{X: -2, Y: 0, Z: 0}, Vel: orbit.Vec3{X: 0, Y: 0.7, Z: 0}},
		{Name: "b", Mass: 8, Pos: orbit.Vec3{X: 2, Y: 0, Z: 0}, Vel: orbit.Vec3{X: 0, Y: -0.7, Z: 0}},
	}
}

var _ = Describe("Field", func() {
	var field gravity.Field

	BeforeEach(func() {
		field = gravity.New(1.0, 0.05)
	})

	Describe("pair symmetry", func() {
		It("computes equal and opposite forces for a pair", func() {
			a := orbit.Body{Name: "a", Mass: 3, Pos: orbit.Vec3{X: -1, Y: 0.5, Z: 2}}
			b := orbit.Body{Name: "b", Mass: 7, Pos: orbit.Vec3{X: 4, Y: -2, Z: 1}}

			fab := field.PairForce(a, b)
			fba := field.PairForce(b, a)

			Expect(fab.Norm()).To(BeNumerically("~", fba.Norm(), 1e-12))
			Expect(fab.Add(fba).Norm()).To(BeNumerically("~", 0, 1e-12))
		})

		It("cancels pair impulses inside the accumulation pass", func() {
			bodies := []orbit.Body{
				{Name: "a", Mass: 2.5, Pos: orbit.Vec3{X: 1, Y: 2, Z: 3}},
				{Name: "b", Mass: 11, Pos: orbit.Vec3{X: -4, Y: 0, Z: 1}},
			}
			acc := field.Accelerations(nil, bodies)

			net := acc[0].Scale(bodies[0].Mass).Add(acc[1].Scale(bodies[1].Mass))
			Expect(net.Norm()).To(BeNumerically("~", 0, 1e-12))
		})
	})

	Describe("self interaction", func() {
		It("never accelerates a lone body", func() {
			acc := field.Accelerations(nil, []orbit.Body{
				{Name: "solo", Mass: 42, Pos: orbit.Vec3{X: 5, Y: 5, Z: 5}, Vel: orbit.Vec3{X: 1, Y: 0, Z: 0}},
			})
			Expect(acc[0]).To(Equal(orbit.Vec3{}))
		})
	})

	Describe("conservation over a long run", func() {
		var integ orbit.Integrator

		BeforeEach(func() {
			integ = integrators.NewSymplecticEuler()
		})

		It("holds total momentum of an isolated pair", func() {
			bodies := eccentricBinary()
			p0 := field.Momentum(bodies)

			for i := 0; i < 5000; i++ {
				integ.Step(field, bodies, 0.001)
			}

			Expect(field.Momentum(bodies).Sub(p0).Norm()).To(BeNumerically("<", 1e-9))
		})

		It("holds total angular momentum of an isolated pair", func() {
			bodies := eccentricBinary()
			l0 := field.AngularMomentum(bodies)

			for i := 0; i < 5000; i++ {
				integ.Step(field, bodies, 0.001)
			}

			Expect(field.AngularMomentum(bodies).Sub(l0).Norm()).To(BeNumerically("<", 1e-9))
		})

		It("keeps energy bounded through a full eccentric orbit", func() {
			bodies := eccentricBinary()
			e0 := field.Energy(bodies)
			worst := 0.0

			for i := 0; i < 5000; i++ {
				integ.Step(field, bodies, 0.001)
				if d := abs(field.Energy(bodies) - e0); d > worst {
					worst = d
				}
			}

			Expect(worst / abs(e0)).To(BeNumerically("<", 0.1))
		})
	})

	Describe("softening guard", func() {
		It("keeps a head-on encounter finite through the clamp region", func() {
			bodies := []orbit.Body{
				{Name: "a", Mass: 5, Pos: orbit.Vec3{X: -0.5, Y: 0, Z: 0}, Vel: orbit.Vec3{X: 0.6, Y: 0, Z: 0}},
				{Name: "b", Mass: 5, Pos: orbit.Vec3{X: 0.5, Y: 0, Z: 0}, Vel: orbit.Vec3{X: -0.6, Y: 0, Z: 0}},
			}
			integ := integrators.NewSymplecticEuler()

			maxSpeed, minSep := 0.0, bodies[0].Pos.Dist(bodies[1].Pos)
			for i := 0; i < 4000; i++ {
				integ.Step(field, bodies, 0.0005)
				for _, b := range bodies {
					if s := b.Speed(); s > maxSpeed {
						maxSpeed = s
					}
				}
				if d := bodies[0].Pos.Dist(bodies[1].Pos); d < minSep {
					minSep = d
				}
			}

			Expect(bodies[0].Pos.IsFinite()).To(BeTrue())
			Expect(bodies[1].Pos.IsFinite()).To(BeTrue())
			Expect(bodies[0].Vel.IsFinite()).To(BeTrue())
			Expect(bodies[1].Vel.IsFinite()).To(BeTrue())
			Expect(minSep).To(BeNumerically("<", field.Softening),
				"encounter never entered the clamp region, guard untested")
			Expect(maxSpeed).To(BeNumerically("<", 50))
		})
	})
})

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
