package analysis

import (
	"math"
	"testing"

	"github.com/mkol/gravsim/internal/gravity"
	"github.com/mkol/gravsim/internal/integrators"
	"github.com/mkol/gravsim/internal/orbit"
)

// antiSpring accelerates bodies away from the origin at a = +pos, so
// perturbations grow as e^t and the exponent is exactly 1.
type antiSpring struct{}

func (antiSpring) Accelerations(dst []orbit.Vec3, bodies []orbit.Body) []orbit.Vec3 {
	if cap(dst) < len(bodies) {
		dst = make([]orbit.Vec3, len(bodies))
	}
	dst = dst[:len(bodies)]
	for i, b := range bodies {
		dst[i] = b.Pos
	}
	return dst
}

func TestDivergenceExponentUnstable(t *testing.T) {
	w, err := orbit.NewWorld([]orbit.Body{{Name: "p", Mass: 1, Pos: orbit.Vec3{X: 1}}})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	integ, err := integrators.New("symplectic-euler")
	if err != nil {
		t.Fatalf("integrators.New: %v", err)
	}

	lambda := DivergenceExponent(antiSpring{}, integ, w, 0.01, 20, 1e-6)
	if math.Abs(lambda-1) > 0.05 {
		t.Errorf("expected exponent near 1, got %g", lambda)
	}
}

func TestDivergenceExponentRegular(t *testing.T) {
	w, err := orbit.NewWorld([]orbit.Body{
		{Name: "a", Mass: 8, Pos: orbit.Vec3{X: -2}, Vel: orbit.Vec3{Y: -1}},
		{Name: "b", Mass: 8, Pos: orbit.Vec3{X: 2}, Vel: orbit.Vec3{Y: 1}},
	})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	integ, err := integrators.New("symplectic-euler")
	if err != nil {
		t.Fatalf("integrators.New: %v", err)
	}

	// Nearby circular orbits shear apart linearly, so the finite-time
	// estimate decays like log(t)/t rather than hitting zero exactly.
	field := gravity.Field{G: 1, Softening: 0.05}
	lambda := DivergenceExponent(field, integ, w, 0.005, 50, 1e-8)
	if math.Abs(lambda) > 0.1 {
		t.Errorf("expected near-zero exponent for a circular binary, got %g", lambda)
	}
}

func TestDivergenceExponentDegenerate(t *testing.T) {
	w, err := orbit.NewWorld([]orbit.Body{{Name: "p", Mass: 1, Pos: orbit.Vec3{X: 1}}})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	integ, err := integrators.New("symplectic-euler")
	if err != nil {
		t.Fatalf("integrators.New: %v", err)
	}

	if l := DivergenceExponent(antiSpring{}, integ, nil, 0.01, 1, 1e-6); l != 0 {
		t.Errorf("expected 0 for nil world, got %g", l)
	}
	if l := DivergenceExponent(antiSpring{}, integ, w, 0, 1, 1e-6); l != 0 {
		t.Errorf("expected 0 for zero dt, got %g", l)
	}
	if l := DivergenceExponent(antiSpring{}, integ, w, 0.01, 1, 0); l != 0 {
		t.Errorf("expected 0 for zero perturbation, got %g", l)
	}
}
