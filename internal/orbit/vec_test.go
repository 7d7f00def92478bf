package orbit

import (
	"math"
	"testing"
)

func TestVec3Algebra(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %+v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: got %v, expected 12", got)
	}
}

func TestVec3CrossOrthogonal(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	c := a.Cross(b)

	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("cross product not orthogonal: c·a=%v c·b=%v", c.Dot(a), c.Dot(b))
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y: got %+v, expected z", got)
	}
}

func TestVec3Norm(t *testing.T) {
	v := Vec3{3, 4, 0}
	if v.Norm() != 5 {
		t.Errorf("Norm: got %v, expected 5", v.Norm())
	}
	if v.Norm2() != 25 {
		t.Errorf("Norm2: got %v, expected 25", v.Norm2())
	}
	if d := v.Dist(Vec3{3, 4, 12}); d != 12 {
		t.Errorf("Dist: got %v, expected 12", d)
	}
}

func TestVec3Unit(t *testing.T) {
	u := Vec3{0, 0, 9}.Unit()
	if u != (Vec3{0, 0, 1}) {
		t.Errorf("Unit: got %+v", u)
	}
	if z := (Vec3{}).Unit(); z != (Vec3{}) {
		t.Errorf("Unit of zero vector: got %+v, expected zero", z)
	}
	v := Vec3{1, -2, 2}.Unit()
	if math.Abs(v.Norm()-1) > 1e-12 {
		t.Errorf("Unit norm: got %v", v.Norm())
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec3{math.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN component reported finite")
	}
	if (Vec3{0, math.Inf(1), 0}).IsFinite() {
		t.Error("Inf component reported finite")
	}
}
