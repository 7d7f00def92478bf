package metrics

import (
	"math"
	"testing"

	"github.com/mkol/gravsim/internal/gravity"
	"github.com/mkol/gravsim/internal/orbit"
)

func testWorld(t *testing.T) *orbit.World {
	t.Helper()
	w, err := orbit.NewWorld([]orbit.Body{
		{Name: "a", Mass: 1, Pos: orbit.Vec3{X: -2}, Vel: orbit.Vec3{Y: 1}},
		{Name: "b", Mass: 1, Pos: orbit.Vec3{X: 2}, Vel: orbit.Vec3{Y: -1}},
	})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestEnergyDriftZeroWhenStatic(t *testing.T) {
	field := gravity.Field{G: 1, Softening: 0.1}
	w := testWorld(t)

	m := NewEnergyDrift(field)
	m.Observe(w, 0)
	m.Observe(w, 1)
	m.Observe(w, 2)

	if m.Value() != 0 {
		t.Errorf("expected zero drift for unchanged world, got %g", m.Value())
	}
}

func TestEnergyDriftDetectsChange(t *testing.T) {
	field := gravity.Field{G: 1, Softening: 0.1}
	w := testWorld(t)

	e0 := field.Energy(w.Bodies)
	m := NewEnergyDrift(field)
	m.Observe(w, 0)

	w.Bodies[0].Vel = orbit.Vec3{Y: 3}
	e1 := field.Energy(w.Bodies)
	m.Observe(w, 1)

	want := math.Abs(e1-e0) / math.Abs(e0)
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("expected drift %g, got %g", want, m.Value())
	}
}

func TestEnergyDriftKeepsHighWaterMark(t *testing.T) {
	field := gravity.Field{G: 1, Softening: 0.1}
	w := testWorld(t)

	m := NewEnergyDrift(field)
	m.Observe(w, 0)

	orig := w.Bodies[0].Vel
	w.Bodies[0].Vel = orbit.Vec3{Y: 5}
	m.Observe(w, 1)
	peak := m.Value()

	w.Bodies[0].Vel = orig
	m.Observe(w, 2)

	if m.Value() != peak {
		t.Errorf("drift dropped from %g to %g after recovery", peak, m.Value())
	}
}

func TestMomentumDrift(t *testing.T) {
	field := gravity.Field{G: 1, Softening: 0.1}
	w := testWorld(t)

	m := NewMomentumDrift(field)
	m.Observe(w, 0)
	m.Observe(w, 1)
	if m.Value() != 0 {
		t.Errorf("expected zero momentum drift, got %g", m.Value())
	}

	w.Bodies[0].Vel = w.Bodies[0].Vel.Add(orbit.Vec3{X: 1})
	m.Observe(w, 2)
	if m.Value() == 0 {
		t.Error("expected non-zero drift after external kick")
	}
}

func TestMaxRadiusHighWater(t *testing.T) {
	w, err := orbit.NewWorld([]orbit.Body{{Name: "a", Mass: 1, Pos: orbit.Vec3{X: 3}}})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	m := NewMaxRadius(orbit.Vec3{})
	m.Observe(w, 0)

	w.Bodies[0].Pos = orbit.Vec3{X: 5}
	m.Observe(w, 1)

	w.Bodies[0].Pos = orbit.Vec3{X: 4}
	m.Observe(w, 2)

	if m.Value() != 5 {
		t.Errorf("expected max radius 5, got %g", m.Value())
	}
}

func TestMinSeparationLowWater(t *testing.T) {
	w := testWorld(t)

	m := NewMinSeparation()
	m.Observe(w, 0)

	w.Bodies[1].Pos = orbit.Vec3{X: 0, Y: 2}
	m.Observe(w, 1)

	w.Bodies[1].Pos = orbit.Vec3{X: 3}
	m.Observe(w, 2)

	want := math.Hypot(2, 2)
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("expected min separation %g, got %g", want, m.Value())
	}
}

func TestMetricReset(t *testing.T) {
	field := gravity.Field{G: 1, Softening: 0.1}
	w := testWorld(t)

	drift := NewEnergyDrift(field)
	drift.Observe(w, 0)
	w.Bodies[0].Vel = orbit.Vec3{Y: 4}
	drift.Observe(w, 1)
	if drift.Value() == 0 {
		t.Fatal("expected non-zero drift before reset")
	}

	drift.Reset()
	if drift.Value() != 0 {
		t.Errorf("expected zero drift after reset, got %g", drift.Value())
	}

	sep := NewMinSeparation()
	sep.Observe(w, 0)
	sep.Reset()
	if !math.IsInf(sep.Value(), 1) {
		t.Errorf("expected +Inf separation after reset, got %g", sep.Value())
	}
}
