package metrics

import (
	"math"

	"github.com/mkol/gravsim/internal/gravity"
	"github.com/mkol/gravsim/internal/orbit"
)

type MomentumDrift struct {
	name     string
	field    gravity.Field
	initial  orbit.Vec3
	maxDrift float64
	samples  int
}

func NewMomentumDrift(field gravity.Field) *MomentumDrift {
	return &MomentumDrift{
		name:  "momentum_drift",
		field: field,
	}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(w *orbit.World, t float64) {
	p := m.field.Momentum(w.Bodies)

	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	drift := p.Sub(m.initial).Norm()
	if n := m.initial.Norm(); n > 0 {
		drift /= n
	}
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.initial = orbit.Vec3{}
	m.maxDrift = 0
	m.samples = 0
}

type AngularMomentumDrift struct {
	name     string
	field    gravity.Field
	initial  orbit.Vec3
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift(field gravity.Field) *AngularMomentumDrift {
	return &AngularMomentumDrift{
		name:  "angular_momentum_drift",
		field: field,
	}
}

func (m *AngularMomentumDrift) Name() string { return m.name }

func (m *AngularMomentumDrift) Observe(w *orbit.World, t float64) {
	l := m.field.AngularMomentum(w.Bodies)

	if m.samples == 0 {
		m.initial = l
	}
	m.samples++

	drift := l.Sub(m.initial).Norm()
	if n := m.initial.Norm(); n > 0 {
		drift /= n
	}
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *AngularMomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *AngularMomentumDrift) Reset() {
	m.initial = orbit.Vec3{}
	m.maxDrift = 0
	m.samples = 0
}
