package metrics

import (
	"math"

	"github.com/mkol/gravsim/internal/orbit"
)

type MaxRadius struct {
	name    string
	center  orbit.Vec3
	max     float64
	samples int
}

func NewMaxRadius(center orbit.Vec3) *MaxRadius {
	return &MaxRadius{
		name:   "max_radius",
		center: center,
	}
}

func (m *MaxRadius) Name() string { return m.name }

func (m *MaxRadius) Observe(w *orbit.World, t float64) {
	m.max = math.Max(m.max, w.MaxRadius(m.center))
	m.samples++
}

func (m *MaxRadius) Value() float64 {
	return m.max
}

func (m *MaxRadius) Reset() {
	m.max = 0
	m.samples = 0
}

type MinSeparation struct {
	name    string
	min     float64
	samples int
}

func NewMinSeparation() *MinSeparation {
	return &MinSeparation{
		name: "min_separation",
		min:  math.Inf(1),
	}
}

func (m *MinSeparation) Name() string { return m.name }

func (m *MinSeparation) Observe(w *orbit.World, t float64) {
	m.min = math.Min(m.min, w.MinSeparation())
	m.samples++
}

func (m *MinSeparation) Value() float64 {
	return m.min
}

func (m *MinSeparation) Reset() {
	m.min = math.Inf(1)
	m.samples = 0
}
