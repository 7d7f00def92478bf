package metrics

import (
	"math"

	"github.com/mkol/gravsim/internal/gravity"
	"github.com/mkol/gravsim/internal/orbit"
)

type Energy struct {
	name    string
	field   gravity.Field
	total   float64
	samples int
}

func NewEnergy(field gravity.Field) *Energy {
	return &Energy{
		name:  "energy",
		field: field,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(w *orbit.World, t float64) {
	e.total += e.field.Energy(w.Bodies)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}

type EnergyDrift struct {
	name     string
	field    gravity.Field
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(field gravity.Field) *EnergyDrift {
	return &EnergyDrift{
		name:  "energy_drift",
		field: field,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(w *orbit.World, t float64) {
	energy := e.field.Energy(w.Bodies)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	drift := math.Abs(energy - e.initial)
	if e.initial != 0 {
		drift /= math.Abs(e.initial)
	}
	e.maxDrift = math.Max(e.maxDrift, drift)
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
