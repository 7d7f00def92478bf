package orbit

import (
	"fmt"
	"math"
)

// World is the complete body set at a given step. Bodies are ordered and
// the set is fixed for the life of the run; the slice index is the body's
// handle everywhere in this module.
type World struct {
	Bodies []Body
}

// NewWorld validates the construction invariants: strictly positive mass
// for every body, and no two bodies at the exact same position. The force
// evaluator assumes both and never re-checks them per step.
func NewWorld(bodies []Body) (*World, error) {
	if len(bodies) == 0 {
		return nil, ErrNoBodies
	}
	for i, b := range bodies {
		if b.Mass <= 0 || math.IsNaN(b.Mass) || math.IsInf(b.Mass, 0) {
			return nil, fmt.Errorf("body %d (%s): mass %v: %w", i, b.Name, b.Mass, ErrNonPositiveMass)
		}
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Pos == bodies[j].Pos {
				return nil, fmt.Errorf("bodies %d (%s) and %d (%s): %w",
					i, bodies[i].Name, j, bodies[j].Name, ErrCoincidentBodies)
			}
		}
	}
	w := &World{Bodies: make([]Body, len(bodies))}
	copy(w.Bodies, bodies)
	return w, nil
}

func (w *World) Clone() *World {
	c := &World{Bodies: make([]Body, len(w.Bodies))}
	copy(c.Bodies, w.Bodies)
	return c
}

// IsValid reports whether every position, velocity and mass is finite.
func (w *World) IsValid() bool {
	for _, b := range w.Bodies {
		if math.IsNaN(b.Mass) || math.IsInf(b.Mass, 0) {
			return false
		}
		if !b.Pos.IsFinite() || !b.Vel.IsFinite() {
			return false
		}
	}
	return true
}

func (w *World) TotalMass() float64 {
	m := 0.0
	for _, b := range w.Bodies {
		m += b.Mass
	}
	return m
}

func (w *World) CenterOfMass() Vec3 {
	var com Vec3
	total := w.TotalMass()
	if total == 0 {
		return com
	}
	for _, b := range w.Bodies {
		com = com.Add(b.Pos.Scale(b.Mass))
	}
	return com.Scale(1 / total)
}

// Snapshot copies the current kinematic state of every body, index-aligned
// with Bodies.
func (w *World) Snapshot() []BodyState {
	s := make([]BodyState, len(w.Bodies))
	for i, b := range w.Bodies {
		s[i] = b.State()
	}
	return s
}

// Restore rewinds positions and velocities to a snapshot taken from this
// world. Masses and names are untouched.
func (w *World) Restore(s []BodyState) error {
	if len(s) != len(w.Bodies) {
		return fmt.Errorf("snapshot has %d bodies, world has %d: %w", len(s), len(w.Bodies), ErrBodyCountMismatch)
	}
	for i := range w.Bodies {
		w.Bodies[i].Pos = s[i].Pos
		w.Bodies[i].Vel = s[i].Vel
	}
	return nil
}

// MaxRadius returns the largest distance of any body from center.
func (w *World) MaxRadius(center Vec3) float64 {
	max := 0.0
	for _, b := range w.Bodies {
		if r := b.Pos.Dist(center); r > max {
			max = r
		}
	}
	return max
}

// MinSeparation returns the smallest pairwise distance, or +Inf for a
// single-body world.
func (w *World) MinSeparation() float64 {
	min := math.Inf(1)
	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			if d := w.Bodies[i].Pos.Dist(w.Bodies[j].Pos); d < min {
				min = d
			}
		}
	}
	return min
}
