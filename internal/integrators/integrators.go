// Package integrators provides the fixed-timestep schemes that advance
// the body slice in place. Every scheme evaluates accelerations from a
// consistent position snapshot before mutating any body; multi-stage
// schemes stage intermediate positions in scratch copies and write back
// once at the end of the step.
//
// The registered default, [SymplecticEuler], is the velocity-first update
// the simulation is built around: vel += acc*dt, then pos += vel*dt.
package integrators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mkol/gravsim/internal/orbit"
)

// Default is the registry name of the scheme used when none is chosen.
const Default = "symplectic-euler"

var factories = map[string]func() orbit.Integrator{
	"euler":            func() orbit.Integrator { return NewEuler() },
	"symplectic-euler": func() orbit.Integrator { return NewSymplecticEuler() },
	"leapfrog":         func() orbit.Integrator { return NewLeapfrog() },
	"verlet":           func() orbit.Integrator { return NewVerlet() },
	"rk4":              func() orbit.Integrator { return NewRK4() },
}

// New returns a fresh integrator registered under name.
func New(name string) (orbit.Integrator, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f(), nil
}

// Names lists the registered schemes, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
