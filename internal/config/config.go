// Package config loads, validates and materializes simulation scenes.
// A scene is a YAML document naming the field constants, the scheme and
// timestep, and the initial bodies; bodies may ask for an automatic
// circular-orbit velocity about another body instead of spelling one out.
package config

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mkol/gravsim/internal/gravity"
	"github.com/mkol/gravsim/internal/orbit"
)

const (
	DefaultDt        = 1.0 / 60
	DefaultDuration  = 120.0
	DefaultG         = 0.1
	DefaultSoftening = 2.0
	DefaultScheme    = "symplectic-euler"
)

type Config struct {
	Name       string       `yaml:"name"`
	Integrator string       `yaml:"integrator"`
	Dt         float64      `yaml:"dt"`
	Duration   float64      `yaml:"duration"`
	G          float64      `yaml:"g"`
	Softening  float64      `yaml:"softening"`
	Bodies     []BodyConfig `yaml:"bodies"`
}

// BodyConfig is one body of the scene. When AutoOrbit names another
// body, Vel is ignored and replaced by the circular-orbit velocity about
// that body; targets must be listed before their satellites so chained
// orbits resolve in order.
type BodyConfig struct {
	Name      string     `yaml:"name"`
	Mass      float64    `yaml:"mass"`
	Pos       [3]float64 `yaml:"pos"`
	Vel       [3]float64 `yaml:"vel,omitempty"`
	AutoOrbit string     `yaml:"auto_orbit,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:       "custom",
		Integrator: DefaultScheme,
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		G:          DefaultG,
		Softening:  DefaultSoftening,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 || math.IsNaN(c.Dt) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("dt must be positive, got %v", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.Duration)
	}
	if c.G <= 0 || math.IsNaN(c.G) || math.IsInf(c.G, 0) {
		return fmt.Errorf("g must be positive, got %v", c.G)
	}
	if c.Softening <= 0 || math.IsNaN(c.Softening) || math.IsInf(c.Softening, 0) {
		return fmt.Errorf("softening must be positive, got %v", c.Softening)
	}
	if len(c.Bodies) == 0 {
		return fmt.Errorf("no bodies configured")
	}

	names := make(map[string]int, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.Mass <= 0 || math.IsNaN(b.Mass) || math.IsInf(b.Mass, 0) {
			return fmt.Errorf("body %d (%s): mass must be positive, got %v", i, b.Name, b.Mass)
		}
		if b.Name != "" {
			if _, dup := names[b.Name]; dup {
				return fmt.Errorf("duplicate body name %q", b.Name)
			}
			names[b.Name] = i
		}
	}
	for i, b := range c.Bodies {
		if b.AutoOrbit == "" {
			continue
		}
		j, ok := names[b.AutoOrbit]
		if !ok {
			return fmt.Errorf("body %q: auto_orbit target %q not found", b.Name, b.AutoOrbit)
		}
		if j == i {
			return fmt.Errorf("body %q cannot orbit itself", b.Name)
		}
	}
	return nil
}

// Field returns the gravitational field the scene configures.
func (c *Config) Field() gravity.Field {
	return gravity.Field{G: c.G, Softening: c.Softening}
}

// ToWorld validates the scene and builds the initial world, resolving
// auto_orbit velocities in body order.
func (c *Config) ToWorld() (*orbit.World, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	bodies := make([]orbit.Body, len(c.Bodies))
	index := make(map[string]int, len(c.Bodies))
	for i, bc := range c.Bodies {
		bodies[i] = orbit.Body{
			Name: bc.Name,
			Mass: bc.Mass,
			Pos:  orbit.Vec3{X: bc.Pos[0], Y: bc.Pos[1], Z: bc.Pos[2]},
			Vel:  orbit.Vec3{X: bc.Vel[0], Y: bc.Vel[1], Z: bc.Vel[2]},
		}
		if bc.Name != "" {
			index[bc.Name] = i
		}
	}

	for i, bc := range c.Bodies {
		if bc.AutoOrbit == "" {
			continue
		}
		vel, err := orbitVelocity(c.G, bodies[index[bc.AutoOrbit]], bodies[i].Pos)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", bc.Name, err)
		}
		bodies[i].Vel = vel
	}

	return orbit.NewWorld(bodies)
}

// orbitVelocity returns the circular-orbit velocity about parent for a
// body at pos. The orbit plane is normal to +Y and the velocity is
// relative to the parent's own motion, so satellites of moving bodies
// work.
func orbitVelocity(g float64, parent orbit.Body, pos orbit.Vec3) (orbit.Vec3, error) {
	rel := pos.Sub(parent.Pos)
	r := rel.Norm()
	if r == 0 {
		return orbit.Vec3{}, fmt.Errorf("auto_orbit: coincident with %q", parent.Name)
	}
	tangent := rel.Cross(orbit.Vec3{Y: 1})
	if tangent.Norm() == 0 {
		return orbit.Vec3{}, fmt.Errorf("auto_orbit: position directly above %q has no orbit plane", parent.Name)
	}
	speed := gravity.CircularSpeed(g, parent.Mass, r)
	return parent.Vel.Add(tangent.Unit().Scale(speed)), nil
}

// BodyNames lists the configured body names in scene order; unnamed
// bodies get a positional fallback.
func (c *Config) BodyNames() []string {
	names := make([]string, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.Name != "" {
			names[i] = b.Name
		} else {
			names[i] = fmt.Sprintf("body-%d", i)
		}
	}
	return names
}

func sortedKeys(m map[string]*Config) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
