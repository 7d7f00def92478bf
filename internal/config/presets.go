package config

// Presets are ready-to-run scenes. "solar" uses hand-tuned sub-circular
// velocities and traces visibly elliptical orbits; "circular" is the
// same system with auto-derived circular speeds.
var Presets = map[string]*Config{
	"solar": {
		Name:       "solar",
		Integrator: "symplectic-euler",
		Dt:         1.0 / 60,
		Duration:   120,
		G:          0.1,
		Softening:  2,
		Bodies: []BodyConfig{
			{Name: "sun", Mass: 1000},
			{Name: "inner", Mass: 5, Pos: [3]float64{12, 0, 0}, Vel: [3]float64{0, 0, 0.8}},
			{Name: "middle", Mass: 8, Pos: [3]float64{20, 0, 0}, Vel: [3]float64{0, 0, 0.6}},
			{Name: "outer", Mass: 6, Pos: [3]float64{30, 0, 0}, Vel: [3]float64{0, 0, 0.4}},
		},
	},
	"circular": {
		Name:       "circular",
		Integrator: "symplectic-euler",
		Dt:         1.0 / 60,
		Duration:   200,
		G:          0.1,
		Softening:  2,
		Bodies: []BodyConfig{
			{Name: "sun", Mass: 1000},
			{Name: "inner", Mass: 5, Pos: [3]float64{12, 0, 0}, AutoOrbit: "sun"},
			{Name: "middle", Mass: 8, Pos: [3]float64{20, 0, 0}, AutoOrbit: "sun"},
			{Name: "outer", Mass: 6, Pos: [3]float64{30, 0, 0}, AutoOrbit: "sun"},
		},
	},
	"binary": {
		Name:       "binary",
		Integrator: "symplectic-euler",
		Dt:         0.005,
		Duration:   50,
		G:          1,
		Softening:  0.05,
		Bodies: []BodyConfig{
			{Name: "a", Mass: 8, Pos: [3]float64{-2, 0, 0}, Vel: [3]float64{0, -1, 0}},
			{Name: "b", Mass: 8, Pos: [3]float64{2, 0, 0}, Vel: [3]float64{0, 1, 0}},
		},
	},
	"figure8": {
		Name:       "figure8",
		Integrator: "leapfrog",
		Dt:         0.002,
		Duration:   40,
		G:          1,
		Softening:  0.05,
		Bodies: []BodyConfig{
			{Name: "a", Mass: 1, Pos: [3]float64{-1, 0, 0}, Vel: [3]float64{0.347, 0.532, 0}},
			{Name: "b", Mass: 1, Pos: [3]float64{1, 0, 0}, Vel: [3]float64{0.347, 0.532, 0}},
			{Name: "c", Mass: 1, Pos: [3]float64{0, 0, 0}, Vel: [3]float64{-0.694, -1.064, 0}},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	return sortedKeys(Presets)
}
