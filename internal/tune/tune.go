// Package tune sweeps integration parameters over a scene and scores
// each combination, to find timestep and softening values that keep a
// configuration stable.
package tune

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/mkol/gravsim/internal/config"
	"github.com/mkol/gravsim/internal/integrators"
	"github.com/mkol/gravsim/internal/metrics"
	"github.com/mkol/gravsim/internal/sim"
)

type Params struct {
	Dt        float64 `json:"dt"`
	Softening float64 `json:"softening"`
}

// Outcome is one grid cell's run summary. Score is energy drift plus
// penalties for escape and for separations below the clamp radius;
// failed runs score +Inf.
type Outcome struct {
	Params
	Score         float64
	EnergyDrift   float64
	MaxRadius     float64
	MinSeparation float64
	Err           error
}

// Sweep is a cartesian grid over timestep and softening.
type Sweep struct {
	Dts        []float64
	Softenings []float64
	Workers    int
}

func NewSweep(dts, softenings []float64) *Sweep {
	return &Sweep{
		Dts:        dts,
		Softenings: softenings,
		Workers:    runtime.NumCPU(),
	}
}

// Run evaluates every grid cell against the base scene and returns all
// outcomes sorted by ascending score.
func (s *Sweep) Run(ctx context.Context, base *config.Config) ([]Outcome, error) {
	if len(s.Dts) == 0 || len(s.Softenings) == 0 {
		return nil, fmt.Errorf("tune: empty grid")
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	type job struct {
		idx    int
		params Params
	}

	n := len(s.Dts) * len(s.Softenings)
	outcomes := make([]Outcome, n)
	jobs := make(chan job)

	workers := s.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				outcomes[j.idx] = evaluate(ctx, base, j.params)
			}
		}()
	}

	idx := 0
feed:
	for _, dt := range s.Dts {
		for _, eps := range s.Softenings {
			select {
			case <-ctx.Done():
				break feed
			case jobs <- job{idx: idx, params: Params{Dt: dt, Softening: eps}}:
				idx++
			}
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Score < outcomes[j].Score
	})
	return outcomes, nil
}

// Best returns the first outcome that completed cleanly. Expects the
// sorted slice Run produces.
func Best(outcomes []Outcome) (Outcome, bool) {
	for _, o := range outcomes {
		if o.Err == nil && !math.IsInf(o.Score, 1) {
			return o, true
		}
	}
	return Outcome{}, false
}

func evaluate(ctx context.Context, base *config.Config, p Params) Outcome {
	out := Outcome{Params: p, Score: math.Inf(1)}

	cfg := *base
	cfg.Dt = p.Dt
	cfg.Softening = p.Softening

	w, err := cfg.ToWorld()
	if err != nil {
		out.Err = err
		return out
	}
	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		out.Err = err
		return out
	}

	runner, err := sim.New(w, cfg.Field(), integ, cfg.Dt)
	if err != nil {
		out.Err = err
		return out
	}

	com := w.CenterOfMass()
	runner.AddMetric(metrics.NewMaxRadius(com))
	runner.AddMetric(metrics.NewMinSeparation())

	// Anything beyond four times the initial extent counts as escaped.
	escape := 4 * w.MaxRadius(com)
	if escape <= 0 {
		escape = 1
	}

	res, err := runner.Run(ctx, sim.Config{
		Duration:      cfg.Duration,
		Record:        false,
		ValidateState: true,
	})
	if err != nil {
		out.Err = err
		return out
	}

	out.EnergyDrift = res.EnergyDrift
	out.MaxRadius = res.Metrics["max_radius"]
	out.MinSeparation = res.Metrics["min_separation"]

	if len(res.Errors) > 0 {
		out.Err = res.Errors[0]
		return out
	}

	out.Score = out.EnergyDrift
	if out.MaxRadius > escape {
		out.Score += out.MaxRadius/escape - 1
	}
	// A separation below the clamp radius means the force law saturated.
	if out.MinSeparation < cfg.Softening {
		out.Score++
	}
	if math.IsNaN(out.Score) {
		out.Score = math.Inf(1)
	}
	return out
}
