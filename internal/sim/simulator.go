package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/mkol/gravsim/internal/orbit"
)

// Config drives offline runs. Dt lives on the Simulator itself; Duration
// is simulated time, not wall time.
type Config struct {
	Duration      float64
	Record        bool
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Duration:      60,
		Record:        true,
		ValidateState: true,
	}
}

// Result collects a finished run. Frames are index-aligned with Times and
// hold one BodyState per body, in world order; both stay nil when the run
// was not recorded.
type Result struct {
	Times       []float64
	Frames      [][]orbit.BodyState
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}

// energyComputer is satisfied by accelerators that can report total
// energy (gravity.Field does); drift bookkeeping is skipped otherwise.
type energyComputer interface {
	Energy(bodies []orbit.Body) float64
}

// Simulator owns a world and advances it in fixed steps. Not safe for
// concurrent use; one goroutine drives it and readers look at the world
// only between steps.
type Simulator struct {
	world     *orbit.World
	field     orbit.Accelerator
	integ     orbit.Integrator
	clock     *Clock
	metrics   []orbit.Metric
	observers []orbit.Observer

	initial []orbit.BodyState
	steps   int
	time    float64
}

func New(w *orbit.World, field orbit.Accelerator, integ orbit.Integrator, dt float64) (*Simulator, error) {
	if w == nil {
		return nil, fmt.Errorf("sim: nil world")
	}
	if field == nil {
		return nil, fmt.Errorf("sim: nil accelerator")
	}
	if integ == nil {
		return nil, fmt.Errorf("sim: nil integrator")
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("dt %v: %w", dt, orbit.ErrInvalidTimestep)
	}
	return &Simulator{
		world:   w,
		field:   field,
		integ:   integ,
		clock:   NewClock(dt),
		initial: w.Snapshot(),
	}, nil
}

func (s *Simulator) AddMetric(m orbit.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o orbit.Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) World() *orbit.World          { return s.world }
func (s *Simulator) Field() orbit.Accelerator     { return s.field }
func (s *Simulator) Integrator() orbit.Integrator { return s.integ }
func (s *Simulator) Clock() *Clock                { return s.clock }
func (s *Simulator) Dt() float64                  { return s.clock.Dt }
func (s *Simulator) Time() float64                { return s.time }
func (s *Simulator) Steps() int                   { return s.steps }

// SetField swaps the acceleration field; the live view uses this to tune
// G and softening mid-flight.
func (s *Simulator) SetField(field orbit.Accelerator) {
	if field != nil {
		s.field = field
	}
}

// SetDt changes the fixed timestep. The clock's remainder is kept, so
// time already fed by the host is not lost.
func (s *Simulator) SetDt(dt float64) error {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("dt %v: %w", dt, orbit.ErrInvalidTimestep)
	}
	s.clock.Dt = dt
	return nil
}

// Step runs exactly one evaluate-then-integrate cycle at the fixed dt,
// then notifies metrics and observers.
func (s *Simulator) Step() {
	s.integ.Step(s.field, s.world.Bodies, s.clock.Dt)
	s.steps++
	s.time += s.clock.Dt
	for _, m := range s.metrics {
		m.Observe(s.world, s.time)
	}
	for _, o := range s.observers {
		o.OnStep(s.world, s.steps, s.time)
	}
}

// Advance is the tick-driver boundary: feed it the real elapsed time
// since the host's previous frame and it runs zero or more fixed steps,
// carrying any sub-dt remainder. Returns the number of steps taken.
func (s *Simulator) Advance(elapsed float64) int {
	n := s.clock.Advance(elapsed)
	for i := 0; i < n; i++ {
		s.Step()
	}
	return n
}

// Reset rewinds the world to its construction snapshot and zeroes the
// step counter, sim time, clock remainder and metrics.
func (s *Simulator) Reset() {
	s.world.Restore(s.initial)
	s.steps = 0
	s.time = 0
	s.clock.Reset()
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Run drives the cycle for cfg.Duration of simulated time, checking ctx
// between steps. An invalid state (NaN/Inf) under cfg.ValidateState stops
// the run early with the step recorded in Errors; everything simulated up
// to that point is still returned.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}

	steps := int(cfg.Duration / s.clock.Dt)
	result := &Result{Metrics: make(map[string]float64)}
	if cfg.Record {
		result.Times = make([]float64, 0, steps+1)
		result.Frames = make([][]orbit.BodyState, 0, steps+1)
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(s.world, s.time)
	}

	initialEnergy := s.computeEnergy()
	startSteps := s.steps

	if cfg.Record {
		result.Times = append(result.Times, s.time)
		result.Frames = append(result.Frames, s.world.Snapshot())
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			result.StepsTaken = s.steps - startSteps
			return result, ctx.Err()
		default:
		}

		s.Step()

		if cfg.ValidateState && !s.world.IsValid() {
			result.Errors = append(result.Errors, &orbit.StepError{
				Step: s.steps,
				Time: s.time,
				Err:  orbit.ErrInvalidState,
			})
			break
		}

		if cfg.Record {
			result.Times = append(result.Times, s.time)
			result.Frames = append(result.Frames, s.world.Snapshot())
		}
	}

	result.StepsTaken = s.steps - startSteps

	finalEnergy := s.computeEnergy()
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) computeEnergy() float64 {
	if ec, ok := s.field.(energyComputer); ok {
		return ec.Energy(s.world.Bodies)
	}
	return 0
}
