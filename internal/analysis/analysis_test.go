package analysis

import (
	"math"
	"testing"

	"github.com/mkol/gravsim/internal/orbit"
)

func TestFFTConstant(t *testing.T) {
	data := []float64{2, 2, 2, 2, 2, 2, 2, 2}
	ps := PowerSpectrum(data)

	if math.Abs(ps[0]-16) > 1e-9 {
		t.Errorf("expected DC magnitude 16, got %g", ps[0])
	}
	for k := 1; k < len(ps); k++ {
		if ps[k] > 1e-9 {
			t.Errorf("expected empty bin %d, got %g", k, ps[k])
		}
	}
}

func TestFFTSineBin(t *testing.T) {
	n := 16
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 2 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	if math.Abs(ps[2]-8) > 1e-9 {
		t.Errorf("expected magnitude n/2=8 at bin 2, got %g", ps[2])
	}
	for k := range ps {
		if k != 2 && ps[k] > 1e-9 {
			t.Errorf("unexpected energy at bin %d: %g", k, ps[k])
		}
	}
}

func TestPadPow2(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i)
	}

	padded := padPow2(data)
	if len(padded) != 128 {
		t.Fatalf("expected length 128, got %d", len(padded))
	}
	for i := 0; i < 100; i++ {
		if padded[i] != data[i] {
			t.Fatalf("sample %d changed", i)
		}
	}
	for i := 100; i < 128; i++ {
		if padded[i] != 0 {
			t.Fatalf("padding %d not zero", i)
		}
	}

	if len(padPow2(data[:64])) != 64 {
		t.Error("power-of-two input should not be padded")
	}
}

func TestDominantPeriodSine(t *testing.T) {
	n := 128
	dt := 0.25
	series := make([]float64, n)
	for i := range series {
		// Period of 16 samples riding on a DC offset.
		series[i] = 5 + math.Sin(2*math.Pi*float64(i)/16)
	}

	period := DominantPeriod(series, dt)
	want := 16 * dt
	if math.Abs(period-want) > 1e-12 {
		t.Errorf("expected period %g, got %g", want, period)
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	series := []float64{3, 3, 3, 3, 3, 3, 3, 3}
	if p := DominantPeriod(series, 0.1); p != 0 {
		t.Errorf("expected no period for flat series, got %g", p)
	}
}

func TestDominantPeriodDegenerate(t *testing.T) {
	if p := DominantPeriod([]float64{1, 2}, 0.1); p != 0 {
		t.Errorf("expected 0 for short series, got %g", p)
	}
	if p := DominantPeriod(make([]float64, 64), 0); p != 0 {
		t.Errorf("expected 0 for zero dt, got %g", p)
	}
}

func TestRadialDriftLinear(t *testing.T) {
	n := 100
	times := make([]float64, n)
	radii := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * 0.1
		radii[i] = 2 + 0.5*times[i]
	}

	if drift := RadialDrift(times, radii); math.Abs(drift-0.5) > 1e-9 {
		t.Errorf("expected drift 0.5, got %g", drift)
	}
}

func TestRadialDriftFlat(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	radii := []float64{3, 3, 3, 3}
	if drift := RadialDrift(times, radii); drift != 0 {
		t.Errorf("expected zero drift, got %g", drift)
	}
}

func TestEccentricity(t *testing.T) {
	if e := Eccentricity([]float64{2, 3, 4}); math.Abs(e-1.0/3) > 1e-12 {
		t.Errorf("expected 1/3, got %g", e)
	}
	if e := Eccentricity([]float64{5, 5, 5}); e != 0 {
		t.Errorf("expected 0 for a circle, got %g", e)
	}
	if e := Eccentricity(nil); e != 0 {
		t.Errorf("expected 0 for empty series, got %g", e)
	}
}

func TestRadialSeries(t *testing.T) {
	frames := make([][]orbit.BodyState, 32)
	for i := range frames {
		th := 2 * math.Pi * float64(i) / 32
		frames[i] = []orbit.BodyState{
			{Pos: orbit.Vec3{X: 5}},
			{Pos: orbit.Vec3{X: 5 + 2*math.Cos(th), Z: 2 * math.Sin(th)}},
		}
	}

	about := RadialSeries(frames, 1, 0)
	if len(about) != 32 {
		t.Fatalf("expected 32 samples, got %d", len(about))
	}
	for i, r := range about {
		if math.Abs(r-2) > 1e-12 {
			t.Errorf("sample %d: expected radius 2 about center, got %g", i, r)
		}
	}

	// Measured from the origin instead, the radius varies with phase.
	origin := RadialSeries(frames, 1, -1)
	if Eccentricity(origin) < 0.1 {
		t.Error("expected origin-relative radius to vary")
	}
}
