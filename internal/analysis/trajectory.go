package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/mkol/gravsim/internal/orbit"
)

// RadialSeries extracts |pos(body) - pos(center)| per frame; a negative
// center measures from the world origin.
func RadialSeries(frames [][]orbit.BodyState, body, center int) []float64 {
	radii := make([]float64, 0, len(frames))
	for _, frame := range frames {
		if body >= len(frame) {
			continue
		}
		ref := orbit.Vec3{}
		if center >= 0 && center < len(frame) {
			ref = frame[center].Pos
		}
		radii = append(radii, frame[body].Pos.Dist(ref))
	}
	return radii
}

// DominantPeriod finds the strongest cycle in a uniformly sampled series
// via the power spectrum. Returns 0 when no cycle stands out. Resolution
// is limited to one frequency bin, so short recordings give coarse
// periods.
func DominantPeriod(series []float64, dt float64) float64 {
	if len(series) < 4 || dt <= 0 {
		return 0
	}

	detrended := make([]float64, len(series))
	mean := stat.Mean(series, nil)
	for i, v := range series {
		detrended[i] = v - mean
	}

	padded := padPow2(detrended)
	ps := PowerSpectrum(padded)

	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if ps[peak] == 0 {
		return 0
	}

	return float64(len(padded)) * dt / float64(peak)
}

// RadialDrift fits radius against time and returns the slope, the
// secular rate at which an orbit spirals in or out.
func RadialDrift(times, radii []float64) float64 {
	if len(times) < 2 || len(times) != len(radii) {
		return 0
	}
	_, beta := stat.LinearRegression(times, radii, nil, false)
	return beta
}

// Eccentricity estimates orbit shape from radial excursion:
// (rmax - rmin) / (rmax + rmin). Zero for a perfect circle.
func Eccentricity(radii []float64) float64 {
	if len(radii) == 0 {
		return 0
	}
	rmin, rmax := radii[0], radii[0]
	for _, r := range radii {
		if r < rmin {
			rmin = r
		}
		if r > rmax {
			rmax = r
		}
	}
	if rmax+rmin == 0 {
		return 0
	}
	return (rmax - rmin) / (rmax + rmin)
}
