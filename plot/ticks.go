// SPDX-License-Identifier: MIT
// Package: paraxial/plot
//
// ticks.go — tick placement and label formatting shared by surfaces.

package plot

import (
	"math"
	"strconv"
)

// NiceStep rounds raw up to 1, 2 or 5 times a power of ten.
// Non-positive or non-finite input yields 1.
func NiceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	frac := raw / pow
	switch {
	case frac <= 1:
		return 1 * pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

// Ticks returns evenly spaced tick positions covering [lo, hi] with about
// target intervals. The step is a NiceStep.
func Ticks(lo, hi float64, target int) []float64 {
	if !(hi > lo) || target < 1 || math.IsInf(hi-lo, 0) {
		return nil
	}
	step := NiceStep((hi - lo) / float64(target))
	start := math.Ceil(lo/step) * step

	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		// Snap to the step grid so labels read "0.3", not "0.30000000000000004".
		out = append(out, Round(v, decimalsFor(step)))
	}
	return out
}

// decimalsFor is the number of decimals needed to print multiples of step.
func decimalsFor(step float64) int {
	d := -int(math.Floor(math.Log10(step)))
	if d < 0 {
		return 0
	}
	return d
}

// Round rounds v to the given number of decimals, half away from zero.
// A negative zero result is normalised to +0.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// FormatTick renders a tick value with the shortest exact representation.
func FormatTick(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// InvertedLabels labels every tick with its negated value rounded to two
// decimals, so the diagram reads as if the x-axis were mirrored.
func InvertedLabels(ticks []float64) []string {
	labels := make([]string, len(ticks))
	for i, v := range ticks {
		labels[i] = FormatTick(Round(-v, 2))
	}
	return labels
}
