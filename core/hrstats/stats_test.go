// core/hrstats/stats_test.go
package hrstats

import (
	"math"
	"testing"

	"ridehr-core/ride"
)

func hrSamples(hrs ...int) []ride.Sample {
	out := make([]ride.Sample, 0, len(hrs))
	for i, hr := range hrs {
		out = append(out, ride.Sample{Time: i, HeartRate: hr})
	}
	return out
}

func TestEvaluate(t *testing.T) {
	sum := Evaluate(hrSamples(120, 125, 130, 125), 127, 5)

	if sum.Samples != 4 {
		t.Fatalf("samples = %d", sum.Samples)
	}
	if sum.MeanHR != 125 || sum.MinHR != 120 || sum.MaxHR != 130 {
		t.Errorf("mean/min/max = %v/%d/%d", sum.MeanHR, sum.MinHR, sum.MaxHR)
	}
	if sum.MeanDev != -2 {
		t.Errorf("meanDev = %v, want -2", sum.MeanDev)
	}
	// 120 is 7 bpm off target; the rest are in band.
	if sum.TimeInBand != 3 || sum.PctInBand != 75 {
		t.Errorf("inBand = %d (%v%%), want 3 (75%%)", sum.TimeInBand, sum.PctInBand)
	}
	// second half (130,125) vs first half (120,125)
	if sum.Drift != 5 {
		t.Errorf("drift = %v, want +5", sum.Drift)
	}
	if math.Abs(sum.StdDevHR-math.Sqrt(12.5)) > 1e-9 {
		t.Errorf("sd = %v, want sqrt(12.5)", sum.StdDevHR)
	}
}

func TestEvaluate_OnTarget(t *testing.T) {
	sum := Evaluate(hrSamples(127, 127, 127), 127, 5)
	if sum.MeanDev != 0 || sum.PctInBand != 100 || sum.StdDevHR != 0 {
		t.Errorf("on-target summary wrong: %+v", sum)
	}
}

func TestEvaluate_Empty(t *testing.T) {
	if sum := Evaluate(nil, 127, 5); sum != (Summary{}) {
		t.Errorf("empty window should be zero Summary, got %+v", sum)
	}
}

func TestEvaluate_ZeroTolerance(t *testing.T) {
	sum := Evaluate(hrSamples(127, 128), 127, 0)
	if sum.TimeInBand != 1 {
		t.Errorf("zero tolerance inBand = %d, want 1", sum.TimeInBand)
	}
}
