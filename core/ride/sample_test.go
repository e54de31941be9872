// core/ride/sample_test.go
package ride

import "testing"

func mkRide(times ...int) *Ride {
	r := &Ride{Source: "test"}
	for _, t := range times {
		r.Samples = append(r.Samples, Sample{Time: t, HeartRate: 100})
	}
	return r
}

func TestDuration(t *testing.T) {
	if d := mkRide(0, 1, 2, 10).Duration(); d != 10 {
		t.Errorf("duration = %d, want 10", d)
	}
	if d := (&Ride{}).Duration(); d != 0 {
		t.Errorf("empty duration = %d, want 0", d)
	}
}

func TestSlice(t *testing.T) {
	r := mkRide(0, 1, 2, 3, 4, 5)
	got := r.Slice(2, 5)
	if len(got) != 3 || got[0].Time != 2 || got[2].Time != 4 {
		t.Errorf("Slice(2,5) = %+v", got)
	}
	if got := r.Slice(10, 20); len(got) != 0 {
		t.Errorf("out-of-range slice = %+v", got)
	}
}

func TestMeanWatts_MissingValues(t *testing.T) {
	samples := []Sample{
		{Time: 0, HeartRate: 100, Watts: 100, HasWatts: true},
		{Time: 1, HeartRate: 100}, // dropout
		{Time: 2, HeartRate: 100, Watts: 200, HasWatts: true},
	}
	mean, ok := MeanWatts(samples)
	if !ok || mean != 150 {
		t.Errorf("MeanWatts = %v ok=%v, want 150 true", mean, ok)
	}
	if _, ok := MeanWatts(samples[1:2]); ok {
		t.Error("MeanWatts over dropouts should report !ok")
	}
}

func TestMeanCadence(t *testing.T) {
	samples := []Sample{
		{Time: 0, HeartRate: 100, Cadence: 80, HasCadence: true},
		{Time: 1, HeartRate: 100, Cadence: 90, HasCadence: true},
	}
	mean, ok := MeanCadence(samples)
	if !ok || mean != 85 {
		t.Errorf("MeanCadence = %v ok=%v, want 85 true", mean, ok)
	}
}
