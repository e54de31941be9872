// internal/demo/demo_test.go
package demo

import "testing"

func TestRide(t *testing.T) {
	r, err := Ride()
	if err != nil {
		t.Fatalf("embedded ride failed to parse: %v", err)
	}
	if r.Source != Source {
		t.Errorf("source = %q", r.Source)
	}
	if len(r.Samples) != 1801 {
		t.Fatalf("want 1801 samples, got %d", len(r.Samples))
	}
	first, last := r.Samples[0], r.Samples[len(r.Samples)-1]
	if first.Time != 0 || first.HeartRate != 58 || first.HasCadence {
		t.Errorf("first sample wrong: %+v", first)
	}
	if last.Time != 1800 || last.HeartRate != 124 || last.Watts != 154 {
		t.Errorf("last sample wrong: %+v", last)
	}
}
