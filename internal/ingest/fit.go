// internal/ingest/fit.go
package ingest

import (
	"fmt"
	"os"
	"time"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/basetype"
	"github.com/muktihari/fit/profile/filedef"

	"ridehr-core/ride"
)

// loadFIT decodes a FIT activity file into a ride. Record timestamps are
// rebased to seconds from the first usable record; records without a
// heart-rate reading are skipped.
func loadFIT(path string) (*ride.Ride, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	lis := filedef.NewListener()
	defer lis.Close()

	dec := decoder.New(f,
		decoder.WithMesgListener(lis),
		decoder.WithBroadcastOnly(),
	)
	if _, err := dec.Decode(); err != nil {
		return nil, fmt.Errorf("%s: fit decode: %w", path, err)
	}

	act, ok := lis.File().(*filedef.Activity)
	if !ok {
		return nil, fmt.Errorf("%s: not a FIT activity file", path)
	}

	out := &ride.Ride{Source: path}
	var t0 time.Time
	prev := -1
	for _, rec := range act.Records {
		if rec.HeartRate == basetype.Uint8Invalid || rec.Timestamp.IsZero() {
			continue
		}
		if t0.IsZero() {
			t0 = rec.Timestamp
		}
		t := int(rec.Timestamp.Sub(t0).Seconds())
		if t <= prev && prev >= 0 {
			continue // duplicate or out-of-order record
		}
		prev = t

		s := ride.Sample{Time: t, HeartRate: int(rec.HeartRate)}
		if rec.Power != basetype.Uint16Invalid {
			s.Watts, s.HasWatts = int(rec.Power), true
		}
		if rec.Cadence != basetype.Uint8Invalid {
			s.Cadence, s.HasCadence = int(rec.Cadence), true
		}
		out.Samples = append(out.Samples, s)
	}
	if len(out.Samples) < 2 {
		return nil, fmt.Errorf("%s: no heart-rate records", path)
	}
	return out, nil
}
