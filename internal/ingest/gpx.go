// internal/ingest/gpx.go
package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tkrajina/gpxgo/gpx"

	"ridehr-core/ride"
)

// loadGPX reads a GPX track into a ride. Heart rate, cadence and power
// come from TrackPointExtension child nodes (hr/cad/power), matched by
// local name; points without a heart rate are skipped.
func loadGPX(path string) (*ride.Ride, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: gpx parse: %w", path, err)
	}

	out := &ride.Ride{Source: path}
	var t0 time.Time
	prev := -1
	for _, trk := range g.Tracks {
		for _, seg := range trk.Segments {
			for i := range seg.Points {
				pt := &seg.Points[i]
				hr, ok := extInt(&pt.Extensions, "hr")
				if !ok || pt.Timestamp.IsZero() {
					continue
				}
				if t0.IsZero() {
					t0 = pt.Timestamp
				}
				t := int(pt.Timestamp.Sub(t0).Seconds())
				if t <= prev && prev >= 0 {
					continue
				}
				prev = t

				s := ride.Sample{Time: t, HeartRate: hr}
				if cad, ok := extInt(&pt.Extensions, "cad"); ok {
					s.Cadence, s.HasCadence = cad, true
				}
				if w, ok := extInt(&pt.Extensions, "power"); ok {
					s.Watts, s.HasWatts = w, true
				}
				out.Samples = append(out.Samples, s)
			}
		}
	}
	if len(out.Samples) < 2 {
		return nil, fmt.Errorf("%s: no heart-rate track points", path)
	}
	return out, nil
}

func extInt(ext *gpx.Extension, name string) (int, bool) {
	for i := range ext.Nodes {
		if v, ok := nodeInt(&ext.Nodes[i], name); ok {
			return v, true
		}
	}
	return 0, false
}

func nodeInt(n *gpx.ExtensionNode, name string) (int, bool) {
	if strings.EqualFold(n.XMLName.Local, name) {
		v, err := strconv.Atoi(strings.TrimSpace(n.Data))
		if err == nil {
			return v, true
		}
	}
	for i := range n.Nodes {
		if v, ok := nodeInt(&n.Nodes[i], name); ok {
			return v, true
		}
	}
	return 0, false
}
