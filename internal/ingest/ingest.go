// internal/ingest/ingest.go
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"ridehr-core/ride"
)

// Load parses one ride log, dispatching on file extension:
// .tsv/.txt (or "-" for stdin) as tab-separated workout logs,
// .fit as FIT activity files, .gpx as GPX tracks.
func Load(ctx context.Context, path string) (*ride.Ride, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "-" {
		return ride.Load(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt", "":
		return ride.Load(path)
	case ".fit":
		return loadFIT(path)
	case ".gpx":
		return loadGPX(path)
	default:
		return nil, fmt.Errorf("%s: unsupported ride log format", path)
	}
}
