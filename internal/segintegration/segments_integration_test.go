// internal/segintegration/segments_integration_test.go
package segintegration

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ridehr/internal/segapp"
)

func writeRide(t *testing.T, rampLen, total int) string {
	t.Helper()
	var sb strings.Builder
	for ts := 0; ts < total; ts++ {
		w := 150
		if ts < rampLen {
			w = ts * 150 / rampLen
		} else if ts%2 == 0 {
			w = 152
		}
		fmt.Fprintf(&sb, "%d\t%d\t80\t120\n", ts, w)
	}
	path := filepath.Join(t.TempDir(), "ride.tsv")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("write ride: %v", err)
	}
	return path
}

func TestSegmentsEndToEnd(t *testing.T) {
	path := writeRide(t, 400, 900)

	var out, errBuf bytes.Buffer
	code := segapp.Run([]string{path}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 { // header + ramp + steady
		t.Fatalf("want 3 lines:\n%s", out.String())
	}
	if got := len(strings.Split(lines[1], "\t")); got != 7 {
		t.Fatalf("segments view should have 7 columns, got %d", got)
	}
}

func TestSegmentsRejectsHRFlags(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := segapp.Run([]string{"--target", "130", "ride.tsv"}, &out, &errBuf); code != 2 {
		t.Fatalf("want exit 2 for unknown flag, got %d", code)
	}
}
