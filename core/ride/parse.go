// core/ride/parse.go
package ride

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseTSV reads a tab-separated workout log:
//
//	time	watts	cadence	heartrate
//	0	0		58
//	1	14		56
//
// A header row and '#' comments are skipped. Watts and cadence may be
// blank; time and heartrate are required. Time must be strictly
// increasing. name is used in error messages only.
func ParseTSV(r io.Reader, name string) (*Ride, error) {
	out := &Ride{Source: name}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		f := splitRow(line)
		if len(out.Samples) == 0 && isHeader(f) {
			continue
		}
		s, err := parseRow(f)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", name, ln, err)
		}
		if n := len(out.Samples); n > 0 && s.Time <= out.Samples[n-1].Time {
			return nil, fmt.Errorf("%s:%d: time %d not increasing (previous %d)",
				name, ln, s.Time, out.Samples[n-1].Time)
		}
		out.Samples = append(out.Samples, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: scan: %w", name, err)
	}
	if len(out.Samples) < 2 {
		return nil, fmt.Errorf("%s: need at least 2 samples, got %d", name, len(out.Samples))
	}
	return out, nil
}

// Load parses a workout log from path ("-" = stdin).
func Load(path string) (*Ride, error) {
	if path == "-" {
		return ParseTSV(os.Stdin, "stdin")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ParseTSV(fh, path)
}

// splitRow splits on tabs so blank columns survive; rows with no tabs
// fall back to whitespace fields (hand-edited logs).
func splitRow(line string) []string {
	if strings.ContainsRune(line, '\t') {
		f := strings.Split(line, "\t")
		for i := range f {
			f[i] = strings.TrimSpace(f[i])
		}
		return f
	}
	return strings.Fields(line)
}

func isHeader(f []string) bool {
	return len(f) > 0 && strings.EqualFold(f[0], "time")
}

func parseRow(f []string) (Sample, error) {
	var s Sample
	if len(f) != 4 && len(f) != 2 {
		return s, fmt.Errorf("bad field count %d (want time watts cadence heartrate)", len(f))
	}
	t, err := strconv.Atoi(f[0])
	if err != nil {
		return s, fmt.Errorf("bad time %q", f[0])
	}
	if t < 0 {
		return s, fmt.Errorf("negative time %d", t)
	}
	s.Time = t

	hrField := f[len(f)-1]
	hr, err := strconv.Atoi(hrField)
	if err != nil {
		return s, fmt.Errorf("bad heartrate %q", hrField)
	}
	if hr <= 0 {
		return s, fmt.Errorf("heartrate %d out of range", hr)
	}
	s.HeartRate = hr

	if len(f) == 4 {
		if f[1] != "" {
			w, err := strconv.Atoi(f[1])
			if err != nil || w < 0 {
				return s, fmt.Errorf("bad watts %q", f[1])
			}
			s.Watts, s.HasWatts = w, true
		}
		if f[2] != "" {
			c, err := strconv.Atoi(f[2])
			if err != nil || c < 0 {
				return s, fmt.Errorf("bad cadence %q", f[2])
			}
			s.Cadence, s.HasCadence = c, true
		}
	}
	return s, nil
}
