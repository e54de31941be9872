// internal/demo/demo.go
package demo

import (
	_ "embed"
	"strings"

	"ridehr-core/ride"
)

// Source names the built-in ride in reports and error messages.
const Source = "builtin:trainerday-hrplus"

// ride.tsv is a complete 1 Hz capture of the kind of session this tool
// was written for: a ~400 s ramp-up into a long steady block held
// against a 127 bpm target.
//
//go:embed ride.tsv
var data string

// Ride parses the embedded sample ride.
func Ride() (*ride.Ride, error) {
	return ride.ParseTSV(strings.NewReader(data), Source)
}
