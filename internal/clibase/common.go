// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"ridehr-core/hrstats"
	"ridehr/internal/cliutil"
	"ridehr/internal/output"
)

// Common holds CLI fields shared by ridehr and ridehr-segments.
type Common struct {
	// Input
	Inputs []string
	Demo   bool

	// Segmentation
	Window    int
	SteadyCV  float64
	MinSteady int
	RampSplit int

	// Heart rate (registered by the full tool only)
	Target    int
	Tolerance int

	// Performance
	Threads int

	// Output
	Output           string // text|json|jsonl
	Sort             bool
	Header           bool
	NoSteadyExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --input/-i).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires the shared flags onto fs and returns a pointer to the
// "no-header" bool; the caller sets Common.Header = !noHeader after
// parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Inputs
	inVal := &sliceValue{dst: &c.Inputs}
	fs.Var(inVal, "input", "ride log(s): .tsv/.txt/.fit/.gpx (repeatable) or '-'")
	fs.Var(inVal, "i", "alias of --input")
	fs.BoolVar(&c.Demo, "demo", false, "analyze the built-in sample ride [false]")

	// Segmentation
	fs.IntVar(&c.Window, "window", 30, "power smoothing window, seconds [30]")
	fs.Float64Var(&c.SteadyCV, "steady-cv", 0.10, "max power CV for a steady segment [0.10]")
	fs.IntVar(&c.MinSteady, "min-steady", 300, "minimum steady duration, seconds [300]")
	fs.IntVar(&c.RampSplit, "ramp-split", 400, "fallback ramp/steady split, seconds [400]")

	// Performance
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", output.FormatText, "output: text | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", output.FormatText, "alias of --output")
	fs.BoolVar(&c.Sort, "sort", false, "sort outputs deterministically [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&c.NoSteadyExitCode, "no-steady-exit-code", 1, "exit code when no ride reaches steady state [1]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// RegisterHR adds the heart-rate target flags (ridehr only;
// ridehr-segments reports windows without evaluating HR).
func RegisterHR(fs *flag.FlagSet, c *Common) {
	fs.IntVar(&c.Target, "target", hrstats.DefaultTarget, "target heart rate, bpm [127]")
	fs.IntVar(&c.Tolerance, "tolerance", hrstats.DefaultTolerance, "in-band tolerance, bpm [5]")
}

// AfterParse finalizes header, folds positionals into Inputs, and runs
// shared validation.
func AfterParse(c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.Inputs = append(c.Inputs, exp...)
	}
	return Validate(c)
}

// Validate applies the CLI invariants shared by both tools.
func Validate(c *Common) error {
	switch {
	case c.Demo && len(c.Inputs) > 0:
		return errors.New("--demo conflicts with --input")
	case !c.Demo && len(c.Inputs) == 0:
		return errors.New("provide at least one ride log (or --demo)")
	}
	if c.Window <= 0 {
		return errors.New("--window must be > 0")
	}
	if c.SteadyCV <= 0 {
		return errors.New("--steady-cv must be > 0")
	}
	if c.MinSteady <= 0 {
		return errors.New("--min-steady must be > 0")
	}
	if c.RampSplit <= 0 {
		return errors.New("--ramp-split must be > 0")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch c.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.NoSteadyExitCode < 0 || c.NoSteadyExitCode > 255 {
		return errors.New("--no-steady-exit-code must be between 0 and 255")
	}
	if c.Target != 0 || c.Tolerance != 0 {
		if c.Target <= 0 || c.Target > 250 {
			return errors.New("--target must be between 1 and 250 bpm")
		}
		if c.Tolerance < 0 {
			return errors.New("--tolerance must be ≥ 0")
		}
	}
	return nil
}
