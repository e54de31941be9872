// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"ridehr/internal/clibase"
	"ridehr/internal/cliutil"
	"ridehr/internal/version"
)

// Options holds all ridehr flags and arguments.
type Options struct {
	clibase.Common
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: heart-rate target analysis for cycling workout logs

Parses tab-separated ride logs (time, watts, cadence, heartrate; FIT and
GPX also accepted), splits each ride into its ramp-up and steady-state
windows, and evaluates observed heart rate against the target.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
// Positional arguments are treated as ride logs.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	noHeader := clibase.Register(fs, &opt.Common)
	clibase.RegisterHR(fs, &opt.Common)
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if err := clibase.AfterParse(&opt.Common, noHeader, posArgs); err != nil {
		return opt, err
	}
	return opt, nil
}
