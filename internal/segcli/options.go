// internal/segcli/options.go
package segcli

import (
	"flag"
	"fmt"

	"ridehr/internal/clibase"
	"ridehr/internal/cliutil"
	"ridehr/internal/version"
)

// Options holds the ridehr-segments flags and arguments.
type Options struct {
	clibase.Common
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: ramp-up / steady-state boundaries for cycling workout logs

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses the segments-tool flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	noHeader := clibase.Register(fs, &opt.Common)
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
