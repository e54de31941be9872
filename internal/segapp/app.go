// internal/segapp/app.go
package segapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"ridehr-core/hrstats"
	"ridehr-core/segment"
	"ridehr/internal/appcore"
	"ridehr/internal/report"
	"ridehr/internal/segcli"
	"ridehr/internal/version"
	"ridehr/internal/visitors"
)

// RunContext parses argv and runs the segments-only tool.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := segcli.NewFlagSet("ridehr-segments")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := segcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "ridehr-segments version %s\n", version.Version)
		return 0
	}

	coreOpts := appcore.Options{
		Inputs: opts.Inputs,
		Demo:   opts.Demo,
		Detector: segment.Config{
			Window:        opts.Window,
			SteadyCV:      opts.SteadyCV,
			MinSteady:     opts.MinSteady,
			FallbackSplit: opts.RampSplit,
		},
		// json/jsonl output carries the HR evaluation either way; pin
		// the documented defaults so those fields stay meaningful.
		Target:           hrstats.DefaultTarget,
		Tolerance:        hrstats.DefaultTolerance,
		Threads:          opts.Threads,
		Quiet:            opts.Quiet,
		NoSteadyExitCode: opts.NoSteadyExitCode,
	}
	writer := appcore.NewSegmentWriterFactory(opts.Output, opts.Sort, opts.Header)
	return appcore.Run[report.Report](parent, stdout, stderr, coreOpts, visitors.PassThrough{}.Visit, writer)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
