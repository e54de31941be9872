// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"ridehr-core/segment"
	"ridehr/internal/appcore"
	"ridehr/internal/cli"
	"ridehr/internal/report"
	"ridehr/internal/version"
	"ridehr/internal/visitors"
)

// RunContext parses argv and runs the full analysis tool.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("ridehr")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(stdout, "ridehr version %s\n", version.Version)
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
		Target:           opts.Target,
		Tolerance:        opts.Tolerance,
		Threads:          opts.Threads,
		Quiet:            opts.Quiet,
		NoSteadyExitCode: opts.NoSteadyExitCode,
	}
	writer := appcore.NewReportWriterFactory(opts.Output, opts.Sort, opts.Header)
	return appcore.Run[report.Report](parent, stdout, stderr, coreOpts, visitors.PassThrough{}.Visit, writer)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
