// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"ridehr-core/ride"
	"ridehr-core/segment"
	"ridehr/internal/cmdutil"
	"ridehr/internal/demo"
	"ridehr/internal/ingest"
	"ridehr/internal/pipeline"
	"ridehr/internal/report"
	"ridehr/internal/writers"
)

// Options is the app-level configuration shared by both tools.
type Options struct {
	Inputs []string
	Demo   bool

	Detector  segment.Config
	Target    int
	Tolerance int

	Threads int

	Quiet            bool
	NoSteadyExitCode int
}

// VisitorFunc converts a report into the writer's item type.
type VisitorFunc[T any] func(report.Report) (keep bool, out T, err error)

// WriterFactory starts the output goroutine for a given item type.
type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run orchestrates ingest → pipeline → writer and maps outcomes to exit
// codes: 0 ok, 3 runtime/write error, 130 canceled, NoSteadyExitCode
// when no analyzed ride reached steady state.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	files := o.Inputs
	load := pipeline.LoadFunc(ingest.Load)
	if o.Demo {
		files = []string{demo.Source}
		load = func(ctx context.Context, path string) (*ride.Ride, error) {
			return demo.Ride()
		}
	}

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	if thr > len(files) {
		thr = len(files)
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, steady, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{
			Threads:   thr,
			Detector:  o.Detector,
			Target:    o.Target,
			Tolerance: o.Tolerance,
		},
		files,
		load,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if steady == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no ride reached steady state (%d analyzed)", total)
		return o.NoSteadyExitCode
	}
	return 0
}
