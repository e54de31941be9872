// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"ridehr-core/ride"
	"ridehr-core/segment"
	"ridehr/internal/report"
)

// Config controls the analysis pipeline.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	Detector  segment.Config
	Target    int // bpm
	Tolerance int // bpm
}

// LoadFunc resolves one input path to a parsed ride.
type LoadFunc func(ctx context.Context, path string) (*ride.Ride, error)

// ForEachReport analyzes every input file and streams one Report per
// ride to visit. The first error encountered (load, visit, or context
// cancellation) is returned; later results are discarded.
func ForEachReport(
	ctx context.Context,
	cfg Config,
	files []string,
	load LoadFunc,
	visit func(report.Report) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	det := segment.New(cfg.Detector)

	jobs := make(chan string, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-jobs:
					if !ok {
						return
					}
					res := analyze(ctx, det, cfg, path, load)
					select {
					case results <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector serializes visit calls; first error wins.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for res := range results {
			if cerr != nil {
				continue
			}
			if res.err != nil {
				cerr = res.err
				continue
			}
			if err := visit(res.rep); err != nil && cerr == nil {
				cerr = err
			}
		}
	}()

feed:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- path:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}

type result struct {
	rep report.Report
	err error
}

func analyze(ctx context.Context, det *segment.Detector, cfg Config, path string, load LoadFunc) result {
	r, err := load(ctx, path)
	if err != nil {
		return result{err: err}
	}
	segs := det.Detect(r.Samples)
	return result{rep: report.Build(r, segs, cfg.Target, cfg.Tolerance)}
}
