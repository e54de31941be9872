// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"ridehr/internal/pipeline"
	"ridehr/internal/report"
)

// RunStream runs the shared pipeline, applies a visitor, and streams
// results via send. It returns the number of kept outputs, how many of
// those rides produced a steady segment, and the first error.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	files []string,
	load pipeline.LoadFunc,
	visit func(report.Report) (bool, T, error),
	send func(T) error,
) (total, steady int, err error) {
	err = pipeline.ForEachReport(ctx, cfg, files, load, func(rep report.Report) error {
		keep, out, vErr := visit(rep)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if sErr := send(out); sErr != nil {
			return sErr
		}
		total++
		if rep.Steady() != nil {
			steady++
		}
		return nil
	})
	return total, steady, err
}
