// Package pipeline fans ride logs out to a worker pool, runs
// segmentation plus heart-rate evaluation on each, and streams the
// resulting reports to a visit callback.
//
// Loading is injected as a LoadFunc, which keeps the pipeline free of
// file-format knowledge and easy to test in memory.
package pipeline
