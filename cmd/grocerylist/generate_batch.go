package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-grocerylist"
)

// dirPermissions is rwxr-x---: owner full, group read+execute.
const dirPermissions = 0o750

// FileGenerator is the interface for the generation service.
type FileGenerator interface {
	GenerateFile(ctx context.Context, job grocerylist.Job) (*grocerylist.Result, error)
}

// Compile-time interface implementation check.
var _ FileGenerator = (*grocerylist.Generator)(nil)

// GenerateResult holds the outcome of a single generation.
type GenerateResult struct {
	InputPath  string
	OutputPath string
	ItemCount  int
	Err        error
	Duration   time.Duration
}

// generateBatch processes jobs concurrently with at most workers in flight.
// Results keep the order of jobs. When mkdirs is set, missing output
// directories are created first.
func generateBatch(ctx context.Context, gen FileGenerator, jobs []grocerylist.Job, workers int, mkdirs bool) []GenerateResult {
	if len(jobs) == 0 {
		return nil
	}

	results := make([]GenerateResult, len(jobs))
	var g errgroup.Group
	g.SetLimit(max(1, min(workers, len(jobs))))

	for i, job := range jobs {
		g.Go(func() error {
			results[i] = generateOne(ctx, gen, job, mkdirs)
			// Failures are per file; never cancel siblings
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// generateOne processes a single job and returns the result.
func generateOne(ctx context.Context, gen FileGenerator, job grocerylist.Job, mkdirs bool) GenerateResult {
	start := time.Now()
	result := GenerateResult{
		InputPath:  job.InputPath,
		OutputPath: job.OutputPath,
	}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	if mkdirs && job.OutputPath != "" {
		if err := os.MkdirAll(filepath.Dir(job.OutputPath), dirPermissions); err != nil {
			result.Err = fmt.Errorf("%w: creating output directory: %w", grocerylist.ErrOutputNotWritable, err)
			result.Err = withHint(result.Err, hintFor(result.Err))
			result.Duration = time.Since(start)
			return result
		}
	}

	res, err := gen.GenerateFile(ctx, job)
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = withHint(err, hintFor(err))
		return result
	}

	result.OutputPath = res.OutputPath
	result.ItemCount = res.ItemCount
	return result
}

// ResultSummary holds the count of succeeded and failed generations.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed generations.
func countResults(results []GenerateResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failure in job order.
func firstError(results []GenerateResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults outputs generation results and returns the failure count.
// A lone failure is left to the caller, which reports it as the run error.
func printResults(results []GenerateResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 && !errors.Is(r.Err, context.Canceled) {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d items, %v)\n", r.InputPath, r.OutputPath, r.ItemCount, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
