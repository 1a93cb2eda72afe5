// Package batch evaluates many expressions concurrently, one per line.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/nof-sh/textkit/calc"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of evaluating one line.
type Result struct {
	Line       int // one-based
	Expression string
	Value      float64
	Err        error
}

// ReadLines returns every non-blank line of r with its one-based line number.
// Lines may be of any length.
func ReadLines(r io.Reader) ([]Result, error) {
	var lines []Result
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, Result{Line: n, Expression: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expressions: %w", err)
	}
	return lines, nil
}

// Evaluate fills Value or Err of every job using at most workers goroutines.
// Results keep the order of jobs. An evaluation failure is recorded on its
// result and does not stop the others; only ctx cancellation does.
func Evaluate(ctx context.Context, jobs []Result, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			job.Value, job.Err = calc.Evaluate(job.Expression)
			results[i] = job
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
