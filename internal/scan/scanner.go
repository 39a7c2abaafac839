// Package scan drives the candidate range: it fans candidates out to
// workers, runs the Fermat tester on each, and assembles verdicts back in
// candidate order.
package scan

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/fermatscan/fermatscan/internal/errors"
	"github.com/fermatscan/fermatscan/internal/fermat"
)

const tracerName = "github.com/fermatscan/fermatscan/internal/scan"

// ProgressBufferSize is the capacity of the progress channel. A buffer keeps
// workers from blocking when the display is slow to consume updates; updates
// that still do not fit are dropped, since progress is advisory.
const ProgressBufferSize = 64

// Result encapsulates the outcome of testing a single candidate.
type Result struct {
	// Candidate is the number that was tested.
	Candidate uint64
	// Verdict is the tester's classification. Zero-valued if Err is set.
	Verdict fermat.Verdict
	// Duration is the time taken to reach the verdict.
	Duration time.Duration
	// Err contains any error that occurred during the test.
	Err error
}

// Observer receives each verdict as it is produced. The metrics endpoint
// implements this; NullObserver keeps the scanner free of that concern when
// metrics are disabled.
type Observer interface {
	ObserveVerdict(v fermat.Verdict)
}

// NullObserver ignores all verdicts.
type NullObserver struct{}

// ObserveVerdict discards the verdict.
func (NullObserver) ObserveVerdict(fermat.Verdict) {}

// Options configures a scan.
type Options struct {
	// Min is the inclusive lower bound of the candidate range (>= 3).
	Min uint64
	// Max is the exclusive upper bound of the candidate range.
	Max uint64
	// TrialBudget is the maximum number of bases tried per candidate.
	TrialBudget int
	// Seed seeds base selection; each candidate derives its own source
	// from it so verdicts are independent of worker scheduling.
	Seed uint64
	// Workers is the number of candidates evaluated concurrently.
	Workers int
}

// ExecuteScan tests every candidate in [opts.Min, opts.Max) and returns the
// results ordered by candidate. Candidates are independent, so they are
// distributed across opts.Workers goroutines; each gets a fresh tester with
// a per-candidate deterministic source, and results are written positionally
// so no ordering pass is needed afterwards.
//
// The first candidate error (including context cancellation) cancels the
// remaining work and is returned alongside the partial results.
func ExecuteScan(ctx context.Context, opts Options, observer Observer, reporter ProgressReporter, out io.Writer) ([]Result, error) {
	if observer == nil {
		observer = NullObserver{}
	}
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	// Guard the range width against unsigned underflow.
	if opts.Max <= opts.Min {
		return nil, apperrors.NewConfigError("empty scan range [%d, %d)", opts.Min, opts.Max)
	}

	total := opts.Max - opts.Min
	ctx, span := otel.Tracer(tracerName).Start(ctx, "scan.ExecuteScan")
	span.SetAttributes(
		attribute.Int64("scan.min", int64(opts.Min)),
		attribute.Int64("scan.max", int64(opts.Max)),
		attribute.Int("scan.trial_budget", opts.TrialBudget),
		attribute.Int("scan.workers", opts.Workers),
	)
	defer span.End()

	progressChan := make(chan ProgressUpdate, ProgressBufferSize)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, total, out)

	results := make([]Result, total)
	var completed atomic.Uint64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := uint64(0); i < total; i++ {
		idx := i
		p := opts.Min + i
		g.Go(func() error {
			tester := fermat.NewTester(opts.TrialBudget,
				fermat.NewSeededSource(fermat.DeriveSeed(opts.Seed, p)))

			startTime := time.Now()
			v, err := tester.Test(gctx, p)
			results[idx] = Result{Candidate: p, Verdict: v, Duration: time.Since(startTime), Err: err}
			if err != nil {
				return err
			}

			observer.ObserveVerdict(v)
			select {
			case progressChan <- ProgressUpdate{Completed: completed.Add(1), Total: total}:
			default:
			}
			return nil
		})
	}

	err := g.Wait()
	close(progressChan)
	displayWg.Wait()

	if err != nil {
		span.RecordError(err)
	}
	return results, err
}
