package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/fermatscan/fermatscan/internal/cli"
	apperrors "github.com/fermatscan/fermatscan/internal/errors"
	"github.com/fermatscan/fermatscan/internal/fermat"
	"github.com/fermatscan/fermatscan/internal/logging"
	"github.com/fermatscan/fermatscan/internal/scan"
	"github.com/fermatscan/fermatscan/internal/server"
)

// shutdownGrace bounds how long the metrics server may take to drain on exit.
const shutdownGrace = 2 * time.Second

// runScan orchestrates the execution of the scan command: lifecycle setup,
// optional metrics endpoint, the scan itself, and result presentation.
func (a *Application) runScan(ctx context.Context, out io.Writer) int {
	// Lifecycle: timeout + signals.
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	seed := a.Config.Seed
	if seed == 0 {
		seed = fermat.TimeSeed()
		a.Logger.Debug("using time-derived seed", logging.Uint64("seed", seed))
	}

	// Metrics endpoint, only when requested.
	var observer scan.Observer = scan.NullObserver{}
	if a.Config.MetricsAddr != "" {
		metrics := server.NewMetrics()
		srv := server.New(a.Config.MetricsAddr, metrics, a.Logger)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.Logger.Error("metrics server shutdown failed", err)
			}
		}()
		observer = metrics
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, a.ErrWriter)
	}

	// Progress goes to stderr so the verdict stream on stdout stays clean.
	var reporter scan.ProgressReporter = scan.NullProgressReporter{}
	progressOut := io.Discard
	if !a.Config.Quiet {
		reporter = cli.CLIProgressReporter{}
		progressOut = a.ErrWriter
	}

	opts := scan.Options{
		Min:         a.Config.MinCandidate,
		Max:         a.Config.MaxCandidate,
		TrialBudget: a.Config.TrialBudget,
		Seed:        seed,
		Workers:     a.Config.Workers,
	}

	startTime := time.Now()
	results, err := scan.ExecuteScan(ctx, opts, observer, reporter, progressOut)
	elapsed := time.Since(startTime)

	if err != nil {
		a.Logger.Error("scan failed", err,
			logging.Uint64("min", opts.Min),
			logging.Uint64("max", opts.Max))
		return apperrors.ExitCodeForError(err)
	}

	cli.DisplayVerdicts(results, out)
	// Like progress and the execution header, the summary is presentation
	// extra: it goes to stderr so stdout carries only verdict lines.
	if !a.Config.Quiet {
		cli.DisplaySummary(results, elapsed, a.ErrWriter)
	}

	if err := cli.WriteReportToFile(results, a.Config, elapsed); err != nil {
		a.Logger.Error("failed to write report", err, logging.String("path", a.Config.OutputFile))
		return apperrors.ExitErrorGeneric
	}

	tally := cli.Tally(results)
	a.Logger.Debug("scan complete",
		logging.Uint64("candidates", tally.Candidates),
		logging.Uint64("probable_primes", tally.ProbablePrimes),
		logging.Uint64("composites", tally.Composites),
		logging.Float64("elapsed_seconds", elapsed.Seconds()))

	return apperrors.ExitSuccess
}
