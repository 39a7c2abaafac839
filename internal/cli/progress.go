package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/fermatscan/fermatscan/internal/scan"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts the behavior of a terminal spinner, decoupling
// DisplayProgress from the concrete spinner implementation for testing.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to synchronize redraws.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressBar generates a textual progress bar for a normalized value.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress renders a spinner with a progress bar while the scan is
// running. It consumes updates until the channel closes and signals wg when
// the display has shut down. The spinner writes to out, which callers point
// at stderr so the verdict stream on stdout stays clean.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan scan.ProgressUpdate, total uint64, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		fraction := 0.0
		if update.Total > 0 {
			fraction = float64(update.Completed) / float64(update.Total)
		}
		sp.UpdateSuffix(fmt.Sprintf(" scanning %s %d/%d candidates",
			progressBar(fraction, ProgressBarWidth), update.Completed, update.Total))
	}
}

// CLIProgressReporter implements scan.ProgressReporter with the spinner
// display.
type CLIProgressReporter struct{}

var _ scan.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for the ongoing scan.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan scan.ProgressUpdate, total uint64, out io.Writer) {
	DisplayProgress(wg, progressChan, total, out)
}
