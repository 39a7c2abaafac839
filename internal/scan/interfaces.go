package scan

import (
	"io"
	"sync"
)

// ProgressUpdate reports scan completion state. Completed counts candidates
// whose verdict is in; Total is the size of the scan range.
type ProgressUpdate struct {
	Completed uint64
	Total     uint64
}

// ProgressReporter defines the interface for displaying scan progress. It
// decouples the orchestration layer from the presentation layer: the scanner
// coordinates workers while implementations render spinners or bars.
type ProgressReporter interface {
	// DisplayProgress consumes progress updates until progressChan is closed.
	// It must be called in its own goroutine and signal wg when done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total uint64, out io.Writer)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and in tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ uint64, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain silently.
	}
}
