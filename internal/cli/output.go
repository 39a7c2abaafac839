// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their
// behavior:
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatVerdict], [FormatSummary].
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayVerdicts], [DisplaySummary], [DisplayProgress].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fermatscan/fermatscan/internal/config"
	"github.com/fermatscan/fermatscan/internal/fermat"
	"github.com/fermatscan/fermatscan/internal/format"
	"github.com/fermatscan/fermatscan/internal/scan"
)

// FormatVerdict renders a verdict as the scanner's one-line-per-candidate
// output:
//
//	<p> is a probable prime
//	<p> is composite - <w> is a composite witness
//	<p> is composite - <w> is a composite witness - <l> is a fermat liar for <p>
func FormatVerdict(v fermat.Verdict) string {
	if v.ProbablePrime() {
		return fmt.Sprintf("%d is a probable prime", v.Candidate)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d is composite - %d is a composite witness", v.Candidate, v.Witness)
	if v.HasLiar() {
		fmt.Fprintf(&b, " - %d is a fermat liar for %d", v.Liar, v.Candidate)
	}
	return b.String()
}

// DisplayVerdicts writes one verdict line per result, in candidate order.
// Results carrying an error are skipped; the scan as a whole already failed
// and the caller reports that separately.
func DisplayVerdicts(results []scan.Result, out io.Writer) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		fmt.Fprintln(out, FormatVerdict(res.Verdict))
	}
}

// ScanTally aggregates verdict counts for the summary block.
type ScanTally struct {
	Candidates     uint64
	ProbablePrimes uint64
	Composites     uint64
	LiarsFound     uint64
}

// Tally counts the classifications in a result set.
func Tally(results []scan.Result) ScanTally {
	var t ScanTally
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		t.Candidates++
		if res.Verdict.Composite() {
			t.Composites++
			if res.Verdict.HasLiar() {
				t.LiarsFound++
			}
		} else {
			t.ProbablePrimes++
		}
	}
	return t
}

// FormatSummary renders the post-scan summary block.
func FormatSummary(tally ScanTally, elapsed time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n--- Scan Summary ---\n")
	fmt.Fprintf(&b, "Candidates:      %d\n", tally.Candidates)
	fmt.Fprintf(&b, "Probable primes: %d\n", tally.ProbablePrimes)
	fmt.Fprintf(&b, "Composites:      %d\n", tally.Composites)
	fmt.Fprintf(&b, "Fermat liars:    %d\n", tally.LiarsFound)
	fmt.Fprintf(&b, "Elapsed:         %s\n", format.Duration(elapsed))
	return b.String()
}

// DisplaySummary writes the summary block for a completed scan.
func DisplaySummary(results []scan.Result, elapsed time.Duration, out io.Writer) {
	fmt.Fprint(out, FormatSummary(Tally(results), elapsed))
}

// PrintExecutionConfig shows the effective scan parameters before the run.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "Scanning candidates in [%d, %d) with up to %d bases each",
		cfg.MinCandidate, cfg.MaxCandidate, cfg.TrialBudget)
	if cfg.Workers > 1 {
		fmt.Fprintf(out, " across %d workers", cfg.Workers)
	}
	if cfg.Seed != 0 {
		fmt.Fprintf(out, " (seed %d)", cfg.Seed)
	}
	fmt.Fprintln(out)
}

// WriteReportToFile writes the scan report (verdict lines plus a header) to
// the configured output file, creating parent directories as needed.
func WriteReportToFile(results []scan.Result, cfg config.AppConfig, elapsed time.Duration) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Fermat primality scan report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Range: [%d, %d)\n", cfg.MinCandidate, cfg.MaxCandidate)
	fmt.Fprintf(file, "# Trial budget: %d\n", cfg.TrialBudget)
	fmt.Fprintf(file, "# Seed: %d\n", cfg.Seed)
	fmt.Fprintf(file, "# Elapsed: %s\n", elapsed)
	fmt.Fprintf(file, "\n")

	DisplayVerdicts(results, file)
	return nil
}
