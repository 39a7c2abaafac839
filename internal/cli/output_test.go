package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fermatscan/fermatscan/internal/config"
	"github.com/fermatscan/fermatscan/internal/fermat"
	"github.com/fermatscan/fermatscan/internal/scan"
)

func TestFormatVerdict(t *testing.T) {
	tests := []struct {
		name string
		v    fermat.Verdict
		want string
	}{
		{
			name: "probable prime",
			v:    fermat.Verdict{Candidate: 997, Trials: 20},
			want: "997 is a probable prime",
		},
		{
			name: "composite without liar",
			v:    fermat.Verdict{Candidate: 4, Witness: 3, Trials: 1},
			want: "4 is composite - 3 is a composite witness",
		},
		{
			name: "composite with liar",
			v:    fermat.Verdict{Candidate: 15, Witness: 2, Liar: 4, Trials: 2},
			want: "15 is composite - 2 is a composite witness - 4 is a fermat liar for 15",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatVerdict(tt.v); got != tt.want {
				t.Errorf("FormatVerdict() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayVerdicts(t *testing.T) {
	results := []scan.Result{
		{Candidate: 3, Verdict: fermat.Verdict{Candidate: 3, Trials: 20}},
		{Candidate: 4, Verdict: fermat.Verdict{Candidate: 4, Witness: 2, Trials: 1}},
	}

	var buf bytes.Buffer
	DisplayVerdicts(results, &buf)

	want := "3 is a probable prime\n4 is composite - 2 is a composite witness\n"
	if buf.String() != want {
		t.Errorf("DisplayVerdicts() output = %q, want %q", buf.String(), want)
	}
}

func TestTally(t *testing.T) {
	results := []scan.Result{
		{Verdict: fermat.Verdict{Candidate: 3}},
		{Verdict: fermat.Verdict{Candidate: 4, Witness: 2}},
		{Verdict: fermat.Verdict{Candidate: 15, Witness: 2, Liar: 4}},
		{Verdict: fermat.Verdict{Candidate: 5}},
	}

	tally := Tally(results)
	if tally.Candidates != 4 {
		t.Errorf("Candidates = %d, want 4", tally.Candidates)
	}
	if tally.ProbablePrimes != 2 {
		t.Errorf("ProbablePrimes = %d, want 2", tally.ProbablePrimes)
	}
	if tally.Composites != 2 {
		t.Errorf("Composites = %d, want 2", tally.Composites)
	}
	if tally.LiarsFound != 1 {
		t.Errorf("LiarsFound = %d, want 1", tally.LiarsFound)
	}
}

func TestFormatSummary(t *testing.T) {
	tally := ScanTally{Candidates: 997, ProbablePrimes: 169, Composites: 828, LiarsFound: 12}
	out := FormatSummary(tally, 42*time.Millisecond)

	for _, want := range []string{"Scan Summary", "997", "169", "828", "12", "42ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintExecutionConfig(t *testing.T) {
	cfg := config.AppConfig{MinCandidate: 3, MaxCandidate: 1000, TrialBudget: 20, Workers: 4, Seed: 42}

	var buf bytes.Buffer
	PrintExecutionConfig(cfg, &buf)
	out := buf.String()

	for _, want := range []string{"[3, 1000)", "20 bases", "4 workers", "seed 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("execution config missing %q: %s", want, out)
		}
	}
}

func TestWriteReportToFile(t *testing.T) {
	t.Run("empty path is a no-op", func(t *testing.T) {
		cfg := config.AppConfig{}
		if err := WriteReportToFile(nil, cfg, 0); err != nil {
			t.Errorf("WriteReportToFile() error = %v", err)
		}
	})

	t.Run("writes header and verdict lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reports", "scan.txt")
		cfg := config.AppConfig{
			MinCandidate: 3,
			MaxCandidate: 6,
			TrialBudget:  20,
			OutputFile:   path,
		}
		results := []scan.Result{
			{Candidate: 3, Verdict: fermat.Verdict{Candidate: 3}},
			{Candidate: 4, Verdict: fermat.Verdict{Candidate: 4, Witness: 3}},
			{Candidate: 5, Verdict: fermat.Verdict{Candidate: 5}},
		}

		if err := WriteReportToFile(results, cfg, time.Millisecond); err != nil {
			t.Fatalf("WriteReportToFile() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading report: %v", err)
		}
		content := string(data)
		for _, want := range []string{
			"# Fermat primality scan report",
			"# Range: [3, 6)",
			"3 is a probable prime",
			"4 is composite - 3 is a composite witness",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("report missing %q:\n%s", want, content)
			}
		}
	})
}
