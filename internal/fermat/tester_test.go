package fermat

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/fermatscan/fermatscan/internal/errors"
)

// basesSource replays a fixed sequence of bases, letting tests force
// specific witness/liar orderings. The tester draws from [0, p-2) and adds
// 2, so the source hands back base-2.
type basesSource struct {
	bases []uint64
	idx   int
}

func (s *basesSource) Uint64N(n uint64) uint64 {
	if s.idx >= len(s.bases) {
		panic("basesSource exhausted")
	}
	b := s.bases[s.idx]
	s.idx++
	if b < 2 || b-2 >= n {
		panic("scripted base out of range")
	}
	return b - 2
}

func TestTesterRejectsSmallCandidates(t *testing.T) {
	tester := NewTester(20, NewSeededSource(1))
	for _, p := range []uint64{0, 1, 2} {
		_, err := tester.Test(context.Background(), p)
		if !errors.Is(err, apperrors.ErrCandidateTooSmall) {
			t.Errorf("Test(%d) error = %v, want ErrCandidateTooSmall", p, err)
		}
	}
}

func TestTesterBoundaryThree(t *testing.T) {
	// The base range for p == 3 degenerates to [2, 2]; the draw has width 1
	// and must neither panic nor divide by zero.
	tester := NewTester(20, NewSeededSource(7))
	v, err := tester.Test(context.Background(), 3)
	if err != nil {
		t.Fatalf("Test(3) error = %v", err)
	}
	if !v.ProbablePrime() {
		t.Errorf("Test(3) = %+v, want probable prime", v)
	}
	if v.Trials != 20 {
		t.Errorf("Test(3) trials = %d, want full budget of 20", v.Trials)
	}
}

func TestTesterKnownPrimes(t *testing.T) {
	// A genuine prime must never produce a witness, regardless of seed.
	primes := []uint64{3, 5, 7, 13, 97, 541, 997}
	for seed := uint64(1); seed <= 5; seed++ {
		tester := NewTester(20, NewSeededSource(seed))
		for _, p := range primes {
			v, err := tester.Test(context.Background(), p)
			if err != nil {
				t.Fatalf("Test(%d) error = %v", p, err)
			}
			if v.Composite() {
				t.Errorf("seed %d: prime %d reported composite with witness %d", seed, p, v.Witness)
			}
		}
	}
}

func TestCarmichael561AlwaysProbablePrime(t *testing.T) {
	// 561 = 3*11*17 is a Carmichael number: every base in (1, 561) is a
	// Fermat liar, so the test cannot detect its compositeness.
	for seed := uint64(1); seed <= 10; seed++ {
		tester := NewTester(50, NewSeededSource(seed))
		v, err := tester.Test(context.Background(), 561)
		if err != nil {
			t.Fatalf("Test(561) error = %v", err)
		}
		if !v.ProbablePrime() {
			t.Errorf("seed %d: 561 reported composite with witness %d", seed, v.Witness)
		}
	}
}

func TestTesterCompositeFour(t *testing.T) {
	// Both possible bases for p = 4 (2 and 3) are witnesses, so the very
	// first trial must settle the verdict with no liar.
	tester := NewTester(20, NewSeededSource(3))
	v, err := tester.Test(context.Background(), 4)
	if err != nil {
		t.Fatalf("Test(4) error = %v", err)
	}
	if !v.Composite() {
		t.Fatalf("Test(4) = %+v, want composite", v)
	}
	if v.Witness != 2 && v.Witness != 3 {
		t.Errorf("witness = %d, want 2 or 3", v.Witness)
	}
	if v.Trials != 1 {
		t.Errorf("trials = %d, want 1", v.Trials)
	}
	if v.HasLiar() {
		t.Errorf("liar = %d, want none on a first-trial witness", v.Liar)
	}
}

func TestLiarBookkeeping(t *testing.T) {
	// For p = 15, base 4 satisfies the congruence (4^2 ≡ 1 mod 15) while
	// base 2 breaks it. Scripting the draws pins the liar to the base of
	// the trial immediately before the witness.
	src := &basesSource{bases: []uint64{4, 2}}
	tester := NewTester(20, src)

	v, err := tester.Test(context.Background(), 15)
	if err != nil {
		t.Fatalf("Test(15) error = %v", err)
	}
	if v.Witness != 2 {
		t.Errorf("witness = %d, want 2", v.Witness)
	}
	if v.Liar != 4 {
		t.Errorf("liar = %d, want 4", v.Liar)
	}
	if v.Trials != 2 {
		t.Errorf("trials = %d, want 2", v.Trials)
	}
}

func TestLiarIsImmediatelyPrecedingBase(t *testing.T) {
	// Two liars in a row (4 and 14 both satisfy the congruence mod 15);
	// only the one directly before the witness may be reported.
	src := &basesSource{bases: []uint64{4, 14, 2}}
	tester := NewTester(20, src)

	v, err := tester.Test(context.Background(), 15)
	if err != nil {
		t.Fatalf("Test(15) error = %v", err)
	}
	if v.Witness != 2 {
		t.Errorf("witness = %d, want 2", v.Witness)
	}
	if v.Liar != 14 {
		t.Errorf("liar = %d, want 14 (the superseded liar 4 must not survive)", v.Liar)
	}
}

func TestWitnessHaltsTrials(t *testing.T) {
	src := &basesSource{bases: []uint64{2, 4}}
	tester := NewTester(20, src)

	v, err := tester.Test(context.Background(), 15)
	if err != nil {
		t.Fatalf("Test(15) error = %v", err)
	}
	if v.Trials != 1 {
		t.Errorf("trials = %d, want 1 (loop must halt on the first witness)", v.Trials)
	}
	if src.idx != 1 {
		t.Errorf("source consulted %d times, want 1", src.idx)
	}
}

func TestTesterIdempotentUnderFixedSeed(t *testing.T) {
	run := func(seed uint64) []Verdict {
		var verdicts []Verdict
		for p := uint64(3); p < 200; p++ {
			tester := NewTester(20, NewSeededSource(DeriveSeed(seed, p)))
			v, err := tester.Test(context.Background(), p)
			if err != nil {
				t.Fatalf("Test(%d) error = %v", p, err)
			}
			verdicts = append(verdicts, v)
		}
		return verdicts
	}

	first := run(42)
	second := run(42)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("candidate %d: verdicts differ between runs: %+v vs %+v",
				first[i].Candidate, first[i], second[i])
		}
	}
}

func TestTesterContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tester := NewTester(20, NewSeededSource(1))
	_, err := tester.Test(ctx, 997)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Test with canceled context error = %v, want context.Canceled", err)
	}
}

func TestCongruenceHolds(t *testing.T) {
	tests := []struct {
		base, p uint64
		want    bool
	}{
		{2, 7, true},    // prime, congruence always holds
		{5, 13, true},   // prime
		{2, 15, false},  // witness for 15
		{4, 15, true},   // liar for 15
		{14, 15, true},  // liar for 15 (p-1 is always a liar for odd p)
		{2, 561, true},  // Carmichael: every base lies
		{50, 561, true}, // Carmichael
		{3, 4, false},   // witness for 4
	}
	for _, tt := range tests {
		if got := congruenceHolds(tt.base, tt.p); got != tt.want {
			t.Errorf("congruenceHolds(%d, %d) = %t, want %t", tt.base, tt.p, got, tt.want)
		}
	}
}
