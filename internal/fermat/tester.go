// Package fermat implements a probabilistic primality test based on
// Fermat's Little Theorem: if p is prime and 1 < a < p, then
// (a^p − a) mod p == 0. A base that breaks the congruence is a composite
// witness; a base that satisfies it for a composite candidate is a Fermat
// liar. Carmichael numbers (561 is the classic example) fool every base,
// so they are always reported as probable primes.
package fermat

import (
	"context"

	apperrors "github.com/fermatscan/fermatscan/internal/errors"
)

// Tester classifies candidates as probable primes or composites using up to
// a fixed number of randomized Fermat trials per candidate.
type Tester struct {
	budget int
	src    Source
}

// NewTester creates a Tester with the given trial budget and base source.
func NewTester(budget int, src Source) *Tester {
	return &Tester{budget: budget, src: src}
}

// Test runs up to the configured number of trials against p and returns the
// resulting Verdict. Each trial draws a fresh base uniformly from [2, p-1]
// and evaluates the Fermat congruence; the loop halts on the first witness,
// so at most one witness is ever recorded. When the witness trial was not
// the first, the previous trial's base is recorded as the Fermat liar.
//
// Candidates below 3 leave no valid base and are rejected with
// apperrors.ErrCandidateTooSmall. For p == 3 the base range degenerates to
// the single value 2; the draw still happens, it just has width 1.
func (t *Tester) Test(ctx context.Context, p uint64) (Verdict, error) {
	if p < 3 {
		return Verdict{}, apperrors.ErrCandidateTooSmall
	}

	v := Verdict{Candidate: p}
	var prevBase uint64

	for v.Trials < t.budget && v.Witness == 0 {
		if err := ctx.Err(); err != nil {
			return Verdict{}, err
		}

		base := t.src.Uint64N(p-2) + 2
		v.Trials++

		if congruenceHolds(base, p) {
			prevBase = base
			continue
		}

		v.Witness = base
		// prevBase is zero when the first trial found the witness; only a
		// base that passed before the witness was found can be called a liar.
		v.Liar = prevBase
	}

	return v, nil
}

// Budget returns the configured trial budget.
func (t *Tester) Budget() int { return t.budget }
