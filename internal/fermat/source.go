package fermat

import (
	"math/rand/v2"
	"time"
)

// Source draws uniformly distributed integers for base selection. Injecting
// the source keeps the randomness-dependent control flow of the tester
// deterministic under test: a seeded source replays the same base sequence,
// and a scripted fake can force specific witness/liar orderings.
type Source interface {
	// Uint64N returns a uniformly distributed integer in [0, n). n must be
	// greater than zero.
	Uint64N(n uint64) uint64
}

type pcgSource struct {
	r *rand.Rand
}

func (s pcgSource) Uint64N(n uint64) uint64 { return s.r.Uint64N(n) }

// NewSeededSource returns a deterministic Source seeded with the given value.
// The same seed always replays the same base sequence.
func NewSeededSource(seed uint64) Source {
	return pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// TimeSeed returns a scan seed derived from the current time, for runs where
// reproducibility is not required.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// DeriveSeed mixes a scan seed with a candidate into an independent per-
// candidate seed. Giving every candidate its own source makes verdicts
// independent of worker scheduling, so a fixed scan seed yields identical
// results at any concurrency level.
func DeriveSeed(seed, candidate uint64) uint64 {
	z := seed + 0x9e3779b97f4a7c15*candidate
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}
