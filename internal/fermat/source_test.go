package fermat

import "testing"

func TestSeededSourceIsDeterministic(t *testing.T) {
	a := NewSeededSource(99)
	b := NewSeededSource(99)
	for i := 0; i < 100; i++ {
		if av, bv := a.Uint64N(1000), b.Uint64N(1000); av != bv {
			t.Fatalf("draw %d: sources diverged (%d vs %d)", i, av, bv)
		}
	}
}

func TestSourceRange(t *testing.T) {
	src := NewSeededSource(7)
	for i := 0; i < 1000; i++ {
		if v := src.Uint64N(13); v >= 13 {
			t.Fatalf("Uint64N(13) = %d, out of range", v)
		}
	}
}

func TestSourceWidthOne(t *testing.T) {
	// The p == 3 case draws from a width-1 range; the only possible value
	// is zero, which maps to base 2.
	src := NewSeededSource(7)
	for i := 0; i < 50; i++ {
		if v := src.Uint64N(1); v != 0 {
			t.Fatalf("Uint64N(1) = %d, want 0", v)
		}
	}
}

func TestTimeSeedIsUsable(t *testing.T) {
	// A zero seed is the config sentinel for "pick one for me", so the
	// time-derived seed must never collide with it.
	if TimeSeed() == 0 {
		t.Error("TimeSeed() = 0, want a non-sentinel seed")
	}
}

func TestDeriveSeed(t *testing.T) {
	t.Run("stable for fixed inputs", func(t *testing.T) {
		if DeriveSeed(1, 561) != DeriveSeed(1, 561) {
			t.Error("DeriveSeed should be a pure function")
		}
	})

	t.Run("spreads across candidates", func(t *testing.T) {
		seen := make(map[uint64]uint64)
		for p := uint64(3); p < 1000; p++ {
			s := DeriveSeed(42, p)
			if prev, dup := seen[s]; dup {
				t.Fatalf("candidates %d and %d derived the same seed", prev, p)
			}
			seen[s] = p
		}
	})

	t.Run("differs across scan seeds", func(t *testing.T) {
		if DeriveSeed(1, 97) == DeriveSeed(2, 97) {
			t.Error("different scan seeds should derive different candidate seeds")
		}
	})
}
