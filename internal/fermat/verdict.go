package fermat

// Verdict is the outcome of testing a single candidate. A zero Witness means
// no base disproved primality within the trial budget; bases are always at
// least 2, so zero is unambiguous as a "none" marker for both Witness and
// Liar.
type Verdict struct {
	// Candidate is the number that was tested.
	Candidate uint64
	// Witness is the base whose residue proved the candidate composite,
	// or 0 if every trial passed.
	Witness uint64
	// Liar is the base from the trial immediately before the witness trial,
	// or 0 if the witness was found on the first trial (or no witness exists).
	// A liar satisfied the congruence for a candidate later proved composite.
	Liar uint64
	// Trials is the number of bases drawn, including the witness trial.
	Trials int
}

// ProbablePrime reports whether every tested base satisfied the congruence.
func (v Verdict) ProbablePrime() bool { return v.Witness == 0 }

// Composite reports whether a witness disproved primality.
func (v Verdict) Composite() bool { return v.Witness != 0 }

// HasLiar reports whether a Fermat liar was identified alongside the witness.
func (v Verdict) HasLiar() bool { return v.Liar != 0 }
