//go:build gmp

package fermat

import "github.com/ncw/gmp"

// congruenceHolds reports whether (base^p − base) mod p == 0, computed with
// the GMP bindings. The API mirrors math/big, so this file is a drop-in for
// residue.go when built with the gmp tag. Candidates are assumed to fit in
// an int64, which holds for any practical scan range.
func congruenceHolds(base, p uint64) bool {
	a := gmp.NewInt(int64(base))
	m := gmp.NewInt(int64(p))
	r := new(gmp.Int).Exp(a, m, m)
	return r.Cmp(a) == 0
}
