package family

import "github.com/tesolchina/math-tournament/core"

// ShiftSwap is a non-cyclic family: round r shifts by 2⌊r/2⌋ and odd rounds
// additionally swap each opponent with its parity neighbor. The swap breaks
// the rotational symmetry that dooms CyclicShift, so no closed-form
// obstruction applies; whether a given size admits a balanced coloring is
// left to the search.
type ShiftSwap struct{}

// Tag returns ShiftSwapTag.
func (ShiftSwap) Tag() Tag { return ShiftSwapTag }

// Square builds the shift-swap Latin square for p.N players. Row 0 is the
// identity (shift 0, no swap).
//
// Complexity: O(n²).
func (ShiftSwap) Square(p core.Params) (core.PairingMatrix, error) {
	var (
		pm    = core.NewPairingMatrix(p.N)
		r     int
		i     int
		shift int
		v     int
	)
	for r = 0; r < p.N; r++ {
		shift = 2 * (r / 2)
		for i = 0; i < p.N; i++ {
			v = (i + shift) % p.N
			if r%2 == 1 {
				if v%2 == 0 {
					v = (v + 1) % p.N
				} else {
					v = (v - 1 + p.N) % p.N
				}
			}
			pm[r][i] = v
		}
	}

	return pm, nil
}

// Necessary has no derivable obstruction for this family; always
// inconclusive.
func (ShiftSwap) Necessary(core.Params) (*Certificate, bool) { return nil, false }
