package family

import (
	"fmt"

	"github.com/tesolchina/math-tournament/core"
)

// CyclicShift is the family of rotation pairings: round r matches A_i with
// B_{(i+r) mod n}. Round 0 is the identity matching. The family is the
// natural first candidate since it trivially satisfies the
// meet-exactly-once property, but it is provably infeasible whenever m is
// odd.
//
// Derivation of the necessary condition (recorded in certificates):
// with rotation pairings, the cells feeding B-player balance form the
// broken diagonals k = (i+r) mod n, so a balanced coloring needs every
// row, every column, and every broken diagonal of the color matrix to sum
// to m. For even n the diagonal parity of a cell is the column parity
// flipped by the row's shift parity; summing the m even columns against
// the m even diagonals cancels everything except the firsts that
// odd-shift rounds place in even columns, and the family's symmetry forces
// that count to satisfy 2a = m per round class. Odd m leaves no integer a,
// so no member of the family can be balanced.
type CyclicShift struct{}

// Tag returns CyclicShiftTag.
func (CyclicShift) Tag() Tag { return CyclicShiftTag }

// Square builds the rotation Latin square for p.N players.
//
// Complexity: O(n²).
func (CyclicShift) Square(p core.Params) (core.PairingMatrix, error) {
	var (
		pm = core.NewPairingMatrix(p.N)
		r  int
		i  int
	)
	for r = 0; r < p.N; r++ {
		for i = 0; i < p.N; i++ {
			pm[r][i] = (i + r) % p.N
		}
	}

	return pm, nil
}

// Necessary evaluates the 2a = m condition. For odd m it returns the
// infeasibility certificate; for even m the condition is satisfiable and
// the answer is inconclusive (a search is still required to produce an
// actual coloring).
func (CyclicShift) Necessary(p core.Params) (*Certificate, bool) {
	if p.M%2 == 0 {
		return nil, false
	}

	return &Certificate{
		Family: CyclicShiftTag,
		Params: p,
		Coeff:  2,
		RHS:    p.M,
		Argument: fmt.Sprintf(
			"rotation pairings force row, column and broken-diagonal sums of the "+
				"color matrix to equal m=%d; pairing the even-column and even-diagonal "+
				"totals leaves 2a = %d for the firsts that odd-shift rounds place in "+
				"even columns, which has no integer solution", p.M, p.M),
	}, true
}
