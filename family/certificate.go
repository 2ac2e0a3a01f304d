package family

import (
	"errors"
	"fmt"

	"github.com/tesolchina/math-tournament/core"
)

// ErrCertificateMismatch is returned by Certificate.Check when the recorded
// equation cannot be re-derived from the family tag and the parameters, or
// when the equation is in fact solvable.
var ErrCertificateMismatch = errors.New("family: certificate does not re-derive")

// Certificate is a closed-form proof that no member of a construction
// family admits a balanced first-move coloring. It records the family, the
// parameters, and the unsatisfiable integer equation Coeff·a = RHS derived
// from the family's structural symmetry. The certificate is self-contained:
// Check re-derives the equation from scratch, so a reader never has to
// trust the solver that produced it.
type Certificate struct {
	// Family is the tag of the proven-infeasible family.
	Family Tag
	// Params are the tournament parameters the proof applies to.
	Params core.Params
	// Coeff and RHS state the unsatisfiable equation Coeff·a = RHS over
	// integer a.
	Coeff int
	RHS   int
	// Argument is the prose derivation, for humans and reports.
	Argument string
}

// Error makes a certificate usable as the cause of an infeasibility error.
func (c *Certificate) Error() string {
	return fmt.Sprintf("family %s is infeasible for n=%d: %d·a = %d has no integer solution",
		c.Family, c.Params.N, c.Coeff, c.RHS)
}

// Check independently re-derives the family's necessary condition and
// confirms that the recorded equation matches and is unsatisfiable.
// It returns nil only for a genuine proof.
//
// Complexity: O(1).
func (c *Certificate) Check() error {
	fam, err := ByTag(c.Family)
	if err != nil {
		return err
	}
	derived, infeasible := fam.Necessary(c.Params)
	if !infeasible {
		return ErrCertificateMismatch
	}
	if derived.Coeff != c.Coeff || derived.RHS != c.RHS {
		return ErrCertificateMismatch
	}
	// The equation must actually be unsatisfiable over the integers.
	if c.Coeff != 0 && c.RHS%c.Coeff == 0 {
		return ErrCertificateMismatch
	}

	return nil
}
