package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tesolchina/math-tournament/core"
	"github.com/tesolchina/math-tournament/family"
)

// Renderer turns a schedule into some external representation.
type Renderer interface {
	Render(w io.Writer, s core.Schedule) error
}

// Table is the plain-text renderer: one line per round, one token per
// matchup, first mover first.
//
//	Round 1: A1-B1 A2-B2 B3-A3 ...
type Table struct{}

// Render writes the table. Malformed schedules are rejected with
// core.ErrBadShape before any output is produced.
func (Table) Render(w io.Writer, s core.Schedule) error {
	if _, err := core.NewParams(s.Params.N); err != nil {
		return err
	}
	if err := s.Pairing.Shape(s.Params); err != nil {
		return err
	}
	if err := s.Colors.Shape(s.Params); err != nil {
		return err
	}

	var (
		b strings.Builder
		n = s.Params.N
	)
	for r := 0; r < n; r++ {
		fmt.Fprintf(&b, "Round %d:", r+1)
		for i := 0; i < n; i++ {
			j := s.Pairing[r][i]
			if s.Colors[r][i] {
				fmt.Fprintf(&b, " A%d-B%d", i+1, j+1)
			} else {
				fmt.Fprintf(&b, " B%d-A%d", j+1, i+1)
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// WriteTable renders s with the default Table renderer.
func WriteTable(w io.Writer, s core.Schedule) error {
	return Table{}.Render(w, s)
}

// WriteCertificate renders an infeasibility certificate: the family, the
// unsolvable equation and the derivation argument.
func WriteCertificate(w io.Writer, cert *family.Certificate) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Family %q is infeasible for n=%d:\n", cert.Family, cert.Params.N)
	fmt.Fprintf(&b, "  the equation %d·a = %d has no integer solution\n", cert.Coeff, cert.RHS)
	if cert.Argument != "" {
		fmt.Fprintf(&b, "  %s\n", cert.Argument)
	}
	_, err := io.WriteString(w, b.String())

	return err
}
