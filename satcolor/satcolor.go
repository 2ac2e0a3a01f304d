package satcolor

import (
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/tesolchina/math-tournament/core"
)

// ErrUnsatisfiable reports that the given pairing square admits no balanced
// first-move assignment. The verdict is exact for that square.
var ErrUnsatisfiable = errors.New("satcolor: pairing square admits no balanced coloring")

// Colors finds a first-move assignment for pm satisfying every balance
// constraint, or returns ErrUnsatisfiable when none exists.
//
// Contract: pm must have the n×n shape prescribed by p; the caller is
// expected to pass a Latin square (Colors only reads cell values as group
// indices, so a non-Latin input simply yields groups of uneven size and an
// unsatisfiable instance).
//
// Complexity: the circuit carries n² variables and 3n sorting networks of
// n inputs each; solving is NP-hard in general but instances of tournament
// size are dispatched in milliseconds.
func Colors(pm core.PairingMatrix, p core.Params) (core.ColorMatrix, error) {
	if err := pm.Shape(p); err != nil {
		return nil, err
	}

	var (
		n       = p.N
		m       = p.M
		circuit = logic.NewC()
		cells   = make([]z.Lit, n*n)
		assume  = make([]z.Lit, 0, 6*n)
		r, i, j int
	)
	for i = range cells {
		cells[i] = circuit.Lit()
	}

	// exactlyM pins the true-count of a group to m: at most m, and not at
	// most m-1.
	exactlyM := func(group []z.Lit) {
		cs := circuit.CardSort(group)
		assume = append(assume, cs.Leq(m), cs.Leq(m-1).Not())
	}

	// Round rows: m A-first matchups per round.
	for r = 0; r < n; r++ {
		exactlyM(cells[r*n : (r+1)*n])
	}

	// A-player columns: each A moves first in m rounds.
	for i = 0; i < n; i++ {
		var col = make([]z.Lit, n)
		for r = 0; r < n; r++ {
			col[r] = cells[r*n+i]
		}
		exactlyM(col)
	}

	// B-player groups: B_j moves second in exactly m rounds, gathered
	// through the square. Together with the row sums this pins B firsts.
	var groups = make([][]z.Lit, n)
	for r = 0; r < n; r++ {
		for i = 0; i < n; i++ {
			j = pm[r][i]
			groups[j] = append(groups[j], cells[r*n+i])
		}
	}
	for j = 0; j < n; j++ {
		if len(groups[j]) != n {
			// Not a Latin square: some B-player has fewer than n matchups,
			// so no assignment can reach m firsts and m seconds for it.
			return nil, ErrUnsatisfiable
		}
		exactlyM(groups[j])
	}

	g := gini.New()
	circuit.ToCnf(g)
	g.Assume(assume...)
	if g.Solve() != 1 {
		return nil, ErrUnsatisfiable
	}

	colors := core.NewColorMatrix(n)
	for r = 0; r < n; r++ {
		for i = 0; i < n; i++ {
			colors[r][i] = g.Value(cells[r*n+i])
		}
	}

	return colors, nil
}
