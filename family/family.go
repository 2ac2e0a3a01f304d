package family

import (
	"errors"

	"github.com/tesolchina/math-tournament/core"
)

// ErrUnknownFamily is returned when a tag does not name a registered
// construction family.
var ErrUnknownFamily = errors.New("family: unknown construction family")

// Tag names a construction family. Tags are stable identifiers: they appear
// in certificates and in CLI flags.
type Tag string

const (
	// CyclicShiftTag labels the cyclic-shift family.
	CyclicShiftTag Tag = "cyclic-shift"
	// ShiftSwapTag labels the shift-with-adjacent-swap family.
	ShiftSwapTag Tag = "shift-swap"
)

// Family is one restricted construction family of pairing squares.
//
// Implementations must be stateless values: Square and Necessary are pure
// functions of the parameters, so families are safe to share across
// concurrent searches.
type Family interface {
	// Tag returns the family's stable identifier.
	Tag() Tag

	// Square materializes the family's pairing square for p.N players.
	// The result is always a Latin square with an identity first round.
	Square(p core.Params) (core.PairingMatrix, error)

	// Necessary derives the family's necessary balance condition. It
	// returns (certificate, true) when the condition is unsatisfiable,
	// which proves every member of the family infeasible, and (nil, false)
	// when the derivation is inconclusive and a search is required.
	Necessary(p core.Params) (*Certificate, bool)
}

// ByTag resolves a tag to its family implementation.
func ByTag(tag Tag) (Family, error) {
	switch tag {
	case CyclicShiftTag:
		return CyclicShift{}, nil
	case ShiftSwapTag:
		return ShiftSwap{}, nil
	default:
		return nil, ErrUnknownFamily
	}
}
