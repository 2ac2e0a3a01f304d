package core

import "errors"

// ErrInvalidParameters is returned when the requested tournament size is
// not an even integer ≥ 2.
var ErrInvalidParameters = errors.New("core: invalid parameters (n must be even and >= 2)")

// ErrBadShape is returned when a pairing or color matrix is nil, ragged,
// or not n×n for the parameters it is paired with.
var ErrBadShape = errors.New("core: matrix shape does not match parameters")

// Team identifies one of the two player pools.
type Team uint8

const (
	// TeamA is the row team of the pairing square.
	TeamA Team = iota
	// TeamB is the column team of the pairing square.
	TeamB
)

// String returns "A" or "B".
func (t Team) String() string {
	if t == TeamA {
		return "A"
	}

	return "B"
}

// Params carries the validated tournament size: n players per team and the
// balance target m = n/2 firsts per player. Construct via NewParams; the
// zero value is not valid.
type Params struct {
	// N is the team size and the number of rounds.
	N int
	// M is the per-round and per-player first-move quota, always N/2.
	M int
}

// NewParams validates n and derives m = n/2.
//
// Contract: n must be even and ≥ 2; otherwise ErrInvalidParameters.
// Pure, O(1), no side effects.
func NewParams(n int) (Params, error) {
	if n < 2 || n%2 != 0 {
		return Params{}, ErrInvalidParameters
	}

	return Params{N: n, M: n / 2}, nil
}

// PairingMatrix is the n×n pairing square: cell [r][i] is the B-player met
// by A-player i in round r. Each complete row is one round's perfect
// matching; each complete column lists the n distinct opponents of one
// A-player.
type PairingMatrix [][]int

// ColorMatrix is the n×n first-move table: cell [r][i] is true when
// A-player i moves first against its round-r opponent.
type ColorMatrix [][]bool

// Matchup is one realized pairing: round r, A-player a against B-player b,
// with AFirst telling which side moves first. Matchups are derived views of
// a Schedule; they are never stored independently.
type Matchup struct {
	Round  int
	A      int
	B      int
	AFirst bool
}

// Schedule is a finished, verified (pairing, colors) pair. It is the only
// entity crossing the solver/export boundary. Treat it as immutable: the
// solver hands out a fresh copy and the verifier re-checks it before it is
// returned to callers.
type Schedule struct {
	Params  Params
	Pairing PairingMatrix
	Colors  ColorMatrix
}
