package verify

import (
	"fmt"

	"github.com/tesolchina/math-tournament/core"
)

// Constraint identifies which balance rule a schedule broke.
type Constraint uint8

const (
	// RoundMatching: a pairing row is not a permutation.
	RoundMatching Constraint = iota + 1
	// MeetOnce: a pairing column is not a permutation, i.e. some (A,B)
	// pair meets twice or never.
	MeetOnce
	// RoundSplit: a round's A-first count differs from m.
	RoundSplit
	// PlayerAFirsts: an A-player's total first count differs from m.
	PlayerAFirsts
	// PlayerBFirsts: a B-player's total first count differs from m.
	PlayerBFirsts
)

// String names the constraint for reports.
func (c Constraint) String() string {
	switch c {
	case RoundMatching:
		return "round pairing is not a perfect matching"
	case MeetOnce:
		return "pair does not meet exactly once"
	case RoundSplit:
		return "round first-move split is unbalanced"
	case PlayerAFirsts:
		return "A-player first-move count is unbalanced"
	case PlayerBFirsts:
		return "B-player first-move count is unbalanced"
	default:
		return "unknown constraint"
	}
}

// Violation pinpoints the first broken constraint: which rule, where, and
// the offending count. Round and Player are -1 when not applicable.
type Violation struct {
	Constraint Constraint
	// Round is the violating round index, or -1.
	Round int
	// Player is the violating player index on the relevant team, or -1.
	Player int
	// Got is the offending count where a quota was missed.
	Got int
}

// Error renders the violation for logs and test failures.
func (v *Violation) Error() string {
	return fmt.Sprintf("verify: %s (round=%d player=%d got=%d)",
		v.Constraint, v.Round, v.Player, v.Got)
}

// Check re-validates a complete schedule against all five constraints and
// returns the first violation found, or nil when the schedule is valid.
// Malformed shapes are reported as core.ErrBadShape before any counting.
//
// Check is read-only and idempotent: re-running it on an accepted schedule
// always passes.
//
// Complexity: O(n²) time, O(n) extra space.
func Check(s core.Schedule) error {
	var (
		p   = s.Params
		n   = p.N
		err error
	)
	if _, err = core.NewParams(n); err != nil {
		return err
	}
	if err = s.Pairing.Shape(p); err != nil {
		return err
	}
	if err = s.Colors.Shape(p); err != nil {
		return err
	}

	var (
		r    int
		i    int
		j    int
		seen = make([]bool, n) // scratch permutation tracker
	)

	// Check 1: each round is a perfect matching (row permutation).
	for r = 0; r < n; r++ {
		clear(seen)
		for i = 0; i < n; i++ {
			j = s.Pairing[r][i]
			if seen[j] {
				return &Violation{Constraint: RoundMatching, Round: r, Player: i, Got: j}
			}
			seen[j] = true
		}
	}

	// Check 2: each A meets each B exactly once (column permutation).
	for i = 0; i < n; i++ {
		clear(seen)
		for r = 0; r < n; r++ {
			j = s.Pairing[r][i]
			if seen[j] {
				return &Violation{Constraint: MeetOnce, Round: r, Player: i, Got: j}
			}
			seen[j] = true
		}
	}

	// Check 3: per-round split of firsts is m/m.
	var sum int
	for r = 0; r < n; r++ {
		sum = 0
		for i = 0; i < n; i++ {
			if s.Colors[r][i] {
				sum++
			}
		}
		if sum != p.M {
			return &Violation{Constraint: RoundSplit, Round: r, Player: -1, Got: sum}
		}
	}

	// Check 4: each A-player moves first exactly m times.
	for i = 0; i < n; i++ {
		sum = 0
		for r = 0; r < n; r++ {
			if s.Colors[r][i] {
				sum++
			}
		}
		if sum != p.M {
			return &Violation{Constraint: PlayerAFirsts, Round: -1, Player: i, Got: sum}
		}
	}

	// Check 5: each B-player moves first exactly m times. B-player j moves
	// first in round r exactly when its opponent's color bit is false, so
	// reindex the bits through the pairing square.
	var firsts = make([]int, n)
	for r = 0; r < n; r++ {
		for i = 0; i < n; i++ {
			if !s.Colors[r][i] {
				firsts[s.Pairing[r][i]]++
			}
		}
	}
	for j = 0; j < n; j++ {
		if firsts[j] != p.M {
			return &Violation{Constraint: PlayerBFirsts, Round: -1, Player: j, Got: firsts[j]}
		}
	}

	return nil
}
