package search

import (
	"errors"
	"time"

	"github.com/tesolchina/math-tournament/core"
	"github.com/tesolchina/math-tournament/family"
)

var (
	// ErrInfeasible reports a proven-empty construction family; the
	// accompanying Result carries the certificate.
	ErrInfeasible = errors.New("search: construction family proven infeasible")

	// ErrSearchExhausted is the definite negative: every candidate in the
	// configured restart schedule was searched without finding a schedule.
	ErrSearchExhausted = errors.New("search: candidate space exhausted without a schedule")

	// ErrUndetermined means the node or time budget expired before the
	// search could conclude either way.
	ErrUndetermined = errors.New("search: budget expired before a definite answer")

	// ErrInvalidOptions rejects negative budgets, attempts or workers.
	ErrInvalidOptions = errors.New("search: invalid options")

	// ErrInternal flags a schedule that failed post-search verification.
	// It indicates a solver bug and is never returned on valid runs.
	ErrInternal = errors.New("search: produced schedule failed verification")
)

// Backend selects the per-candidate coloring procedure.
type Backend uint8

const (
	// BacktrackBackend colors candidates with the forced/forbidden
	// depth-first search. Bounded per attempt, restarts on cap.
	BacktrackBackend Backend = iota

	// SATBackend compiles each candidate's coloring to CNF and asks a SAT
	// solver. Complete per candidate: an unsatisfiable square is rejected
	// for certain, at the cost of no mid-candidate budgeting.
	SATBackend
)

// Options tune the search. The zero value of any numeric field means "use
// the default"; DefaultOptions spells the defaults out.
type Options struct {
	// Family restricts the search to one construction family's square.
	// Empty means the general seeded-restart search.
	Family family.Tag

	// Backend picks the coloring procedure per candidate square.
	Backend Backend

	// Attempts caps the number of candidate squares the general search
	// draws. Ignored when Family is set (one candidate exists).
	Attempts int

	// AttemptNodes caps the coloring nodes spent on one candidate before
	// restarting with the next. Ignored by the SAT backend.
	AttemptNodes int64

	// NodeBudget caps total nodes across all attempts; 0 means unlimited.
	NodeBudget int64

	// TimeLimit caps wall-clock time; 0 means unlimited.
	TimeLimit time.Duration

	// Workers is the number of goroutines racing disjoint attempt ranges.
	Workers int

	// Seed anchors the candidate square generator. Attempt a draws its
	// square from Seed+a, so runs are reproducible per seed.
	Seed int64
}

// DefaultOptions returns the tuning used when fields are left zero.
func DefaultOptions() Options {
	return Options{
		Backend:      BacktrackBackend,
		Attempts:     1024,
		AttemptNodes: 100_000,
		Workers:      1,
		Seed:         1,
	}
}

// normalized fills zero fields with defaults and rejects negatives.
func (o Options) normalized() (Options, error) {
	if o.Attempts < 0 || o.AttemptNodes < 0 || o.NodeBudget < 0 ||
		o.TimeLimit < 0 || o.Workers < 0 || o.Backend > SATBackend {
		return o, ErrInvalidOptions
	}
	d := DefaultOptions()
	if o.Attempts == 0 {
		o.Attempts = d.Attempts
	}
	if o.AttemptNodes == 0 {
		o.AttemptNodes = d.AttemptNodes
	}
	if o.Workers == 0 {
		o.Workers = d.Workers
	}

	return o, nil
}

// Result reports what the search produced and what it cost.
type Result struct {
	// Schedule is the verified schedule, nil unless Solve returned nil.
	Schedule *core.Schedule

	// Certificate accompanies ErrInfeasible and re-derives on demand.
	Certificate *family.Certificate

	// Nodes is the total coloring nodes expanded across all attempts.
	Nodes int64

	// Attempts is the number of candidate squares examined.
	Attempts int
}
