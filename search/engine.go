package search

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tesolchina/math-tournament/core"
	"github.com/tesolchina/math-tournament/family"
	"github.com/tesolchina/math-tournament/satcolor"
	"github.com/tesolchina/math-tournament/verify"
)

// Solve searches for a complete schedule for two teams of n players each.
//
// Contract: n must be even and positive, otherwise core.ErrInvalidParameters.
// The returned Result always carries node and attempt counts; its Schedule
// is non-nil exactly when the error is nil, and its Certificate is non-nil
// exactly when the error is ErrInfeasible.
//
// Determinism: a single-worker run is a pure function of (n, opts).
func Solve(n int, opts Options) (Result, error) {
	return SolveContext(context.Background(), n, opts)
}

// SolveContext is Solve with caller-driven cancellation. Cancellation is
// polled at attempt boundaries and every 1024 nodes inside the coloring
// search; a cancelled run returns the context's error with the counts
// accumulated so far.
func SolveContext(ctx context.Context, n int, opts Options) (Result, error) {
	p, err := core.NewParams(n)
	if err != nil {
		return Result{}, err
	}
	if opts, err = opts.normalized(); err != nil {
		return Result{}, err
	}

	var fam family.Family
	if opts.Family != "" {
		if fam, err = family.ByTag(opts.Family); err != nil {
			return Result{}, err
		}
		// Prover gate: a violated necessary condition settles the family
		// without expanding a single node.
		if cert, infeasible := fam.Necessary(p); infeasible {
			return Result{Certificate: cert}, ErrInfeasible
		}
	}

	e := &engine{ctx: ctx, p: p, fam: fam, opts: opts}
	if opts.TimeLimit > 0 {
		e.deadline = time.Now().Add(opts.TimeLimit)
		e.hasDeadline = true
	}

	return e.run()
}

// engine holds the state shared by all workers of one Solve call.
type engine struct {
	ctx  context.Context
	p    core.Params
	fam  family.Family
	opts Options

	deadline    time.Time
	hasDeadline bool

	found      atomic.Bool  // a worker has stored a schedule
	overBudget atomic.Bool  // a global budget cut the search short
	nodes      atomic.Int64 // coloring nodes across all attempts
	started    atomic.Int64 // candidate squares examined

	mu  sync.Mutex
	win *core.Schedule
}

func (e *engine) run() (Result, error) {
	attempts := e.opts.Attempts
	if e.fam != nil {
		attempts = 1 // a family contributes exactly one square
	}
	if e.opts.Workers > 1 && attempts > 1 {
		e.runParallel(attempts)
	} else {
		e.runRange(0, attempts, 1)
	}

	res := Result{Nodes: e.nodes.Load(), Attempts: int(e.started.Load())}
	e.mu.Lock()
	res.Schedule = e.win
	e.mu.Unlock()

	if res.Schedule != nil {
		// Acceptance gate: nothing leaves the engine unverified.
		if err := verify.Check(*res.Schedule); err != nil {
			res.Schedule = nil
			return res, errors.Join(ErrInternal, err)
		}
		return res, nil
	}
	if err := e.ctx.Err(); err != nil {
		return res, err
	}
	if e.overBudget.Load() {
		return res, ErrUndetermined
	}

	return res, ErrSearchExhausted
}

// runRange walks attempt indices start, start+stride, ... below total,
// stopping early once any worker finds a schedule or a budget expires.
func (e *engine) runRange(start, total, stride int) {
	for a := start; a < total; a += stride {
		if !e.attempt(a) {
			return
		}
	}
}

// attempt examines one candidate square. It returns false when the caller
// should stop iterating: a schedule was found or a global budget expired.
func (e *engine) attempt(a int) bool {
	if e.found.Load() || e.ctx.Err() != nil {
		return false
	}
	if e.expired() {
		e.overBudget.Store(true)
		return false
	}

	// Family squares are searched to exhaustion; random candidates are
	// cut off early and replaced, which is cheaper than digging deep into
	// an uncolorable square.
	var limit = e.opts.AttemptNodes
	if e.fam != nil {
		limit = math.MaxInt64
	}
	var globalCap = false
	if e.opts.NodeBudget > 0 {
		remaining := e.opts.NodeBudget - e.nodes.Load()
		if remaining <= 0 {
			e.overBudget.Store(true)
			return false
		}
		if remaining < limit {
			limit, globalCap = remaining, true
		}
	}

	e.started.Add(1)
	pm := e.candidate(a)

	var (
		colors core.ColorMatrix
		st     status
	)
	if e.opts.Backend == SATBackend {
		st = statusExhausted
		if cm, err := satcolor.Colors(pm, e.p); err == nil {
			colors, st = cm, statusFound
		}
		e.nodes.Add(1)
	} else {
		c := newColorer(e.p, pm, limit, e.stopNow)
		st = c.search()
		colors = c.colors
		e.nodes.Add(c.nodes)
	}

	switch st {
	case statusFound:
		e.mu.Lock()
		if e.win == nil {
			e.win = &core.Schedule{Params: e.p, Pairing: pm, Colors: colors}
		}
		e.mu.Unlock()
		e.found.Store(true)
		return false
	case statusCapped:
		if e.found.Load() || e.ctx.Err() != nil {
			return false
		}
		if globalCap || e.expired() {
			e.overBudget.Store(true)
			return false
		}
		return true // per-attempt cap: restart with the next candidate
	default:
		return true
	}
}

// candidate produces the a-th pairing square. The selected family's square
// is the only candidate; the general search tries the rotation square
// first when its parity condition allows, then seeded random squares.
func (e *engine) candidate(a int) core.PairingMatrix {
	if e.fam != nil {
		if pm, err := e.fam.Square(e.p); err == nil {
			return pm
		}
		return randomSquare(e.p, e.opts.Seed+int64(a))
	}
	if a == 0 && e.p.M%2 == 0 {
		if pm, err := (family.CyclicShift{}).Square(e.p); err == nil {
			return pm
		}
	}

	return randomSquare(e.p, e.opts.Seed+int64(a))
}

func (e *engine) expired() bool {
	return e.hasDeadline && !time.Now().Before(e.deadline)
}

// stopNow is polled from inside the coloring search.
func (e *engine) stopNow() bool {
	return e.found.Load() || e.expired() || e.ctx.Err() != nil
}
