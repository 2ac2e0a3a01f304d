// Package search finds complete tournament schedules: a pairing square
// together with a balanced first-move coloring, or a definite reason why
// none was produced.
//
// # Strategy
//
// Joint enumeration of squares and colorings in one backtracking tree is
// hopeless beyond the smallest sizes, so the engine splits the work into
// seeded restarts: each attempt draws one candidate pairing square, then
// runs a bounded coloring search on it. Squares and colorings are cheap to
// draw and most squares of feasible sizes are colorable, so a handful of
// restarts wins where a single deep dive stalls.
//
//   - Candidate squares: the first round is always the identity matching
//     (any schedule can be relabeled into this form, so nothing is lost).
//     Later rows extend the Latin rectangle with a seeded random perfect
//     matching over the unused pairs; such an extension always exists.
//     When a construction family is selected, its square is the single
//     candidate instead.
//   - Coloring: a depth-first search over rounds. At each round the
//     per-player counters force some matchups' first movers and forbid
//     others; the remaining choices are enumerated as subsets in
//     lexicographic order, with counter bounds pruning hopeless branches.
//     The SAT backend swaps this step for a complete per-candidate CNF
//     decision.
//
// # Outcomes
//
// Solve returns exactly one of: a verified schedule; ErrInfeasible with a
// re-checkable Certificate when the selected family is proven empty;
// ErrSearchExhausted when every candidate was searched to the bottom of
// its per-attempt budget without a schedule; or ErrUndetermined when the
// global node or time budget expired first. SolveContext additionally
// surfaces the context's error on cancellation. A schedule is never
// returned without passing full verification.
//
// # Determinism
//
// With a single worker, results are a pure function of (n, Options): the
// same seed draws the same squares and the coloring search branches in a
// fixed order. Extra workers race disjoint attempt ranges and the first
// verified schedule wins, which trades reproducibility of the winning
// attempt for wall-clock speed.
package search
