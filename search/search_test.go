package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesolchina/math-tournament/core"
	"github.com/tesolchina/math-tournament/family"
	"github.com/tesolchina/math-tournament/search"
	"github.com/tesolchina/math-tournament/verify"
)

// TestSolve_InvalidParameters: odd, zero and negative sizes are rejected
// before any search work.
func TestSolve_InvalidParameters(t *testing.T) {
	for _, n := range []int{9, 3, 1, 0, -2} {
		res, err := search.Solve(n, search.DefaultOptions())
		assert.ErrorIs(t, err, core.ErrInvalidParameters, "n=%d", n)
		assert.Nil(t, res.Schedule)
	}
}

func TestSolve_InvalidOptions(t *testing.T) {
	opts := search.DefaultOptions()
	opts.Attempts = -1
	_, err := search.Solve(8, opts)
	assert.ErrorIs(t, err, search.ErrInvalidOptions)

	opts = search.DefaultOptions()
	opts.NodeBudget = -5
	_, err = search.Solve(8, opts)
	assert.ErrorIs(t, err, search.ErrInvalidOptions)
}

// TestSolve_FindsVerifiedSchedules covers the feasible sizes the general
// search handles quickly. Every returned schedule must pass the full
// verifier and open with the identity matching.
func TestSolve_FindsVerifiedSchedules(t *testing.T) {
	for _, n := range []int{4, 6, 8, 10} {
		res, err := search.Solve(n, search.DefaultOptions())
		require.NoError(t, err, "n=%d", n)
		require.NotNil(t, res.Schedule)
		assert.NoError(t, verify.Check(*res.Schedule), "n=%d", n)
		for i := 0; i < n; i++ {
			assert.Equal(t, i, res.Schedule.Pairing[0][i], "round 0 must be the identity")
		}
		assert.Positive(t, res.Nodes)
		assert.Positive(t, res.Attempts)
		assert.Nil(t, res.Certificate)
	}
}

// TestSolve_SmallestSizeExhausts: n=2 has a single pairing square up to
// relabeling and neither of its colorings balances both teams, so the
// search must report the definite negative after trying every candidate.
func TestSolve_SmallestSizeExhausts(t *testing.T) {
	opts := search.DefaultOptions()
	opts.Attempts = 16

	res, err := search.Solve(2, opts)
	assert.ErrorIs(t, err, search.ErrSearchExhausted)
	assert.Nil(t, res.Schedule)
	assert.Equal(t, 16, res.Attempts)
}

// TestSolve_CyclicFamilyFeasible: n=8 satisfies the rotation family's
// parity condition and its square is colorable, so the family search must
// return a schedule on that exact square.
func TestSolve_CyclicFamilyFeasible(t *testing.T) {
	opts := search.DefaultOptions()
	opts.Family = family.CyclicShiftTag

	res, err := search.Solve(8, opts)
	require.NoError(t, err)
	require.NotNil(t, res.Schedule)
	assert.NoError(t, verify.Check(*res.Schedule))

	want, err := family.CyclicShift{}.Square(res.Schedule.Params)
	require.NoError(t, err)
	assert.Equal(t, want, res.Schedule.Pairing)
	assert.Equal(t, 1, res.Attempts)
}

// TestSolve_CyclicFamilyInfeasible: n=10 violates the rotation family's
// parity condition. The prover must short-circuit with a certificate that
// re-derives independently, spending zero search nodes.
func TestSolve_CyclicFamilyInfeasible(t *testing.T) {
	opts := search.DefaultOptions()
	opts.Family = family.CyclicShiftTag

	res, err := search.Solve(10, opts)
	assert.ErrorIs(t, err, search.ErrInfeasible)
	assert.Nil(t, res.Schedule)
	require.NotNil(t, res.Certificate)
	assert.NoError(t, res.Certificate.Check())
	assert.Zero(t, res.Nodes)
	assert.Zero(t, res.Attempts)
}

func TestSolve_UnknownFamily(t *testing.T) {
	opts := search.DefaultOptions()
	opts.Family = family.Tag("block-design")

	_, err := search.Solve(8, opts)
	assert.ErrorIs(t, err, family.ErrUnknownFamily)
}

// TestSolve_NodeBudgetUndetermined: a one-node budget cannot settle n=10
// either way.
func TestSolve_NodeBudgetUndetermined(t *testing.T) {
	opts := search.DefaultOptions()
	opts.NodeBudget = 1

	res, err := search.Solve(10, opts)
	assert.ErrorIs(t, err, search.ErrUndetermined)
	assert.Nil(t, res.Schedule)
}

// TestSolve_TimeLimitUndetermined: an already-expired deadline stops the
// search at the first attempt boundary.
func TestSolve_TimeLimitUndetermined(t *testing.T) {
	opts := search.DefaultOptions()
	opts.TimeLimit = time.Nanosecond

	res, err := search.Solve(12, opts)
	assert.ErrorIs(t, err, search.ErrUndetermined)
	assert.Nil(t, res.Schedule)
	assert.Zero(t, res.Attempts)
}

// TestSolveContext_Cancelled: an already-cancelled context stops the
// search before any candidate is drawn and surfaces the context error.
func TestSolveContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := search.SolveContext(ctx, 12, search.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res.Schedule)
	assert.Zero(t, res.Attempts)
}

// TestSolve_DeterministicSingleWorker: one worker and one seed must
// reproduce the schedule bit for bit.
func TestSolve_DeterministicSingleWorker(t *testing.T) {
	opts := search.DefaultOptions()
	opts.Workers = 1
	opts.Seed = 7

	first, err := search.Solve(6, opts)
	require.NoError(t, err)
	second, err := search.Solve(6, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Schedule.Pairing, second.Schedule.Pairing)
	assert.Equal(t, first.Schedule.Colors, second.Schedule.Colors)
	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.Attempts, second.Attempts)
}

// TestSolve_ParallelWorkers: racing workers still deliver a verified
// schedule; only the winning attempt may differ between runs.
func TestSolve_ParallelWorkers(t *testing.T) {
	opts := search.DefaultOptions()
	opts.Workers = 4

	res, err := search.Solve(10, opts)
	require.NoError(t, err)
	require.NotNil(t, res.Schedule)
	assert.NoError(t, verify.Check(*res.Schedule))
}

// TestSolve_SATBackend drives the CNF coloring path end to end.
func TestSolve_SATBackend(t *testing.T) {
	opts := search.DefaultOptions()
	opts.Backend = search.SATBackend

	res, err := search.Solve(8, opts)
	require.NoError(t, err)
	require.NotNil(t, res.Schedule)
	assert.NoError(t, verify.Check(*res.Schedule))

	opts.Attempts = 16
	res, err = search.Solve(2, opts)
	assert.ErrorIs(t, err, search.ErrSearchExhausted)
	assert.Nil(t, res.Schedule)
}

// TestSolve_ZeroOptionFieldsUseDefaults: a literal Options{} behaves like
// DefaultOptions.
func TestSolve_ZeroOptionFieldsUseDefaults(t *testing.T) {
	res, err := search.Solve(6, search.Options{})
	require.NoError(t, err)
	require.NotNil(t, res.Schedule)
	assert.NoError(t, verify.Check(*res.Schedule))
}
