package family_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesolchina/math-tournament/core"
	"github.com/tesolchina/math-tournament/family"
)

// isLatin reports whether every row and column of pm is a permutation of
// 0..n-1.
func isLatin(pm core.PairingMatrix) bool {
	n := len(pm)
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	for r := 0; r < n; r++ {
		row := append([]int(nil), pm[r]...)
		sort.Ints(row)
		if !equalInts(row, want) {
			return false
		}
	}
	for i := 0; i < n; i++ {
		col := make([]int, n)
		for r := 0; r < n; r++ {
			col[r] = pm[r][i]
		}
		sort.Ints(col)
		if !equalInts(col, want) {
			return false
		}
	}

	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func mustParams(t *testing.T, n int) core.Params {
	t.Helper()
	p, err := core.NewParams(n)
	require.NoError(t, err)

	return p
}

// TestCyclic_SquareIsLatin covers the rotation construction across sizes,
// including the identity first round.
func TestCyclic_SquareIsLatin(t *testing.T) {
	for _, n := range []int{2, 4, 8, 10, 12} {
		pm, err := family.CyclicShift{}.Square(mustParams(t, n))
		require.NoError(t, err)
		assert.True(t, isLatin(pm), "n=%d", n)
		for i := 0; i < n; i++ {
			assert.Equal(t, i, pm[0][i], "round 0 must be the identity matching")
		}
	}
}

func TestShiftSwap_SquareIsLatin(t *testing.T) {
	for _, n := range []int{4, 6, 8, 10, 12, 14} {
		pm, err := family.ShiftSwap{}.Square(mustParams(t, n))
		require.NoError(t, err)
		assert.True(t, isLatin(pm), "n=%d", n)
		for i := 0; i < n; i++ {
			assert.Equal(t, i, pm[0][i], "round 0 must be the identity matching")
		}
	}
}

// TestCyclic_InfeasibleOddM is the core prover scenario: n=10 (m=5) yields
// the 2a=5 certificate, and the certificate re-derives independently.
func TestCyclic_InfeasibleOddM(t *testing.T) {
	p := mustParams(t, 10)
	cert, infeasible := family.CyclicShift{}.Necessary(p)
	require.True(t, infeasible, "cyclic n=10 must be proven infeasible")
	require.NotNil(t, cert)
	assert.Equal(t, family.CyclicShiftTag, cert.Family)
	assert.Equal(t, 2, cert.Coeff)
	assert.Equal(t, 5, cert.RHS)
	assert.NoError(t, cert.Check(), "certificate must re-derive on its own")
	assert.Contains(t, cert.Error(), "2·a = 5")
}

// TestCyclic_InconclusiveEvenM: n=8 (m=4) passes the necessary condition,
// so the prover must defer to the search.
func TestCyclic_InconclusiveEvenM(t *testing.T) {
	for _, n := range []int{4, 8, 12, 16} {
		cert, infeasible := family.CyclicShift{}.Necessary(mustParams(t, n))
		assert.False(t, infeasible, "n=%d", n)
		assert.Nil(t, cert)
	}
}

func TestShiftSwap_AlwaysInconclusive(t *testing.T) {
	cert, infeasible := family.ShiftSwap{}.Necessary(mustParams(t, 10))
	assert.False(t, infeasible)
	assert.Nil(t, cert)
}

func TestByTag(t *testing.T) {
	f, err := family.ByTag(family.CyclicShiftTag)
	require.NoError(t, err)
	assert.Equal(t, family.CyclicShiftTag, f.Tag())

	f, err = family.ByTag(family.ShiftSwapTag)
	require.NoError(t, err)
	assert.Equal(t, family.ShiftSwapTag, f.Tag())

	_, err = family.ByTag(family.Tag("block-design"))
	assert.ErrorIs(t, err, family.ErrUnknownFamily)
}

// TestCertificate_Tampered ensures Check rejects certificates whose
// equation was altered or that claim infeasibility for a feasible size.
func TestCertificate_Tampered(t *testing.T) {
	p := mustParams(t, 10)
	cert, _ := family.CyclicShift{}.Necessary(p)
	require.NotNil(t, cert)

	bad := *cert
	bad.RHS = 6
	assert.ErrorIs(t, bad.Check(), family.ErrCertificateMismatch)

	forged := family.Certificate{
		Family: family.CyclicShiftTag,
		Params: mustParams(t, 8),
		Coeff:  2,
		RHS:    4,
	}
	assert.ErrorIs(t, forged.Check(), family.ErrCertificateMismatch)

	unknown := family.Certificate{Family: family.Tag("block-design"), Params: p}
	assert.ErrorIs(t, unknown.Check(), family.ErrUnknownFamily)
}
