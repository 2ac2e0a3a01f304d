package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesolchina/math-tournament/core"
	"github.com/tesolchina/math-tournament/search"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRoot_RendersSchedule(t *testing.T) {
	out, err := execute(t, "--n", "6", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Round 1:")
	assert.Contains(t, out, "Round 6:")
	assert.NotContains(t, out, "Round 7:")
}

func TestRoot_PrintsCertificate(t *testing.T) {
	out, err := execute(t, "--n", "10", "--family", "cyclic-shift", "--quiet")
	assert.ErrorIs(t, err, search.ErrInfeasible)
	assert.Contains(t, out, "2·a = 5")
}

func TestRoot_RejectsOddN(t *testing.T) {
	_, err := execute(t, "--n", "7", "--quiet")
	assert.ErrorIs(t, err, core.ErrInvalidParameters)
}

func TestRoot_RejectsUnknownBackend(t *testing.T) {
	_, err := execute(t, "--n", "6", "--backend", "annealing", "--quiet")
	assert.Error(t, err)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournament.toml")
	require.NoError(t, os.WriteFile(path, []byte("n = 4\nseed = 3\n"), 0o644))

	out, err := execute(t, "--config", path, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Round 4:")
	assert.NotContains(t, out, "Round 5:")
}

// TestRoot_FlagsBeatConfig: an explicit --n outranks the file's n.
func TestRoot_FlagsBeatConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournament.toml")
	require.NoError(t, os.WriteFile(path, []byte("n = 4\n"), 0o644))

	out, err := execute(t, "--config", path, "--n", "6", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Round 6:")
}
