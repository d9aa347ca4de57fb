package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, dir, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := newSession(strings.NewReader(input), &out, newStyles(true), testConfig(dir), nopLogger())
	require.NoError(t, s.Run())
	return out.String()
}

func TestSession_ManualEntry(t *testing.T) {
	out := runSession(t, t.TempDir(), "1\n2\n0 5\n5 0\nn\nn\n")

	require.Contains(t, out, "=== TSP Solver ===")
	require.Contains(t, out, "Optimal route found with cost: 10")
	require.Contains(t, out, "Route sequence: 0 → 1 → 0")
	require.Contains(t, out, "Farewell!")
}

func TestSession_FileAndSave(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "distances.txt"), []byte(classic4File), 0o644))

	out := runSession(t, dir, "2\ndistances.txt\ny\nresult.txt\nn\n")
	require.Contains(t, out, "Optimal route found with cost: 80")
	require.Contains(t, out, "Results successfully saved")

	saved, err := os.ReadFile(filepath.Join(dir, "result.txt"))
	require.NoError(t, err)
	require.Contains(t, string(saved), "Route: 0 → 1 → 3 → 2 → 0")
}

func TestSession_SolveAgain(t *testing.T) {
	out := runSession(t, t.TempDir(), "1\n1\n0\nn\ny\n1\n2\n0 5\n5 0\nn\nn\n")

	require.Contains(t, out, "Optimal route found with cost: 0")
	require.Contains(t, out, "Optimal route found with cost: 10")
	require.Equal(t, 1, strings.Count(out, "Farewell!"))
}

func TestSession_InvalidChoices(t *testing.T) {
	out := runSession(t, t.TempDir(), "9\n1\nabc\n1\n1\n0\nmaybe\nn\nn\n")

	require.Contains(t, out, "Unrecognized option. Please select 0, 1, or 2.")
	require.Contains(t, out, "invalid input, please enter a valid positive integer")
	require.Contains(t, out, "Invalid choice. Please type 'y' or 'n'.")
	require.Contains(t, out, "Farewell!")
}

func TestSession_Errors(t *testing.T) {
	// Missing file, then a matrix the solver rejects, then exit.
	out := runSession(t, t.TempDir(), "2\nnope.txt\n1\n2\n0 -5\n5 0\n0\n")

	require.Contains(t, out, "could not load the file")
	require.Contains(t, out, "tsp: invalid input")
	require.Contains(t, out, "Goodbye!")
}

func TestSession_TooManyCities(t *testing.T) {
	out := runSession(t, t.TempDir(), "1\n1000000000000000000\n0\n")

	require.Contains(t, out, "tsp: invalid problem size")
	require.NotContains(t, out, "enter each row")
	require.Contains(t, out, "Goodbye!")
}

func TestSession_MalformedRowDoesNotLeakIntoMenu(t *testing.T) {
	out := runSession(t, t.TempDir(), "1\n3\n0 x 1\n1 0 1\n1 1 0\n0\n")

	require.Contains(t, out, "malformed")
	require.NotContains(t, out, "Unrecognized option")
	require.Contains(t, out, "Goodbye!")
}

func TestSession_EndOfInput(t *testing.T) {
	runSession(t, t.TempDir(), "")
	runSession(t, t.TempDir(), "1\n3\n0 1 2\n")
	runSession(t, t.TempDir(), "1\n2\n0 5\n5 0\ny")
}
