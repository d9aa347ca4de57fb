package report_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/report"
	"github.com/katalvlaran/heldkarp/tsp"
)

func classic4() [][]int {
	return [][]int{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
}

func TestFormatRoute(t *testing.T) {
	require.Equal(t, "0 → 1 → 3 → 2 → 0", report.FormatRoute([]int{0, 1, 3, 2, 0}))
	require.Equal(t, "0", report.FormatRoute([]int{0}))
	require.Equal(t, "", report.FormatRoute(nil))
}

func TestFormatElapsed(t *testing.T) {
	require.Equal(t, "1.500 ms", report.FormatElapsed(1500*time.Microsecond))
	require.Equal(t, "0.000 ms", report.FormatElapsed(0))
}

func TestReport_Text(t *testing.T) {
	res, err := tsp.Solve(classic4(), tsp.DefaultOptions())
	require.NoError(t, err)

	r := report.New(classic4(), res, 2*time.Millisecond)
	want := "Number of cities: 4\n" +
		"Distance matrix:\n" +
		"0 10 15 20\n" +
		"10 0 35 25\n" +
		"15 35 0 30\n" +
		"20 25 30 0\n" +
		"\n" +
		"Optimal route cost: 80\n" +
		"Route: 0 → 1 → 3 → 2 → 0\n" +
		"Calculation time: 2.000 ms\n"
	require.Equal(t, want, r.Text())
}

func TestNew_CopiesInputs(t *testing.T) {
	dist := [][]int{{0, 5}, {5, 0}}
	res := tsp.Result{Tour: []int{0, 1, 0}, Cost: 10}

	r := report.New(dist, res, 0)
	dist[0][1] = 99
	res.Tour[1] = 7

	require.Equal(t, [][]int{{0, 5}, {5, 0}}, r.Dist)
	require.Equal(t, []int{0, 1, 0}, r.Tour)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "result.txt")
	r := report.New([][]int{{0, 5}, {5, 0}}, tsp.Result{Tour: []int{0, 1, 0}, Cost: 10}, time.Millisecond)

	require.NoError(t, report.Save(path, r))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, r.Text(), string(got))

	// Overwrite in place; no temporary files are left behind.
	r.Cost = 11
	require.NoError(t, report.Save(path, r))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(got), "Optimal route cost: 11")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSave_FileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), "result.txt")
	r := report.New([][]int{{0}}, tsp.Result{Tour: []int{0, 0}}, time.Millisecond)

	require.NoError(t, report.Save(path, r))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSave_EmptyPath(t *testing.T) {
	require.ErrorIs(t, report.Save("", report.Report{}), report.ErrEmptyPath)
}
