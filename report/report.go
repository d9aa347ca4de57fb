// Package report renders and persists the outcome of one solve: the input
// matrix, the optimal cost, the route and the time it took.
//
// The text layout is line oriented:
//
//	Number of cities: 4
//	Distance matrix:
//	0 10 15 20
//	…
//
//	Optimal route cost: 80
//	Route: 0 → 1 → 3 → 2 → 0
//	Calculation time: 0.042 ms
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/tsp"
)

// RouteSeparator joins consecutive cities in a printed route.
const RouteSeparator = " → "

// Report is an immutable snapshot of one solved instance.
type Report struct {
	Dist    [][]int
	Cost    int
	Tour    []int
	Elapsed time.Duration
}

// New builds a Report from a solver result. dist and the tour are copied.
func New(dist [][]int, res tsp.Result, elapsed time.Duration) Report {
	var (
		cp = make([][]int, len(dist))
		i  int
	)
	for i = range dist {
		cp[i] = append([]int(nil), dist[i]...)
	}

	return Report{
		Dist:    cp,
		Cost:    res.Cost,
		Tour:    append([]int(nil), res.Tour...),
		Elapsed: elapsed,
	}
}

// FormatRoute joins the cities of tour with RouteSeparator.
func FormatRoute(tour []int) string {
	var parts = make([]string, len(tour))
	for i, c := range tour {
		parts[i] = strconv.Itoa(c)
	}

	return strings.Join(parts, RouteSeparator)
}

// FormatElapsed renders d in milliseconds with three decimals.
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

// Text renders the full report, newline-terminated.
func (r Report) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Number of cities: %d\n", len(r.Dist))
	sb.WriteString("Distance matrix:\n")
	sb.WriteString(matrix.Format(r.Dist))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Optimal route cost: %d\n", r.Cost)
	fmt.Fprintf(&sb, "Route: %s\n", FormatRoute(r.Tour))
	fmt.Fprintf(&sb, "Calculation time: %s\n", FormatElapsed(r.Elapsed))

	return sb.String()
}
