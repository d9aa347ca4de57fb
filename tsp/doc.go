// Package tsp solves the Travelling Salesman Problem exactly for small
// instances with the Held–Karp dynamic-programming algorithm.
//
// The input is an n×n matrix of non-negative integer distances, where
// dist[i][j] is the cost to travel from city i to city j. The matrix need
// not be symmetric; the diagonal is never read by the algorithm.
//
// The solver works top-down over (current city, visited set) states, where
// the visited set is a bitmask (see Mask). Three pieces cooperate:
//
//   - StateSpace: per-instance constants and memo tables sized n·2ⁿ,
//     with an explicit presence flag per entry and an explicit
//     "no successor" marker for the choice table.
//   - Solver: the memoized recursion. Solve(pos, visited) returns the
//     minimum cost of finishing the tour from pos after visiting visited,
//     returning to city 0 at the end.
//   - Reconstruct: walks the recorded choices and returns the literal
//     visiting order, starting and ending at city 0.
//
// Tie-break: when several next cities give the same minimum, the smallest
// city index wins, so tours are reproducible across runs.
//
// Complexity:
//
//   - Time:   O(n²·2ⁿ)
//   - Memory: O(n·2ⁿ)
//   - Stack:  O(n) recursion depth
//
// A Solver owns its tables for exactly one distance matrix and is not safe
// for concurrent use. Independent Solvers share nothing and may run in
// parallel.
//
// Use Solve for the one-shot path:
//
//	res, err := tsp.Solve(dist, tsp.DefaultOptions())
//	// res.Cost, res.Tour == [0 … 0]
package tsp
