// Package heldkarp solves small Travelling Salesman instances exactly.
//
// Given an n×n matrix of non-negative integer distances (asymmetric allowed),
// it returns the minimum-cost Hamiltonian cycle that starts and ends at
// city 0, together with the cycle itself.
//
// Under the hood, everything is organized under a few subpackages:
//
//	tsp/            — the Held–Karp solver: StateSpace, Solver, Reconstruct, Solve
//	matrix/         — distance-matrix file format, manual row entry, formatting, generators
//	report/         — result text (cost, route, timing) and atomic save to disk
//	cmd/tspsolver/  — command-line tool: interactive menu, file/stdin batch, random instances
//
// Quick example:
//
//	res, err := tsp.Solve([][]int{
//		{0, 10, 15, 20},
//		{10, 0, 35, 25},
//		{15, 35, 0, 30},
//		{20, 25, 30, 0},
//	}, tsp.DefaultOptions())
//	// res.Cost == 80, res.Tour == [0 1 3 2 0]
//
// The algorithm is exponential by construction: O(n²·2ⁿ) time and O(n·2ⁿ)
// memory. tsp.DefaultOptions caps n at 20.
//
//	go get github.com/katalvlaran/heldkarp
package heldkarp
