// Package matrix reads, writes and formats integer distance matrices for the
// exact TSP solver.
//
// The matrix package provides:
//
//   - Read / ReadFile for the file format: the first non-empty line holds the
//     city count n, the next n non-empty lines hold n space-separated integers
//     each.
//   - ReadRows for interactive entry of exactly n rows from a shared reader,
//     consuming nothing past the last row.
//   - Write and Format to emit the file format and a display form.
//   - Random to generate deterministic instances from a seed.
//
// The parser checks shape only (row count, row width, integer tokens); value
// ranges are the solver's concern, see tsp.NewSolver.
package matrix
