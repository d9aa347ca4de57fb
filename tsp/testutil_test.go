// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: deterministic instance generators and a brute-force
// oracle used to cross-check the exact solver on small n.
package tsp_test

import (
	"math/rand"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for random instances.
	seedDet = int64(42)

	// maxW is the upper bound (inclusive) of random weights. Kept small on
	// purpose so that equal-cost ties are frequent.
	maxW = 20

	// bruteMaxN bounds the permutation oracle ((n-1)! tours).
	bruteMaxN = 8
)

// classic4 is the textbook 4-city instance; optimum 80 via 0→1→3→2→0.
func classic4() [][]int {
	return [][]int{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
}

// cycleDist returns distances along a ring: dist(i,j) = min(|i-j|, n-|i-j|).
// The optimum is n, achieved by 0→1→…→n-1→0.
func cycleDist(n int) [][]int {
	var (
		dist = make([][]int, n)
		i, j int
		d    int
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]int, n)
		for j = 0; j < n; j++ {
			d = i - j
			if d < 0 {
				d = -d
			}
			if n-d < d {
				d = n - d
			}
			dist[i][j] = d
		}
	}

	return dist
}

// uniformDist returns an n×n matrix with w off the diagonal and 0 on it.
func uniformDist(n, w int) [][]int {
	var (
		dist = make([][]int, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]int, n)
		for j = 0; j < n; j++ {
			if i != j {
				dist[i][j] = w
			}
		}
	}

	return dist
}

// directedRing returns an asymmetric matrix where i→i+1 (mod n) costs 1 and
// every other edge costs 10. When reversed is true the cheap direction is i→i-1.
func directedRing(n int, reversed bool) [][]int {
	var (
		dist = uniformDist(n, 10)
		i    int
	)
	for i = 0; i < n; i++ {
		if reversed {
			dist[(i+1)%n][i] = 1
		} else {
			dist[i][(i+1)%n] = 1
		}
	}

	return dist
}

// randomDist returns a deterministic n×n matrix with weights in [0..maxW].
// The matrix is generally asymmetric.
func randomDist(rng *rand.Rand, n int) [][]int {
	var (
		dist = make([][]int, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]int, n)
		for j = 0; j < n; j++ {
			dist[i][j] = rng.Intn(maxW + 1)
		}
	}

	return dist
}

// bruteForce enumerates every tour 0→π→0 in lexicographic order of π and
// keeps the first strict minimum. That is the lexicographically smallest
// optimal tour, which is exactly what the lowest-index tie-break produces.
//
// Complexity: O(n·(n-1)!).
func bruteForce(dist [][]int) (int, []int) {
	var (
		n        = len(dist)
		used     = make([]bool, n)
		path     = make([]int, 1, n+1)
		best     = -1
		bestTour []int
		walk     func(pos, depth, acc int)
	)
	if n == 1 {
		return dist[0][0], []int{0, 0}
	}
	used[0] = true
	walk = func(pos, depth, acc int) {
		if depth == n {
			total := acc + dist[pos][0]
			if best < 0 || total < best {
				best = total
				bestTour = append(append([]int(nil), path...), 0)
			}
			return
		}
		var c int
		for c = 1; c < n; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			path = append(path, c)
			walk(c, depth+1, acc+dist[pos][c])
			path = path[:len(path)-1]
			used[c] = false
		}
	}
	walk(0, 1, 0)

	return best, bestTour
}
