package tsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckTour(t *testing.T) {
	dist := [][]int{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	require.NoError(t, checkTour(dist, []int{0, 1, 2, 0}, 6))

	// A disagreement with the optimum is the solver's fault, not the caller's.
	err := checkTour(dist, []int{0, 1, 2, 0}, 5)
	require.ErrorIs(t, err, ErrInternal)
	require.NotErrorIs(t, err, ErrInvalidInput)

	err = checkTour(dist, []int{0, 1, 0}, 2)
	require.ErrorIs(t, err, ErrInternal)
	require.NotErrorIs(t, err, ErrInvalidInput)
}
