// SPDX-License-Identifier: MIT
// Package matrix: text output.

package matrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Format renders dist one row per line, entries separated by single spaces,
// each line terminated by '\n'. An empty matrix renders as "".
//
// Complexity: O(n²).
func Format(dist [][]int) string {
	var (
		sb  strings.Builder
		row []int
		j   int
	)
	for _, row = range dist {
		for j = range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(row[j]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Write emits dist in the file format accepted by Read: the count line
// followed by Format(dist).
//
// Errors: ErrBadShape for an empty or non-square matrix; write errors.
func Write(w io.Writer, dist [][]int) error {
	if err := checkSquare(dist); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strconv.Itoa(len(dist)) + "\n" + Format(dist)); err != nil {
		return errors.Wrap(err, "write matrix")
	}

	return errors.Wrap(bw.Flush(), "flush matrix")
}

// checkSquare returns ErrBadShape unless dist is non-empty and n×n.
func checkSquare(dist [][]int) error {
	var n = len(dist)
	if n == 0 {
		return errors.Wrap(ErrBadShape, "empty matrix")
	}
	var i int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return errors.Wrapf(ErrBadShape, "row %d has %d entries, want %d", i, len(dist[i]), n)
		}
	}

	return nil
}
