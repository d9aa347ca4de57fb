// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All parsers return these sentinels, wrapped with the line number where the
// problem was found; callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrEmptyInput is returned when the input holds no non-empty line.
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrBadCount is returned when the city count line is not a positive integer.
	ErrBadCount = errors.New("matrix: invalid city count")

	// ErrMalformedRow is returned when a row has a non-integer token or a
	// number of entries different from n.
	ErrMalformedRow = errors.New("matrix: malformed row")

	// ErrRowCount is returned when the number of rows differs from n.
	ErrRowCount = errors.New("matrix: row count does not match city count")

	// ErrBadShape is returned by Write/Format/Random for a non-square or empty
	// matrix, or a non-positive size.
	ErrBadShape = errors.New("matrix: invalid shape")
)
