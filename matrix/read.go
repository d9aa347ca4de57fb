// SPDX-License-Identifier: MIT
// Package matrix: text ingestion.
//
// Two entry points share one row parser:
//   - Read consumes a whole stream in the file format (count line + n rows).
//   - ReadRows consumes exactly n rows from a *bufio.Reader that the caller
//     keeps using afterwards (interactive sessions), so it reads line by line
//     and never buffers ahead.
//
// Blank lines are skipped everywhere. Line numbers in errors are 1-based.

package matrix

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	dist, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return dist, nil
}

// Read parses the file format from r.
//
// Errors: ErrEmptyInput, ErrBadCount, ErrMalformedRow, ErrRowCount, or the
// underlying read error.
//
// Complexity: O(n²).
func Read(r io.Reader) ([][]int, error) {
	lr := &lineReader{src: bufio.NewReader(r)}

	head, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmptyInput
	}
	n, err := parseCount(head)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", lr.line)
	}

	dist, err := lr.rows(n)
	if err != nil {
		return nil, err
	}

	// Anything after the n-th row means the count line lied.
	if _, extra, err := lr.next(); err != nil {
		return nil, err
	} else if extra {
		return nil, errors.Wrapf(ErrRowCount, "line %d: more than %d rows", lr.line, n)
	}

	return dist, nil
}

// ReadRows reads exactly n non-blank rows of n integers from br.
// Nothing after the n-th row is consumed.
//
// Errors: ErrBadCount for n ≤ 0, ErrMalformedRow, ErrRowCount on early EOF.
//
// Complexity: O(n²).
func ReadRows(br *bufio.Reader, n int) ([][]int, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrBadCount, "n=%d", n)
	}
	lr := &lineReader{src: br}

	return lr.rows(n)
}

// ParseCount parses a city count: a single positive integer.
func ParseCount(s string) (int, error) {
	return parseCount(strings.TrimSpace(s))
}

// ParseRow parses one line of whitespace-separated integers and requires
// exactly n of them.
func ParseRow(line string, n int) ([]int, error) {
	var fields = strings.Fields(line)
	if len(fields) != n {
		return nil, errors.Wrapf(ErrMalformedRow, "got %d entries, want %d", len(fields), n)
	}

	var (
		row = make([]int, 0, n)
		tok string
		v   int
		err error
	)
	for _, tok = range fields {
		v, err = strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "token %q is not an integer", tok)
		}
		row = append(row, v)
	}

	return row, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.Wrapf(ErrBadCount, "%q", s)
	}

	return n, nil
}

// lineReader yields trimmed non-blank lines and tracks the line number.
type lineReader struct {
	src  *bufio.Reader
	line int
	eof  bool
}

// next returns the next non-blank line; ok is false at end of input.
func (lr *lineReader) next() (string, bool, error) {
	var (
		s   string
		err error
	)
	for !lr.eof {
		s, err = lr.src.ReadString('\n')
		if err == io.EOF {
			lr.eof = true
		} else if err != nil {
			return "", false, errors.Wrap(err, "read")
		}
		if s == "" && lr.eof {
			break
		}
		lr.line++
		s = strings.TrimSpace(s)
		if s != "" {
			return s, true, nil
		}
	}

	return "", false, nil
}

// maxPrealloc bounds the initial row capacity; n comes from the input and is
// not trusted until every row has arrived.
const maxPrealloc = 64

// rows reads n rows of width n. A malformed row does not stop the scan: all
// n lines are consumed so none of them is left for the next reader, and the
// first row error is returned.
func (lr *lineReader) rows(n int) ([][]int, error) {
	var (
		dist     = make([][]int, 0, min(n, maxPrealloc))
		seen     int
		line     string
		row      []int
		ok       bool
		err      error
		firstErr error
	)
	for ; seen < n; seen++ {
		line, ok, err = lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if firstErr != nil {
			continue
		}
		row, err = ParseRow(line, n)
		if err != nil {
			firstErr = errors.Wrapf(err, "line %d", lr.line)
			dist = nil
			continue
		}
		dist = append(dist, row)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if seen < n {
		return nil, errors.Wrapf(ErrRowCount, "got %d rows, want %d", seen, n)
	}

	return dist, nil
}
