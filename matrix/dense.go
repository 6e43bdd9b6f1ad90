// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula row*width + col.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Accessors take (col, row): column first. This mirrors the mapping-matrix
//     convention used by the subgraph search and must not be swapped.
//   - Use FromRows to ingest conventional row-major literals; it transposes for you.
//   - Clone before mutating a matrix that another search branch still reads.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRowSum    = "RowSum"
	ctxColumnSum = "ColumnSum"
	ctxOneHot    = "SetRowOneHot"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so callers can use errors.Is.
func denseErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, col, row, err)
}

// Dense is a width×height integer grid addressed as (col, row).
//   - w,h hold dimensions (width = number of columns, height = number of rows).
//   - data is a flat buffer of length w*h in row-major order (offset = row*w + col).
//
// Entries are conceptually booleans (0/1) when the matrix describes a graph
// or a node mapping, but any int is accepted so that sums stay meaningful.
type Dense struct {
	w, h int   // column and row counts (>= 0)
	data []int // contiguous row-major storage (len == w*h)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates a width×height zero matrix.
// Zero-sized shapes are legal: an empty query graph is a 0×0 matrix and its
// mapping matrix is D×0.
//
// Errors:
//   - ErrInvalidDimensions when width < 0 or height < 0.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func NewDense(width, height int) (*Dense, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		w:    width,
		h:    height,
		data: make([]int, width*height), // make() zero-fills deterministically
	}, nil
}

// FromRows builds a matrix from a conventional row-major literal.
// MAIN DESCRIPTION:
//   - External rows[r][c] becomes At(c, r); width = len(rows[0]), height = len(rows).
//
// Implementation:
//   - Stage 1: empty input yields a legal 0×0 matrix.
//   - Stage 2: every row must have the same length as rows[0].
//   - Stage 3: copy values; the (col,row) addressing performs the transposition.
//
// Errors:
//   - ErrDimensionMismatch for ragged input.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func FromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}

	width := len(rows[0])
	m, err := NewDense(width, len(rows))
	if err != nil {
		return nil, err
	}

	var r int
	for r = 0; r < len(rows); r++ {
		if len(rows[r]) != width {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w",
				r, len(rows[r]), width, ErrDimensionMismatch)
		}
		copy(m.data[r*width:(r+1)*width], rows[r]) // row-major storage matches the literal
	}

	return m, nil
}

// Width returns the number of columns. Complexity: O(1).
func (m *Dense) Width() int { return m.w }

// Height returns the number of rows. Complexity: O(1).
func (m *Dense) Height() int { return m.h }

// Shape packs Width() and Height() into a single call.
func (m *Dense) Shape() (width, height int) { return m.w, m.h }

// IsSquare reports whether width == height.
func (m *Dense) IsSquare() bool { return m.w == m.h }

// indexOf bounds-checks (col,row) and returns the flat offset.
// Returns the bare sentinel; public methods wrap it with their own context.
func (m *Dense) indexOf(col, row int) (int, error) {
	if col < 0 || col >= m.w {
		return 0, ErrOutOfRange
	}
	if row < 0 || row >= m.h {
		return 0, ErrOutOfRange
	}

	return row*m.w + col, nil
}

// At returns the value at (col, row).
//
// Errors:
//   - ErrOutOfRange when col ∉ [0,w) or row ∉ [0,h).
func (m *Dense) At(col, row int) (int, error) {
	off, err := m.indexOf(col, row)
	if err != nil {
		return 0, denseErrorf(ctxAt, col, row, err)
	}

	return m.data[off], nil
}

// Set stores v at (col, row).
//
// Errors:
//   - ErrOutOfRange when col ∉ [0,w) or row ∉ [0,h).
func (m *Dense) Set(col, row, v int) error {
	off, err := m.indexOf(col, row)
	if err != nil {
		return denseErrorf(ctxSet, col, row, err)
	}
	m.data[off] = v

	return nil
}

// SetRowOneHot rewrites row so that it holds 1 at col and 0 everywhere else.
// This is the "bind" step of a mapping matrix: query node row now maps to
// data node col only.
//
// Complexity: O(w).
func (m *Dense) SetRowOneHot(col, row int) error {
	off, err := m.indexOf(col, row)
	if err != nil {
		return denseErrorf(ctxOneHot, col, row, err)
	}

	base := row * m.w
	var c int
	for c = 0; c < m.w; c++ {
		m.data[base+c] = 0
	}
	m.data[off] = 1

	return nil
}

// RowSum returns the sum of all column entries of row.
// For an adjacency matrix this is the out-degree of node row.
//
// Complexity: O(w).
func (m *Dense) RowSum(row int) (int, error) {
	if row < 0 || row >= m.h {
		return 0, denseErrorf(ctxRowSum, 0, row, ErrOutOfRange)
	}

	sum, base := 0, row*m.w
	var c int
	for c = 0; c < m.w; c++ {
		sum += m.data[base+c]
	}

	return sum, nil
}

// ColumnSum returns the sum of all row entries of col.
// For an adjacency matrix this is the in-degree of node col.
//
// Complexity: O(h).
func (m *Dense) ColumnSum(col int) (int, error) {
	if col < 0 || col >= m.w {
		return 0, denseErrorf(ctxColumnSum, col, 0, ErrOutOfRange)
	}

	sum := 0
	var r int
	for r = 0; r < m.h; r++ {
		sum += m.data[r*m.w+col]
	}

	return sum, nil
}

// IsDiagonal reports whether m is square and non-zero exactly on the main
// diagonal (every diagonal entry non-zero, every other entry zero).
func (m *Dense) IsDiagonal() bool {
	if !m.IsSquare() {
		return false
	}

	diagonal := true
	m.Do(func(col, row, v int) bool {
		if (col == row) != (v != 0) {
			diagonal = false
		}

		return diagonal
	})

	return diagonal
}

// IsBinary reports whether every entry is 0 or 1.
func (m *Dense) IsBinary() bool {
	binary := true
	m.Do(func(_, _, v int) bool {
		binary = v == 0 || v == 1

		return binary
	})

	return binary
}

// Clone returns a deep copy; mutations of the copy never reach m.
// Complexity: O(w*h).
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{w: m.w, h: m.h, data: cp}
}

// Equal reports whether o has the same shape and entries as m.
// A nil o is never equal.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.w != o.w || m.h != o.h {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// ToRows exports m as a fresh row-major [][]int, the inverse of FromRows.
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.h)
	var r int
	for r = 0; r < m.h; r++ {
		out[r] = make([]int, m.w)
		copy(out[r], m.data[r*m.w:(r+1)*m.w])
	}

	return out
}

// Do visits each element in row-major order (row outer, col inner) and
// calls f(col, row, v). Iteration stops early when f returns false.
func (m *Dense) Do(f func(col, row, v int) bool) {
	var r, c, base int
	for r = 0; r < m.h; r++ {
		base = r * m.w
		for c = 0; c < m.w; c++ {
			if !f(c, r, m.data[base+c]) {
				return
			}
		}
	}
}

// String renders one line per row, e.g. "[0, 1, 0]\n".
// Intended for logs, diagnostics and golden tests; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var r, c, base int
	for r = 0; r < m.h; r++ {
		b.WriteString(_fmtRowOpen)
		base = r * m.w
		for c = 0; c < m.w; c++ {
			b.WriteString(strconv.Itoa(m.data[base+c]))
			if c+1 < m.w {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
