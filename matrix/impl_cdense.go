// SPDX-License-Identifier: MIT

// Package matrix - CDense storage (row-major, complex128) & safe accessors.
//
// CDense mirrors Dense over the complex field: same layout formula,
// same numeric policy (a value is rejected when either part is NaN/±Inf),
// same error surface. The conversions between the two fields live in
// conversions.go.

package matrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

const ctxCFrom = "NewCDenseFrom"

// cdenseErrorf wraps an error with a uniform CDense context and callsite indices.
func cdenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, err)
}

// CDense is a concrete row-major matrix over the complex field.
type CDense struct {
	r, c           int          // row and column counts (>=0)
	data           []complex128 // contiguous row-major storage (len == r*c)
	validateNaNInf bool         // numeric guard: reject NaN/Inf parts in Set when true
}

var (
	_ Matrix       = (*CDense)(nil)
	_ fmt.Stringer = (*CDense)(nil)
)

// NewCDense creates an r×c complex zero matrix.
// Errors: ErrInvalidDimensions on negative dimensions.
// Complexity: O(r*c).
func NewCDense(rows, cols int, opts ...Option) (*CDense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &CDense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewCDenseFrom creates an r×c complex matrix holding a copy of data.
// Errors: ErrInvalidDimensions, ErrBadShape, ErrNaNInf (under the policy).
func NewCDenseFrom(rows, cols int, data []complex128, opts ...Option) (*CDense, error) {
	m, err := NewCDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len %d for %dx%d: %w", ctxCFrom, len(data), rows, cols, ErrBadShape)
	}
	if m.validateNaNInf {
		for k, v := range data {
			if isNonFiniteC(v) {
				return nil, cdenseErrorf(ctxCFrom, k/max(cols, 1), k%max(cols, 1), ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// CFromRows builds a CDense from a rectangular [][]complex128 literal.
// An empty slice yields a 0×0 matrix. Ragged rows return ErrBadShape.
func CFromRows(rows [][]complex128, opts ...Option) (*CDense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	flat := make([]complex128, 0, r*c)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("CFromRows: row %d has %d cols, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
		flat = append(flat, rows[i]...)
	}

	return NewCDenseFrom(r, c, flat, opts...)
}

// Rows returns the row count.
func (m *CDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *CDense) Cols() int { return m.c }

// Shape packs Rows() and Cols().
func (m *CDense) Shape() (rows, cols int) { return m.r, m.c }

// Field reports Complex.
func (m *CDense) Field() Field { return Complex }

func (m *CDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *CDense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, cdenseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf when either part is non-finite
// and the numeric policy is enabled.
func (m *CDense) Set(row, col int, v complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cdenseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFiniteC(v) {
		return cdenseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *CDense) Clone() Matrix { return m.clone() }

func (m *CDense) clone() *CDense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

func (m *CDense) like(rows, cols int) *CDense {
	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols), validateNaNInf: m.validateNaNInf}
}

// RawData returns a copy of the row-major buffer.
func (m *CDense) RawData() []complex128 {
	out := make([]complex128, len(m.data))
	copy(out, m.data)

	return out
}

// HasNaNInf reports whether any entry has a NaN or ±Inf part.
func (m *CDense) HasNaNInf() bool {
	for _, v := range m.data {
		if isNonFiniteC(v) {
			return true
		}
	}

	return false
}

// String renders rows as bracketed, comma-separated lines (%g).
func (m *CDense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// isNonFiniteC reports a NaN or ±Inf in either part.
func isNonFiniteC(v complex128) bool { return cmplx.IsNaN(v) || cmplx.IsInf(v) }
