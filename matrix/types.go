// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense containers and kernels.
// This file intentionally contains ONLY domain-facing types (scalar field tag
// and the public Matrix interface). Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Field tags the scalar field a matrix is defined over.
// Entry points switch on it (or on the concrete type) to select an explicit
// real or complex code path.
type Field uint8

const (
	// Real marks float64 storage (*Dense).
	Real Field = iota
	// Complex marks complex128 storage (*CDense).
	Complex
)

// String returns "real" or "complex".
func (f Field) String() string {
	switch f {
	case Real:
		return "real"
	case Complex:
		return "complex"
	default:
		return "unknown"
	}
}

// Promote returns the field able to hold values of both f and g.
// Complex absorbs Real.
func (f Field) Promote(g Field) Field {
	if f == Complex || g == Complex {
		return Complex
	}

	return Real
}

// Matrix is the tagged variant over the dense containers of this package.
// The element accessors are type-specific (float64 on *Dense, complex128 on
// *CDense), so the interface only carries shape and field.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// Field reports the scalar field of the storage.
	Field() Field

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
