// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels (broadcast products and closeness).
//
// Purpose:
//   - BroadcastRowMul: the broadcast a[:, newaxis, :] * b[newaxis, :, :]
//     followed by collapsing the two leading axes, i.e. the row-pair product
//     table that the Khatri-Rao product is made of.
//   - AllClose: numeric comparison with NumPy-style |a-b| ≤ atol + rtol*|b|.
//
// Determinism:
//   - Fixed i→p→j loops; identical inputs yield bit-identical outputs.

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

const opBroadcastRowMul = "BroadcastRowMul"

// BroadcastRowMul returns the (m.Rows*b.Rows)×k matrix whose row i*b.Rows+p
// is the element-wise product of row i of m and row p of b. Both operands
// must have k columns.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (column counts differ).
// Complexity: O(r1*r2*k).
func (m *Dense) BroadcastRowMul(b *Dense) (*Dense, error) {
	if err := validateRowMul(m, b); err != nil {
		return nil, matrixErrorf(opBroadcastRowMul, err)
	}
	k, n2 := m.c, b.r
	out := m.like(m.r*n2, k)
	var i, p, dst int
	for i = 0; i < m.r; i++ {
		for p = 0; p < n2; p++ {
			dst = (i*n2 + p) * k
			floats.MulTo(out.data[dst:dst+k], m.data[i*k:(i+1)*k], b.data[p*k:(p+1)*k])
		}
	}

	return out, nil
}

// BroadcastRowMul is the complex counterpart of (*Dense).BroadcastRowMul.
func (m *CDense) BroadcastRowMul(b *CDense) (*CDense, error) {
	if err := validateRowMul(m, b); err != nil {
		return nil, matrixErrorf(opBroadcastRowMul, err)
	}
	k, n2 := m.c, b.r
	out := m.like(m.r*n2, k)
	var i, p, j, dst int
	for i = 0; i < m.r; i++ {
		for p = 0; p < n2; p++ {
			dst = (i*n2 + p) * k
			for j = 0; j < k; j++ {
				out.data[dst+j] = m.data[i*k+j] * b.data[p*k+j]
			}
		}
	}

	return out, nil
}

// validateRowMul – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Cols.
func validateRowMul(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("validateRowMul: Columns", ErrDimensionMismatch)
	}

	return nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Mixed fields are compared in the complex field.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - NaN/Inf tolerances are rejected with ErrNaNInf; negative ones are abs-ed.
//   - NaN never compares close; equal infinities do.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Real fast-path: operate over flat slices when both are *Dense.
	if da, db, ok := bothReal(a, b); ok {
		for idx := range da.data {
			if !closeReal(da.data[idx], db.data[idx], rtol, atol) {
				return false, nil // early-exit on first violation
			}
		}

		return true, nil
	}
	ca, cb, err := bothComplex(a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range ca.data {
		if !closeComplex(ca.data[idx], cb.data[idx], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

func closeReal(x, y, rtol, atol float64) bool {
	if x == y {
		return true // covers equal infinities
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

func closeComplex(x, y complex128, rtol, atol float64) bool {
	if x == y {
		return true
	}

	return cmplx.Abs(x-y) <= atol+rtol*cmplx.Abs(y)
}
