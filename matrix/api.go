// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points over the typed kernels for
//     callers holding the Matrix interface.
//   - Avoid logic duplication: each facade switches on the concrete
//     container and delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Mixed-field operands are promoted to complex (Field.Promote).
//
// AI-Hints:
//   - Prefer calling the typed methods directly on *Dense / *CDense inside
//     algorithms; facades exist for heterogeneous callers.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// n == 0 yields the 0×0 identity.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewCIdentity returns the complex n×n identity.
func NewCIdentity(n int, opts ...Option) (*CDense, error) {
	I, err := NewCDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// IdentityLike returns the identity of m's dimension and field; requires square m.
func IdentityLike(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	if m.Field() == Complex {
		return complexResult(NewCIdentity(m.Rows()))
	}

	return realResult(NewIdentity(m.Rows()))
}

// ZerosLike returns a zero matrix with the same shape and field as m.
func ZerosLike(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	if m.Field() == Complex {
		return complexResult(NewCDense(m.Rows(), m.Cols()))
	}

	return realResult(NewDense(m.Rows(), m.Cols()))
}

// ---------- Linear Algebra facades ----------

// Product computes a × b for any pair of containers (mixed fields promote).
// Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if da, db, ok := bothReal(a, b); ok {
		return realResult(da.Mul(db))
	}
	ca, cb, err := bothComplex(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return complexResult(ca.Mul(cb))
}

// Sum computes a + b for any pair of containers (mixed fields promote).
func Sum(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if da, db, ok := bothReal(a, b); ok {
		return realResult(da.Add(db))
	}
	ca, cb, err := bothComplex(a, b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return complexResult(ca.Add(cb))
}

// Diff computes a − b for any pair of containers (mixed fields promote).
func Diff(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if da, db, ok := bothReal(a, b); ok {
		return realResult(da.Sub(db))
	}
	ca, cb, err := bothComplex(a, b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return complexResult(ca.Sub(cb))
}

// Norm1 returns the induced 1-norm of m.
// Errors: ErrNilMatrix; ErrFieldMismatch for foreign implementations.
func Norm1(m Matrix) (float64, error) {
	switch v := m.(type) {
	case *Dense:
		if v != nil {
			return v.Norm1(), nil
		}
	case *CDense:
		if v != nil {
			return v.Norm1(), nil
		}
	default:
		if m != nil {
			return 0, matrixErrorf(opNorm1, fmt.Errorf("%T: %w", m, ErrFieldMismatch))
		}
	}

	return 0, matrixErrorf(opNorm1, ErrNilMatrix)
}

// Solve returns X with a·X = b (mixed fields promote).
// Errors: see (*Dense).Solve / (*CDense).Solve.
func Solve(a, b Matrix) (Matrix, error) {
	if err := ValidateSolveCompatible(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if da, db, ok := bothReal(a, b); ok {
		return realResult(da.Solve(db))
	}
	ca, cb, err := bothComplex(a, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return complexResult(ca.Solve(cb))
}

// realResult keeps a failed typed call from leaking a typed nil into the
// Matrix interface.
func realResult(m *Dense, err error) (Matrix, error) {
	if err != nil {
		return nil, err
	}

	return m, nil
}

// complexResult is realResult for *CDense.
func complexResult(m *CDense, err error) (Matrix, error) {
	if err != nil {
		return nil, err
	}

	return m, nil
}

// bothReal returns the typed operands when both are *Dense.
func bothReal(a, b Matrix) (*Dense, *Dense, bool) {
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)

	return da, db, okA && okB
}

// bothComplex promotes both operands to *CDense.
func bothComplex(a, b Matrix) (*CDense, *CDense, error) {
	ca, err := asComplex(a)
	if err != nil {
		return nil, nil, err
	}
	cb, err := asComplex(b)
	if err != nil {
		return nil, nil, err
	}

	return ca, cb, nil
}

// asComplex is ToComplex without the defensive clone for *CDense operands;
// kernels never mutate their inputs.
func asComplex(m Matrix) (*CDense, error) {
	if c, ok := m.(*CDense); ok {
		return c, nil
	}

	return ToComplex(m)
}
