// SPDX-License-Identifier: MIT
// Package matrix: dense linear-algebra kernels over the complex field.
//
// Purpose:
//   - Mirror every real kernel of impl_linear_algebra.go for *CDense so the
//     matrix functions can run the same algorithm over either field.
//   - Multiply through gonum's cblas128.Gemm; element-wise arithmetic through
//     gonum's cmplxs.
//
// Notes:
//   - gonum's mat package has no complex LU, so Solve implements Doolittle
//     elimination with partial (row) pivoting on a private copy, following
//     the fixed loop orders of the real kernels. An exactly zero pivot or a
//     pivot-magnitude spread beyond mat.ConditionTolerance reports ErrSingular,
//     matching the threshold the real path inherits from gonum.

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// general exposes the flat buffer of m as a cblas128.General without copying.
func (m *CDense) general() cblas128.General {
	return cblas128.General{Rows: m.r, Cols: m.c, Stride: m.c, Data: m.data}
}

// Add computes C = A + B. Shapes must match.
func (m *CDense) Add(b *CDense) (*CDense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := m.clone()
	cmplxs.Add(out.data, b.data)

	return out, nil
}

// Sub computes C = A - B. Shapes must match.
func (m *CDense) Sub(b *CDense) (*CDense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := m.clone()
	cmplxs.Sub(out.data, b.data)

	return out, nil
}

// AddScaled computes C = A + alpha*B for a real alpha. Shapes must match.
func (m *CDense) AddScaled(alpha float64, b *CDense) (*CDense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opAddScaled, err)
	}
	out := m.clone()
	cmplxs.AddScaled(out.data, complex(alpha, 0), b.data)

	return out, nil
}

// Scale returns alpha*A for a real alpha.
func (m *CDense) Scale(alpha float64) *CDense {
	return m.ScaleComplex(complex(alpha, 0))
}

// ScaleComplex returns c*A for a complex c.
func (m *CDense) ScaleComplex(c complex128) *CDense {
	out := m.clone()
	cmplxs.Scale(c, out.data)

	return out
}

// Neg returns -A.
func (m *CDense) Neg() *CDense { return m.Scale(-1) }

// Mul performs C = A × B through cblas128.Gemm (alpha=1, beta=0).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*n*c).
func (m *CDense) Mul(b *CDense) (*CDense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := m.like(m.r, b.c)
	if m.r == 0 || m.c == 0 || b.c == 0 {
		return out, nil // BLAS rejects zero strides; the product is zero anyway
	}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, m.general(), b.general(), 0, out.general())

	return out, nil
}

// Norm1 returns the induced 1-norm: max_j Σ_i |a_ij|.
// Fixed j→i traversal. Complexity: O(r*c).
func (m *CDense) Norm1() float64 {
	best := NormZero
	var i, j int
	var sum float64
	for j = 0; j < m.c; j++ {
		sum = ZeroSum
		for i = 0; i < m.r; i++ {
			sum += cmplx.Abs(m.data[i*m.c+j])
		}
		if math.IsNaN(sum) {
			return sum // NaN poisons the maximum
		}
		if sum > best {
			best = sum
		}
	}

	return best
}

// Trace returns the sum of the diagonal entries of a square matrix.
func (m *CDense) Trace() (complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum complex128
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// ShiftDiagonal returns A + alpha*I for a square A.
func (m *CDense) ShiftDiagonal(alpha complex128) (*CDense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opShift, err)
	}
	out := m.clone()
	for i := 0; i < m.r; i++ {
		out.data[i*m.c+i] += alpha
	}

	return out, nil
}

// Solve returns X such that A·X = B, where A is m (square) and B is b.
//
// Implementation:
//   - Stage 1: ValidateSolveCompatible(A, B); copy A into an LU workspace and B into X.
//   - Stage 2: for col=0..n-1 pick the row with the largest |pivot| (partial
//     pivoting), swap rows in LU and X, eliminate below the pivot.
//   - Stage 3: backward substitution U·X = Y, bottom-up, per right-hand column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//   - ErrSingular on an exactly zero pivot or when max|pivot|/min|pivot|
//     exceeds mat.ConditionTolerance.
//
// Determinism:
//   - Fixed col↑, i↑, j↑ elimination; ties in pivot search keep the upper row.
//
// Complexity:
//   - Time O(n^3 + n^2*k), Space O(n^2 + n*k).
func (m *CDense) Solve(b *CDense) (*CDense, error) {
	if err := ValidateSolveCompatible(m, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n, k := m.r, b.c
	x := m.like(n, k)
	copy(x.data, b.data)
	if n == 0 || k == 0 {
		return x, nil
	}
	lu := make([]complex128, n*n)
	copy(lu, m.data)

	var (
		col, i, j, p   int
		best, mag      float64
		maxPiv, minPiv = 0.0, math.Inf(1)
		pivot, f       complex128
	)
	for col = 0; col < n; col++ {
		// Partial pivoting: largest magnitude in column col at or below the diagonal.
		p, best = col, cmplx.Abs(lu[col*n+col])
		for i = col + 1; i < n; i++ {
			if mag = cmplx.Abs(lu[i*n+col]); mag > best {
				p, best = i, mag
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		maxPiv, minPiv = math.Max(maxPiv, best), math.Min(minPiv, best)
		if p != col {
			swapRows(lu, n, p, col)
			swapRows(x.data, k, p, col)
		}
		pivot = lu[col*n+col]
		// Eliminate rows below the pivot; store multipliers in the strict lower part.
		for i = col + 1; i < n; i++ {
			f = lu[i*n+col] / pivot
			if f == 0 {
				continue // nothing to eliminate
			}
			lu[i*n+col] = f
			for j = col + 1; j < n; j++ {
				lu[i*n+j] -= f * lu[col*n+j]
			}
			for j = 0; j < k; j++ {
				x.data[i*k+j] -= f * x.data[col*k+j]
			}
		}
	}
	if maxPiv/minPiv > mat.ConditionTolerance {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	// Backward substitution: U*x = y, bottom-up.
	var q int
	var sum complex128
	for i = n - 1; i >= 0; i-- {
		pivot = lu[i*n+i]
		for j = 0; j < k; j++ {
			sum = x.data[i*k+j]
			for q = i + 1; q < n; q++ {
				sum -= lu[i*n+q] * x.data[q*k+j]
			}
			x.data[i*k+j] = sum / pivot
		}
	}

	return x, nil
}

// swapRows exchanges rows a and b of a row-major buffer with the given stride.
func swapRows(data []complex128, stride, a, b int) {
	ra := data[a*stride : (a+1)*stride]
	rb := data[b*stride : (b+1)*stride]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
