// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels over the real
// field: element-wise addition, subtraction, scaling and linear combination,
// matrix multiplication, the induced 1-norm, trace, diagonal shift and the
// general dense linear solve. All kernels perform strict fail-fast
// validation and return fresh matrices; operands are never mutated.
//
// Purpose:
//   - Serve as the DenseLinearAlgebra collaborator of the matrix functions.
//   - Delegate the O(n^3) work to gonum (mat.Dense.Mul, mat.Dense.Solve,
//     mat.Norm) while keeping this package's error surface and numeric policy.
//
// Notes:
//   - gonum's mat.NewDense rejects zero-sized shapes, so every kernel answers
//     degenerate shapes itself before wrapping the flat buffers.
//   - Wrapping is zero-copy: mat.NewDense shares the backing slice, and
//     operands are only ever read through the wrapper.

package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddScaled = "AddScaled"
	opMul       = "Mul"
	opTrace     = "Trace"
	opShift     = "ShiftDiagonal"
	opSolve     = "Solve"
	opAllClose  = "AllClose"
	opIdentity  = "Identity"
	opNorm1     = "Norm1"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`;
//     wrapping a nil cause yields a non-nil error.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// gonumView wraps the flat buffer of m as a *mat.Dense without copying.
// Caller guarantees m.r > 0 && m.c > 0.
func (m *Dense) gonumView() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// Add computes C = A + B. Shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) Add(b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := m.clone()
	floats.Add(out.data, b.data)

	return out, nil
}

// Sub computes C = A - B. Shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) Sub(b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := m.clone()
	floats.Sub(out.data, b.data)

	return out, nil
}

// AddScaled computes C = A + alpha*B. Shapes must match.
// It is the building block of the Padé linear combinations.
// Complexity: O(r*c).
func (m *Dense) AddScaled(alpha float64, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opAddScaled, err)
	}
	out := m.clone()
	floats.AddScaled(out.data, alpha, b.data)

	return out, nil
}

// Scale returns alpha*A as a fresh matrix. Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) *Dense {
	out := m.clone()
	floats.Scale(alpha, out.data)

	return out
}

// Neg returns -A.
func (m *Dense) Neg() *Dense { return m.Scale(-1) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: degenerate shapes produce the zero r×c result directly.
//   - Stage 3: gonum Dense.Mul writes straight into the result buffer.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := m.like(m.r, b.c)
	if m.r == 0 || m.c == 0 || b.c == 0 {
		return out, nil // empty inner/outer dimension ⇒ zero matrix
	}
	out.gonumView().Mul(m.gonumView(), b.gonumView())

	return out, nil
}

// Norm1 returns the induced 1-norm (maximum absolute column sum).
// A zero-sized matrix has norm 0. Complexity: O(r*c).
func (m *Dense) Norm1() float64 {
	if m.r == 0 || m.c == 0 {
		return NormZero
	}

	return mat.Norm(m.gonumView(), 1)
}

// Trace returns the sum of the diagonal entries of a square matrix.
// Errors: ErrNonSquare (joined with ErrDimensionMismatch).
func (m *Dense) Trace() (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// ShiftDiagonal returns A + alpha*I for a square A.
// With alpha = -trace(A)/n this is the trace shift applied before scaling.
func (m *Dense) ShiftDiagonal(alpha float64) (*Dense, error) {
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
//   - Stage 1: ValidateSolveCompatible(A, B).
//   - Stage 2: gonum Dense.Solve (LU with partial pivoting) into a fresh buffer.
//   - Stage 3: translate gonum's singularity reports into ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//   - ErrSingular when A is exactly singular or its condition number exceeds
//     mat.ConditionTolerance.
//
// Complexity:
//   - Time O(n^3 + n^2*k), Space O(n^2 + n*k).
//
// AI-Hints:
//   - Never form A^{-1} to solve; this kernel factorizes once per call.
func (m *Dense) Solve(b *Dense) (*Dense, error) {
	if err := ValidateSolveCompatible(m, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	out := m.like(m.c, b.c)
	if m.r == 0 || b.c == 0 {
		return out, nil
	}
	if err := out.gonumView().Solve(m.gonumView(), b.gonumView()); err != nil {
		return nil, matrixErrorf(opSolve, translateSolveErr(err))
	}

	return out, nil
}

// translateSolveErr maps gonum's singular/ill-conditioned reports onto
// ErrSingular, keeping gonum's detail in the message.
func translateSolveErr(err error) error {
	var cond mat.Condition
	if errors.Is(err, mat.ErrSingular) || errors.As(err, &cond) {
		return fmt.Errorf("%w (%v)", ErrSingular, err)
	}

	return err
}

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for traces and substitutions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exactly zero pivot in LU routines.
const ZeroPivot = 0.0
