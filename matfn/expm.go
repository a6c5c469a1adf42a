// SPDX-License-Identifier: MIT

package matfn

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Expm returns the matrix exponential of the square matrix a.
//
// Implementation:
//   - Stage 1: mu = trace(a)/n, A = a - mu·I.
//   - Stage 2: s = ScaleExponent(‖A‖₁), A = A/2^s (s >= 1 always).
//   - Stage 3: [13/13] Padé approximant and s squarings (padeSquare).
//   - Stage 4: x = exp(mu)·x, real exp on *Dense, complex exp on *CDense.
//
// Behavior highlights:
//   - A 0×0 input returns a 0×0 result of the same field without touching
//     the linear-algebra kernels.
//   - The result has the concrete type of the input.
//
// Errors:
//   - ErrDimension for a nil input.
//   - ErrShapeMismatch (also matrix.ErrNonSquare) for a non-square input.
//   - matrix.ErrNaNInf when the shifted norm is not finite, or up front
//     under WithInputCheck.
//   - ErrSingular when the Padé denominator cannot be solved against.
//
// Complexity:
//   - Time O((6 + s)·n^3), Space O(n^2).
func Expm(a matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateSquareInput(opExpm, a, o); err != nil {
		return nil, err
	}

	switch m := a.(type) {
	case *matrix.Dense:
		x, err := expmReal(m, o)
		if err != nil {
			return nil, err
		}

		return x, nil
	case *matrix.CDense:
		x, err := expmComplex(m, o)
		if err != nil {
			return nil, err
		}

		return x, nil
	default:
		return nil, fmt.Errorf("%s: %T: %w", opExpm, a, matrix.ErrFieldMismatch)
	}
}

// expmReal is the real-field path of Expm.
func expmReal(a *matrix.Dense, o options) (*matrix.Dense, error) {
	n := a.Rows()
	if n == 0 {
		return matrix.NewDense(0, 0)
	}

	tr, err := a.Trace()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}
	mu := tr / float64(n)
	A, err := a.ShiftDiagonal(-mu)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}

	s, err := selectScale(A.Norm1(), n, matrix.Real, o)
	if err != nil {
		return nil, err
	}
	A = A.Scale(math.Ldexp(1, -s))

	E, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}
	x, err := padeSquare(A, E, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}

	return x.Scale(math.Exp(mu)), nil
}

// expmComplex is the complex-field path of Expm.
func expmComplex(a *matrix.CDense, o options) (*matrix.CDense, error) {
	n := a.Rows()
	if n == 0 {
		return matrix.NewCDense(0, 0)
	}

	tr, err := a.Trace()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}
	mu := tr / complex(float64(n), 0)
	A, err := a.ShiftDiagonal(-mu)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}

	s, err := selectScale(A.Norm1(), n, matrix.Complex, o)
	if err != nil {
		return nil, err
	}
	A = A.Scale(math.Ldexp(1, -s))

	E, err := matrix.NewCIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}
	x, err := padeSquare(A, E, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}

	return x.ScaleComplex(cmplx.Exp(mu)), nil
}

// selectScale turns the shifted 1-norm into the scale exponent and emits the
// per-call debug record.
func selectScale(norm float64, n int, f matrix.Field, o options) (int, error) {
	if math.IsNaN(norm) || math.IsInf(norm, 0) {
		return 0, fmt.Errorf("%s: shifted norm %v: %w", opExpm, norm, matrix.ErrNaNInf)
	}
	s := ScaleExponent(norm)
	o.logger.Debug("expm: scale selected",
		zap.Int("n", n),
		zap.Stringer("field", f),
		zap.Float64("norm", norm),
		zap.Bool("scaled", norm > theta13),
		zap.Int("s", s),
	)

	return s, nil
}

// validateSquareInput is the shared precondition of Expm, Cosm and Sinm.
func validateSquareInput(op string, a matrix.Matrix, o options) error {
	if matrix.IsNil(a) {
		return fmt.Errorf("%s: %w", op, errors.Join(ErrDimension, matrix.ErrNilMatrix))
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if o.checkInput {
		if err := matrix.ValidateFinite(a); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
