// SPDX-License-Identifier: MIT

package matfn

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Cosm returns the matrix cosine of the square matrix a.
//
//   - real a:    Re(expm(i·a)), one exponential; the result is *matrix.Dense.
//   - complex a: 0.5·(expm(i·a) + expm(-i·a)); the result is *matrix.CDense.
//
// Errors: as Expm.
func Cosm(a matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateSquareInput(opCosm, a, o); err != nil {
		return nil, err
	}

	switch m := a.(type) {
	case *matrix.Dense:
		e, err := expmComplex(m.Complexify().ScaleComplex(1i), o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opCosm, err)
		}

		return e.RealPart(), nil
	case *matrix.CDense:
		ep, em, err := expmPair(m, o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opCosm, err)
		}
		sum, err := ep.Add(em)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opCosm, err)
		}

		return sum.Scale(0.5), nil
	default:
		return nil, fmt.Errorf("%s: %T: %w", opCosm, a, matrix.ErrFieldMismatch)
	}
}

// Sinm returns the matrix sine of the square matrix a.
//
//   - real a:    Im(expm(i·a)), one exponential; the result is *matrix.Dense.
//   - complex a: -0.5i·(expm(i·a) - expm(-i·a)); the result is *matrix.CDense.
//
// Errors: as Expm.
func Sinm(a matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateSquareInput(opSinm, a, o); err != nil {
		return nil, err
	}

	switch m := a.(type) {
	case *matrix.Dense:
		e, err := expmComplex(m.Complexify().ScaleComplex(1i), o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opSinm, err)
		}

		return e.ImagPart(), nil
	case *matrix.CDense:
		ep, em, err := expmPair(m, o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opSinm, err)
		}
		diff, err := ep.Sub(em)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opSinm, err)
		}

		return diff.ScaleComplex(-0.5i), nil
	default:
		return nil, fmt.Errorf("%s: %T: %w", opSinm, a, matrix.ErrFieldMismatch)
	}
}

// expmPair returns expm(i·a) and expm(-i·a).
func expmPair(a *matrix.CDense, o options) (*matrix.CDense, *matrix.CDense, error) {
	ep, err := expmComplex(a.ScaleComplex(1i), o)
	if err != nil {
		return nil, nil, err
	}
	em, err := expmComplex(a.ScaleComplex(-1i), o)
	if err != nil {
		return nil, nil, err
	}

	return ep, em, nil
}
