// SPDX-License-Identifier: MIT
// Package matrix: conversions between the real and complex containers.
//
// Complexify promotes a real matrix (imaginary parts zero); RealPart and
// ImagPart extract the components of a complex matrix. ToComplex accepts
// either container and is the promotion step used when operands of mixed
// fields meet (e.g., KhatriRao of a real and a complex matrix).

package matrix

import "fmt"

const opToComplex = "ToComplex"

// Complexify returns a complex copy of m with zero imaginary parts.
// Complexity: O(r*c).
func (m *Dense) Complexify() *CDense {
	out := &CDense{r: m.r, c: m.c, data: make([]complex128, len(m.data)), validateNaNInf: m.validateNaNInf}
	for k, v := range m.data {
		out.data[k] = complex(v, 0)
	}

	return out
}

// RealPart returns Re(m) as a real matrix.
func (m *CDense) RealPart() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	for k, v := range m.data {
		out.data[k] = real(v)
	}

	return out
}

// ImagPart returns Im(m) as a real matrix.
func (m *CDense) ImagPart() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	for k, v := range m.data {
		out.data[k] = imag(v)
	}

	return out
}

// ToComplex returns m as a *CDense: a clone when m is already complex,
// a promoted copy when m is real.
// Errors: ErrNilMatrix; ErrFieldMismatch for foreign Matrix implementations.
func ToComplex(m Matrix) (*CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToComplex, err)
	}
	switch v := m.(type) {
	case *Dense:
		return v.Complexify(), nil
	case *CDense:
		return v.clone(), nil
	default:
		return nil, matrixErrorf(opToComplex, fmt.Errorf("%T: %w", m, ErrFieldMismatch))
	}
}
