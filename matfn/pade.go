// SPDX-License-Identifier: MIT

package matfn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// padeCoefficients are the coefficients b[0..13] of the [13/13] diagonal
// Padé approximant of exp(x). The evaluator below pairs b8 with A rather
// than A2 (see pade13), so the rational function it builds is not the exact
// [13/13] approximant.
var padeCoefficients = [14]float64{
	64764752532480000,
	32382376266240000,
	7771770303897600,
	1187353796428800,
	129060195264000,
	10559470521600,
	670442572800,
	33522128640,
	1323241920,
	40840800,
	960960,
	16380,
	182,
	1,
}

// theta13 is the scaling threshold: inputs are scaled until their 1-norm
// is at most theta13/2. It is the unit-roundoff bound of the exact [13/13]
// approximant; for the evaluator used here the relative error of r13 at
// that norm is of order 1e-5, not unit roundoff.
const theta13 = 5.37

// ScaleExponent returns the number s of squarings Expm performs for a
// shifted input of 1-norm norm: ceil(log2(norm/5.37)) + 1 when norm exceeds
// 5.37, and exactly 1 otherwise. The result is never below 1, so at least
// one squaring always happens.
func ScaleExponent(norm float64) int {
	if norm > theta13 {
		return int(math.Ceil(math.Log2(norm/theta13))) + 1
	}

	return 1
}

// operand is the kernel method set shared by *matrix.Dense and
// *matrix.CDense. Coefficients are real on both fields.
type operand[M any] interface {
	matrix.Matrix
	Add(b M) (M, error)
	Sub(b M) (M, error)
	AddScaled(alpha float64, b M) (M, error)
	Scale(alpha float64) M
	Mul(b M) (M, error)
	Solve(b M) (M, error)
}

// linComb returns Σ coef[k]·terms[k]. len(coef) == len(terms) >= 1.
func linComb[M operand[M]](coef []float64, terms ...M) (M, error) {
	out := terms[0].Scale(coef[0])
	var err error
	for k := 1; k < len(terms); k++ {
		if out, err = out.AddScaled(coef[k], terms[k]); err != nil {
			return out, err
		}
	}

	return out, nil
}

// pade13 builds the coefficient blocks of the order-13 rational approximant:
//
//	u1 = b13·A6 + b11·A4 + b9·A2
//	u2 = b7·A6  + b5·A4  + b3·A2 + b1·E
//	v1 = b12·A6 + b10·A4 + b8·A
//	v2 = b6·A6  + b4·A4  + b2·A2 + b0·E
//
// v1 carries b8·A, not b8·A2, so v gains the odd term b8·(A7 - A8) over the
// exact denominator polynomial. The truncation error grows like
// (b8/b0)·‖A‖^7 ≈ 2e-8·‖A‖^7 and dominates rounding for ‖A‖ ≳ 0.1.
func pade13[M operand[M]](E, A, A2, A4, A6 M) (u1, u2, v1, v2 M, err error) {
	b := &padeCoefficients
	if u1, err = linComb([]float64{b[13], b[11], b[9]}, A6, A4, A2); err != nil {
		return
	}
	if u2, err = linComb([]float64{b[7], b[5], b[3], b[1]}, A6, A4, A2, E); err != nil {
		return
	}
	if v1, err = linComb([]float64{b[12], b[10], b[8]}, A6, A4, A); err != nil {
		return
	}
	v2, err = linComb([]float64{b[6], b[4], b[2], b[0]}, A6, A4, A2, E)

	return
}

// padeSquare evaluates r13 ≈ exp(A) for an already scaled A and squares it
// s times. E is the identity of A's size and field. Each squaring doubles
// the relative error of r13.
//
// Implementation:
//   - Stage 1: powers A2 = A·A, A4 = A2·A2, A6 = A2·A4.
//   - Stage 2: u = A·(A6·u1 + u2), v = A6·v1 + v2.
//   - Stage 3: r13 = solve(-u + v, u + v).
//   - Stage 4: x = r13; x = x·x, s times.
//
// Errors:
//   - ErrSingular from the solve; no fallback order is tried.
func padeSquare[M operand[M]](A, E M, s int) (M, error) {
	var zero M
	A2, err := A.Mul(A)
	if err != nil {
		return zero, err
	}
	A4, err := A2.Mul(A2)
	if err != nil {
		return zero, err
	}
	A6, err := A2.Mul(A4)
	if err != nil {
		return zero, err
	}

	u1, u2, v1, v2, err := pade13(E, A, A2, A4, A6)
	if err != nil {
		return zero, err
	}
	t, err := A6.Mul(u1)
	if err != nil {
		return zero, err
	}
	if t, err = t.Add(u2); err != nil {
		return zero, err
	}
	u, err := A.Mul(t)
	if err != nil {
		return zero, err
	}
	v, err := A6.Mul(v1)
	if err != nil {
		return zero, err
	}
	if v, err = v.Add(v2); err != nil {
		return zero, err
	}

	den, err := v.Sub(u) // -u + v
	if err != nil {
		return zero, err
	}
	num, err := u.Add(v)
	if err != nil {
		return zero, err
	}
	x, err := den.Solve(num)
	if err != nil {
		return zero, fmt.Errorf("pade denominator: %w", err)
	}

	for i := 0; i < s; i++ {
		if x, err = x.Mul(x); err != nil {
			return zero, err
		}
	}

	return x, nil
}
