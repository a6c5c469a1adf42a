// SPDX-License-Identifier: MIT

// Package matfn computes matrix functions of dense real or complex matrices
// and the Khatri-Rao product.
//
// What & Why:
//
//	Expm evaluates the matrix exponential by scaling and squaring with a
//	fixed order-13 rational approximant built from the [13/13] Padé
//	coefficients (after Higham, SIAM J. Matrix Anal. Appl. 26(4), 2005,
//	Algorithm 2.3, simplified: always order 13, no balancing). The input is
//	first shifted by its mean eigenvalue trace(A)/n, scaled by 2^-s so its
//	1-norm falls under θ13 = 5.37, approximated, squared s times and finally
//	multiplied by exp(mu).
//
//	Accuracy: the denominator uses b8·A where the exact approximant has
//	b8·A2. Results are exact for nilpotent shifted inputs (A² = 0) and for
//	small norms, but carry a truncation error that reaches roughly 1e-5
//	relative at ‖A‖₁ ≈ θ13/2 before squaring, and 1e-4..1e-3 after several
//	squarings (e.g. diag(20, -20), rotations by 10 radians). Expm is not a
//	unit-roundoff exponential.
//
//	Cosm and Sinm derive the matrix cosine and sine from Expm through Euler's
//	identity: one exponential for real input, two for complex input.
//
//	KhatriRao is the column-wise Kronecker product of two matrices sharing a
//	column count; KhatriRaoBatch broadcasts it over a leading batch axis.
//
// Fields:
//
//	Every entry point switches explicitly on the concrete container
//	(*matrix.Dense or *matrix.CDense) and runs a dedicated real or complex
//	path; the Padé evaluation, solve and squaring are shared through a
//	generic helper constrained to the kernel method set.
//
// Errors:
//
//	ErrShapeMismatch, ErrDimension and ErrSingular are matched with errors.Is.
//	No function returns a partial result.
//
// Concurrency:
//
//	All functions are pure and safe for concurrent use; each call allocates
//	its own intermediates.
package matfn
