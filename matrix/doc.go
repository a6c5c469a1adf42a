// SPDX-License-Identifier: MIT

// Package matrix provides dense real and complex matrices and the linear
// algebra the matrix functions in matfn are built on.
//
// The matrix package provides:
//
//   - Dense (float64) and CDense (complex128): row-major containers with
//     bounds-checked At/Set and a per-instance NaN/Inf ingestion policy.
//   - Matrix: the shape-and-field interface both containers satisfy;
//     Field tags real vs complex storage and Promote mixes them.
//   - Kernels: Add, Sub, AddScaled, Scale, Mul, Norm1, Trace,
//     ShiftDiagonal and Solve on each container. Real kernels delegate to
//     gonum's mat and floats packages; complex kernels use cblas128 and
//     cmplxs, with an in-package pivoting LU for Solve.
//   - Facades (Product, Sum, Diff, Norm1, Solve, AllClose) for callers
//     holding the interface; mixed fields promote to complex.
//
// Zero-sized shapes are valid everywhere. Kernels never mutate operands.
//
// See the tests in this package and in matfn for usage patterns.
package matrix
