// Package lvlinalg is an in-memory toolkit for dense matrix functions:
// the matrix exponential, sine and cosine over real or complex entries,
// plus the Khatri-Rao product.
//
// 🚀 What is inside?
//
//	• matrix/ — row-major *Dense (float64) and *CDense (complex128)
//	            containers, the Matrix tagged variant, validators and the
//	            gonum-backed kernels (Mul, Solve, Norm1, Trace, ...)
//	• matfn/  — Expm (Padé-13 scaling and squaring with a trace shift),
//	            Cosm, Sinm, KhatriRao and KhatriRaoBatch
//	• examples/ — runnable demo: graph communicability via Expm
//
// ✨ Guarantees
//
//   - Immutable values: every operation returns a fresh matrix.
//   - Explicit fields: each entry point runs a dedicated real or complex path.
//   - Sentinel errors matched with errors.Is; no partial results.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{0, 1}, {0, 0}})
//	x, _ := matfn.Expm(a) // [[1, 1], [0, 1]]
//
//	go get github.com/katalvlaran/lvlinalg
package lvlinalg
