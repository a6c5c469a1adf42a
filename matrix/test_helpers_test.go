// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the real and complex kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Default tolerances for kernel comparisons.
const (
	rtol = 1e-12
	atol = 1e-12
)

// hide wraps any Matrix to hide its concrete type from type switches.
// Kernels and facades must reject it with ErrFieldMismatch.
//
// AI-Hints:
//   - Wrap only the operand under test; keep the other one concrete.
type hide struct{ matrix.Matrix }

// MustDense builds a *Dense from a row literal or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustCDense builds a *CDense from a row literal or fails the test.
func MustCDense(t *testing.T, rows [][]complex128) *matrix.CDense {
	t.Helper()
	m, err := matrix.CFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireClose asserts AllClose(got, want) under the default tolerances.
func requireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}
