// SPDX-License-Identifier: MIT

package matfn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// foreign hides the concrete container behind the Matrix interface.
type foreign struct{ matrix.Matrix }

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func cdense(t *testing.T, rows [][]complex128) *matrix.CDense {
	t.Helper()
	m, err := matrix.CFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireClose asserts |got-want| <= tol + tol*|want| entry-wise.
func requireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, tol, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}
