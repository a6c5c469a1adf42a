// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// TestFacades_Promotion runs the Matrix-level facades on mixed fields.
func TestFacades_Promotion(t *testing.T) {
	d := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	c := MustCDense(t, [][]complex128{{1i, 0}, {0, 1i}})

	p, err := matrix.Product(d, c)
	require.NoError(t, err)
	assert.Equal(t, matrix.Complex, p.Field())
	requireClose(t, MustCDense(t, [][]complex128{{1i, 2i}, {3i, 4i}}), p)

	s, err := matrix.Sum(d, d)
	require.NoError(t, err)
	assert.IsType(t, &matrix.Dense{}, s)
	requireClose(t, d.Scale(2), s)

	df, err := matrix.Diff(c, d)
	require.NoError(t, err)
	requireClose(t, MustCDense(t, [][]complex128{{-1 + 1i, -2}, {-3, -4 + 1i}}), df)

	x, err := matrix.Solve(c, d)
	require.NoError(t, err)
	requireClose(t, MustCDense(t, [][]complex128{{-1i, -2i}, {-3i, -4i}}), x)
}

func TestFacades_Norm1AndLikes(t *testing.T) {
	n, err := matrix.Norm1(MustCDense(t, [][]complex128{{3 + 4i}}))
	require.NoError(t, err)
	assert.Equal(t, 5.0, n)

	var nilDense *matrix.Dense
	_, err = matrix.Norm1(nilDense)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Norm1(hide{MustDense(t, [][]float64{{1}})})
	assert.ErrorIs(t, err, matrix.ErrFieldMismatch)

	I, err := matrix.IdentityLike(MustCDense(t, [][]complex128{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	requireClose(t, MustCDense(t, [][]complex128{{1, 0}, {0, 1}}), I)

	Z, err := matrix.ZerosLike(MustDense(t, [][]float64{{1, 2, 3}}))
	require.NoError(t, err)
	assert.Equal(t, 1, Z.Rows())
	assert.Equal(t, 3, Z.Cols())

	_, err = matrix.IdentityLike(MustDense(t, [][]float64{{1, 2}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Product(hide{MustDense(t, [][]float64{{1}})}, MustDense(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, matrix.ErrFieldMismatch)
}
