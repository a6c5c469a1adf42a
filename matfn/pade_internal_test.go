// SPDX-License-Identifier: MIT

package matfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// TestPadeSquare_SingularDenominator feeds a zero "identity" so that
// v - u = b0·E vanishes; the solve failure must surface as ErrSingular.
func TestPadeSquare_SingularDenominator(t *testing.T) {
	t.Run("real", func(t *testing.T) {
		A, err := matrix.NewDense(2, 2)
		require.NoError(t, err)
		E, err := matrix.NewDense(2, 2)
		require.NoError(t, err)

		_, err = padeSquare(A, E, 1)
		assert.ErrorIs(t, err, ErrSingular)
		assert.ErrorIs(t, err, matrix.ErrSingular)
		assert.Contains(t, err.Error(), "pade denominator")
	})

	t.Run("complex", func(t *testing.T) {
		A, err := matrix.NewCDense(2, 2)
		require.NoError(t, err)
		E, err := matrix.NewCDense(2, 2)
		require.NoError(t, err)

		_, err = padeSquare(A, E, 1)
		assert.ErrorIs(t, err, ErrSingular)
		assert.Contains(t, err.Error(), "pade denominator")
	})
}

// TestPadeSquare_Identity checks that A = 0 with a true identity gives I
// exactly, whatever the number of squarings.
func TestPadeSquare_Identity(t *testing.T) {
	A, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	E, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	x, err := padeSquare(A, E, 4)
	require.NoError(t, err)
	assert.Equal(t, E.RawData(), x.RawData())
}
