package slip39

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGFTablesAreInverse(t *testing.T) {
	for i := 0; i < 255; i++ {
		x := gfExp[i]
		require.NotZero(t, x, "gfExp[%d] must be nonzero", i)
		require.Equal(t, byte(i), gfLog[x], "gfLog must invert gfExp at %d", i)
	}
}

func TestGFMulZero(t *testing.T) {
	require.Equal(t, byte(0), gfMul(0, 0x42))
	require.Equal(t, byte(0), gfMul(0x42, 0))
}

func TestGFMulIdentity(t *testing.T) {
	// x * 1 == x for every nonzero x: exp[log(x)+log(1)] == exp[log(x)].
	one := gfExp[0]
	for i := 1; i < 255; i++ {
		x := gfExp[i]
		require.Equal(t, x, gfMul(x, one))
	}
}

func TestInterpolateShortCircuit(t *testing.T) {
	rows := []rawShare{
		{x: 1, data: []byte{0xAA, 0xBB}},
		{x: 2, data: []byte{0xCC, 0xDD}},
	}
	got, err := interpolate(rows, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB}, got)
}

func TestInterpolateDuplicateX(t *testing.T) {
	rows := []rawShare{
		{x: 5, data: []byte{0x01, 0x02}},
		{x: 5, data: []byte{0x03, 0x04}},
	}
	_, err := interpolate(rows, 9)
	require.Error(t, err)
	require.True(t, IsMnemonicError(err))
}

func TestInterpolateVaryingLength(t *testing.T) {
	rows := []rawShare{
		{x: 1, data: []byte{0x01, 0x02}},
		{x: 2, data: []byte{0x03}},
	}
	_, err := interpolate(rows, 9)
	require.Error(t, err)
}

// TestInterpolateRecoversPolynomial splits a secret with splitSecret and
// checks that interpolating at SECRET_INDEX from any threshold-size
// subset of the resulting rows gives back the original secret bytes —
// the core correctness property the whole scheme rests on.
func TestInterpolateRecoversPolynomial(t *testing.T) {
	secret := []byte("ABCDEFGHIJKLMNOP")
	rows, err := splitSecret(3, 5, secret)
	require.NoError(t, err)

	got, err := interpolate(rows[:3], secretIndex)
	require.NoError(t, err)
	require.Equal(t, secret, got)

	got2, err := interpolate(rows[1:4], secretIndex)
	require.NoError(t, err)
	require.Equal(t, secret, got2)
}
