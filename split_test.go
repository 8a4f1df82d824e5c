package slip39

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitRecoverThresholdOne(t *testing.T) {
	secret := []byte("ABCDEFGHIJKLMNOP")
	rows, err := splitSecret(1, 4, secret)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for i, r := range rows {
		require.Equal(t, byte(i), r.x)
		require.Equal(t, secret, r.data)
	}

	got, err := recoverSecret(1, rows[2:3])
	require.NoError(t, err)
	require.Equal(t, secret, got)
}

func TestSplitRecoverThresholdTwo(t *testing.T) {
	secret := []byte("0123456789ABCDEF")
	rows, err := splitSecret(2, 3, secret)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	got, err := recoverSecret(2, rows[:2])
	require.NoError(t, err)
	require.Equal(t, secret, got)

	got2, err := recoverSecret(2, []rawShare{rows[0], rows[2]})
	require.NoError(t, err)
	require.Equal(t, secret, got2)
}

func TestSplitRecoverGeneralThreshold(t *testing.T) {
	secret := []byte("thirtytwobytesmasterlongsecrets!")
	require.Equal(t, 32, len(secret))

	rows, err := splitSecret(4, 8, secret)
	require.NoError(t, err)
	require.Len(t, rows, 8)

	got, err := recoverSecret(4, rows[2:6])
	require.NoError(t, err)
	require.Equal(t, secret, got)
}

func TestSplitMaxShares(t *testing.T) {
	secret := []byte("ABCDEFGHIJKLMNOP")
	rows, err := splitSecret(8, maxShareCount, secret)
	require.NoError(t, err)
	require.Len(t, rows, maxShareCount)

	got, err := recoverSecret(8, rows[:8])
	require.NoError(t, err)
	require.Equal(t, secret, got)
}

func TestRecoverWrongShareCount(t *testing.T) {
	secret := []byte("ABCDEFGHIJKLMNOP")
	rows, err := splitSecret(3, 5, secret)
	require.NoError(t, err)

	_, err = recoverSecret(3, rows[:2])
	require.Error(t, err)
	require.True(t, IsMnemonicError(err))
}

func TestRecoverDigestMismatch(t *testing.T) {
	secret := []byte("ABCDEFGHIJKLMNOP")
	rows, err := splitSecret(3, 5, secret)
	require.NoError(t, err)

	tampered := make([]rawShare, 3)
	copy(tampered, rows[:3])
	corrupted := make([]byte, len(tampered[0].data))
	copy(corrupted, tampered[0].data)
	corrupted[0] ^= 0xFF
	tampered[0] = rawShare{x: tampered[0].x, data: corrupted}

	_, err = recoverSecret(3, tampered)
	require.Error(t, err)
	require.True(t, IsMnemonicError(err))
}

func TestSplitInvalidThreshold(t *testing.T) {
	secret := []byte("ABCDEFGHIJKLMNOP")
	_, err := splitSecret(0, 5, secret)
	require.Error(t, err)

	_, err = splitSecret(6, 5, secret)
	require.Error(t, err)

	_, err = splitSecret(2, 17, secret)
	require.Error(t, err)
}
