package slip39

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// S1 — minimal split, no passphrase.
func TestScenarioMinimalSplitNoPassphrase(t *testing.T) {
	ms := []byte("ABCDEFGHIJKLMNOP")
	groups, err := GenerateMnemonicsWithPassphrase(1, []MemberGroupParameters{{MemberThreshold: 3, MemberCount: 5}}, ms, nil)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 5)
	for _, m := range groups[0] {
		require.Len(t, strings.Fields(m), minMnemonicLengthWords)
	}

	quorum := []string{groups[0][0], groups[0][2], groups[0][4]}
	got, err := CombineMnemonicsWithPassphrase(quorum, nil)
	require.NoError(t, err)
	require.Equal(t, ms, got)

	tooFew := []string{groups[0][0], groups[0][2]}
	_, err = CombineMnemonicsWithPassphrase(tooFew, nil)
	require.Error(t, err)
	require.True(t, IsMnemonicError(err))
}

// S2 — with passphrase.
func TestScenarioWithPassphrase(t *testing.T) {
	ms := []byte("ABCDEFGHIJKLMNOP")
	groups, err := GenerateMnemonicsWithPassphrase(1, []MemberGroupParameters{{MemberThreshold: 3, MemberCount: 5}}, ms, []byte("TREZOR"))
	require.NoError(t, err)

	quorum := []string{groups[0][0], groups[0][2], groups[0][4]}

	got, err := CombineMnemonicsWithPassphrase(quorum, []byte("TREZOR"))
	require.NoError(t, err)
	require.Equal(t, ms, got)

	wrong, err := CombineMnemonicsWithPassphrase(quorum, []byte(""))
	require.NoError(t, err)
	require.NotEqual(t, ms, wrong)
}

// S3 — group sharing.
func TestScenarioGroupSharing(t *testing.T) {
	ms := []byte("ABCDEFGHIJKLMNOP")
	groupParams := []MemberGroupParameters{
		{MemberThreshold: 3, MemberCount: 5},
		{MemberThreshold: 2, MemberCount: 3},
		{MemberThreshold: 2, MemberCount: 5},
		{MemberThreshold: 1, MemberCount: 1},
	}
	groups, err := GenerateMnemonicsWithPassphrase(2, groupParams, ms, nil)
	require.NoError(t, err)
	require.Len(t, groups, 4)
	require.Len(t, groups[0], 5)
	require.Len(t, groups[1], 3)
	require.Len(t, groups[2], 5)
	require.Len(t, groups[3], 1)

	// Quorum from group 0 (3 of 5) and group 3 (1 of 1).
	quorumA := append(append([]string{}, groups[0][0], groups[0][1], groups[0][2]), groups[3][0])
	gotA, err := CombineMnemonicsWithPassphrase(quorumA, nil)
	require.NoError(t, err)
	require.Equal(t, ms, gotA)

	// Quorum from group 1 (2 of 3) and group 2 (2 of 5).
	quorumB := append(append([]string{}, groups[1][0], groups[1][2]), groups[2][1], groups[2][3])
	gotB, err := CombineMnemonicsWithPassphrase(quorumB, nil)
	require.NoError(t, err)
	require.Equal(t, ms, gotB)

	// One complete group plus one incomplete group is an error.
	incomplete := append(append([]string{}, groups[0][0], groups[0][1], groups[0][2]), groups[1][0])
	_, err = CombineMnemonicsWithPassphrase(incomplete, nil)
	require.Error(t, err)
}

// S4 — iteration exponent.
func TestScenarioIterationExponent(t *testing.T) {
	ms := []byte("ABCDEFGHIJKLMNOP")
	groups, err := GenerateMnemonics(1, []MemberGroupParameters{{MemberThreshold: 3, MemberCount: 5}}, ms, []byte("TREZOR"), true, 2)
	require.NoError(t, err)

	quorum := []string{groups[0][0], groups[0][2], groups[0][4]}

	got, err := CombineMnemonicsWithPassphrase(quorum, []byte("TREZOR"))
	require.NoError(t, err)
	require.Equal(t, ms, got)

	wrong, err := CombineMnemonicsWithPassphrase(quorum, nil)
	require.NoError(t, err)
	require.NotEqual(t, ms, wrong)
}

// S5 — checksum tamper.
func TestScenarioChecksumTamper(t *testing.T) {
	ms := []byte("ABCDEFGHIJKLMNOP")
	groups, err := GenerateMnemonicsWithPassphrase(1, []MemberGroupParameters{{MemberThreshold: 3, MemberCount: 5}}, ms, nil)
	require.NoError(t, err)

	words := strings.Fields(groups[0][0])
	original := words[0]
	replacement := wordList[0]
	if replacement == original {
		replacement = wordList[1]
	}
	words[0] = replacement
	tampered := strings.Join(words, " ")

	quorum := []string{tampered, groups[0][2], groups[0][4]}
	_, err = CombineMnemonicsWithPassphrase(quorum, nil)
	require.Error(t, err)
	require.True(t, IsMnemonicError(err))
}

// S6 — invalid shaping: a [1, 3] group violates the 1-of-N>1 rule.
func TestScenarioInvalidShaping(t *testing.T) {
	ms := []byte("ABCDEFGHIJKLMNOP")
	groupParams := []MemberGroupParameters{
		{MemberThreshold: 3, MemberCount: 5},
		{MemberThreshold: 1, MemberCount: 3},
		{MemberThreshold: 2, MemberCount: 5},
	}
	_, err := GenerateMnemonicsWithPassphrase(2, groupParams, ms, nil)
	require.Error(t, err)
}

func TestGroupSubsetIndependence(t *testing.T) {
	ms := []byte("ABCDEFGHIJKLMNOP")
	groups, err := GenerateMnemonicsWithPassphrase(1, []MemberGroupParameters{{MemberThreshold: 3, MemberCount: 5}}, ms, []byte("pw"))
	require.NoError(t, err)

	quorum1 := []string{groups[0][0], groups[0][1], groups[0][2]}
	quorum2 := []string{groups[0][2], groups[0][3], groups[0][4]}

	got1, err := CombineMnemonicsWithPassphrase(quorum1, []byte("pw"))
	require.NoError(t, err)
	got2, err := CombineMnemonicsWithPassphrase(quorum2, []byte("pw"))
	require.NoError(t, err)

	require.Equal(t, ms, got1)
	require.Equal(t, got1, got2)
}

func TestDecodeMnemonicsGroupsByIndex(t *testing.T) {
	ms := []byte("ABCDEFGHIJKLMNOP")
	groups, err := GenerateMnemonicsWithPassphrase(2, []MemberGroupParameters{
		{MemberThreshold: 2, MemberCount: 3},
		{MemberThreshold: 2, MemberCount: 3},
	}, ms, nil)
	require.NoError(t, err)

	all := append(append([]string{}, groups[0]...), groups[1]...)
	decoded, err := DecodeMnemonics(all)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
}

func TestDecodeMnemonicsEmptyInput(t *testing.T) {
	_, err := DecodeMnemonics(nil)
	require.Error(t, err)
}
