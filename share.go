package slip39

import (
	"errors"
	"math/big"
	"strings"
)

const (
	radixBits = 10
	radix     = 1024

	idLengthBits                = 15
	extendableFlagLengthBits    = 1
	iterationExponentLengthBits = 4
	idExpLengthWords            = 2
	metadataLengthWords         = idExpLengthWords + 2 + checksumLengthWords
	minMnemonicLengthWords      = metadataLengthWords + 13 // ceil(128/10) = 13

	groupPrefixLengthWords = idExpLengthWords + 1
)

// Share is a single point on a Shamir polynomial, decorated with the
// metadata that locates it in the two-level SLIP-39 scheme. Shares are
// immutable once constructed; fields are plain and exported the way the
// teacher's own Share type exposed them.
type Share struct {
	Identifier      int
	Extendable      bool
	IterationExp    int
	GroupIndex      int
	GroupThreshold  int
	GroupCount      int
	Index           int
	MemberThreshold int
	Value           []byte
}

// commonParameters is the subset of a Share's fields that must agree
// across every share in a single reconstruction.
type commonParameters struct {
	identifier     int
	extendable     bool
	iterationExp   int
	groupThreshold int
	groupCount     int
}

func (s Share) common() commonParameters {
	return commonParameters{
		identifier:     s.Identifier,
		extendable:     s.Extendable,
		iterationExp:   s.IterationExp,
		groupThreshold: s.GroupThreshold,
		groupCount:     s.GroupCount,
	}
}

// groupParameters is the subset that must additionally agree across the
// members of one group.
type groupParameters struct {
	groupIndex      int
	memberThreshold int
}

func (s Share) group() groupParameters {
	return groupParameters{groupIndex: s.GroupIndex, memberThreshold: s.MemberThreshold}
}

// valueEqual reports whether two shares are identical in every field,
// compared in constant time over the value bytes (the spec requires
// duplicate-share coalescence to be by full value equality).
func (s Share) valueEqual(o Share) bool {
	return s.Identifier == o.Identifier &&
		s.Extendable == o.Extendable &&
		s.IterationExp == o.IterationExp &&
		s.GroupIndex == o.GroupIndex &&
		s.GroupThreshold == o.GroupThreshold &&
		s.GroupCount == o.GroupCount &&
		s.Index == o.Index &&
		s.MemberThreshold == o.MemberThreshold &&
		ConstantTimeEqual(s.Value, o.Value)
}

// paddingBits returns the number of high-order zero bits prepended to the
// value before base-1024 encoding, so that the encoded bit width is a
// multiple of radixBits.
func paddingBits(valueWordCount int) int {
	return (radixBits * valueWordCount) % 16
}

// valueWordCount returns ceil(8*len(value)/10).
func valueWordCount(valueLen int) int {
	return (8*valueLen + radixBits - 1) / radixBits
}

// Mnemonic renders the share as a space-separated mnemonic string.
func (s Share) Mnemonic() (string, error) {
	words, err := s.Words()
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// Words renders the share as the ordered slice of dictionary words that
// make up its mnemonic, before joining with spaces.
func (s Share) Words() ([]string, error) {
	if len(s.Value) < 16 || len(s.Value)%2 != 0 {
		return nil, errors.New("slip39: share value must be even length and at least 16 bytes")
	}

	vWords := valueWordCount(len(s.Value))
	pad := paddingBits(vWords)
	if pad > 8 {
		return nil, newMnemonicError("invalid padding for share value of length %d", len(s.Value))
	}

	idExpInt := (s.Identifier << (extendableFlagLengthBits + iterationExponentLengthBits)) |
		(boolToInt(s.Extendable) << iterationExponentLengthBits) |
		s.IterationExp

	shareParamsInt := (s.GroupIndex << 16) |
		((s.GroupThreshold - 1) << 12) |
		((s.GroupCount - 1) << 8) |
		(s.Index << 4) |
		(s.MemberThreshold - 1)

	data := make([]int, 0, metadataLengthWords+vWords)
	data = append(data, intToIndices(idExpInt, idExpLengthWords, radixBits)...)
	data = append(data, intToIndices(shareParamsInt, 2, radixBits)...)

	// The share value, as an integer, is strictly smaller than 2^(8*len),
	// which in turn is <= 2^(10*vWords); packing it directly into vWords
	// base-1024 digits leaves the high pad bits implicitly zero without
	// any explicit shift.
	valueInt := new(big.Int).SetBytes(s.Value)
	data = append(data, bigintToIndices(valueInt, vWords)...)

	checksum := rs1024CreateChecksum(customizationString(s.Extendable), data)
	data = append(data, checksum...)

	words := make([]string, len(data))
	for i, idx := range data {
		w, err := wordAt(idx)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToIndices splits value into length digits of bits bits each
// (big-endian), where value is understood to occupy length*bits bits.
func intToIndices(value, length, bits int) []int {
	mask := (1 << bits) - 1
	out := make([]int, length)
	for i := 0; i < length; i++ {
		shift := (length - 1 - i) * bits
		out[i] = (value >> shift) & mask
	}
	return out
}

// intFromWordIndices packs up to 6 radix digits into a single int,
// most-significant word first.
func intFromWordIndices(indices []int) int {
	if len(indices) > 6 {
		panic("intFromWordIndices: indices length must be <= 6")
	}
	value := 0
	for _, idx := range indices {
		value = (value << radixBits) + idx
	}
	return value
}

// bigintToIndices splits a big.Int into wordCount base-1024 digits,
// most-significant first.
func bigintToIndices(v *big.Int, wordCount int) []int {
	out := make([]int, wordCount)
	tmp := new(big.Int).Set(v)
	mod := big.NewInt(radix)
	rem := new(big.Int)
	for i := wordCount - 1; i >= 0; i-- {
		tmp.DivMod(tmp, mod, rem)
		out[i] = int(rem.Int64())
	}
	return out
}

// bigintFromWordIndices reassembles wordCount base-1024 digits into a
// big-endian big.Int.
func bigintFromWordIndices(indices []int) *big.Int {
	v := new(big.Int)
	mul := big.NewInt(radix)
	for _, idx := range indices {
		v.Mul(v, mul)
		v.Add(v, big.NewInt(int64(idx)))
	}
	return v
}

// mnemonicWordsToIndices normalizes and splits a raw mnemonic string into
// its dictionary indices. Normalization: lowercase, collapse internal
// whitespace runs to single spaces, trim leading/trailing whitespace.
func mnemonicWordsToIndices(mnemonic string) ([]int, []string, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
	words := strings.Fields(normalized)

	if len(words) < minMnemonicLengthWords {
		return nil, nil, newMnemonicError("mnemonic must have at least %d words, got %d", minMnemonicLengthWords, len(words))
	}

	indices := make([]int, len(words))
	for i, w := range words {
		idx, err := wordIndex(w)
		if err != nil {
			return nil, nil, err
		}
		indices[i] = idx
	}
	return indices, words, nil
}

// ParseShare decodes a mnemonic string into a Share, validating its
// checksum, padding, and internal parameter consistency.
func ParseShare(mnemonic string) (Share, error) {
	var s Share

	data, words, err := mnemonicWordsToIndices(mnemonic)
	if err != nil {
		return s, err
	}

	padLen := paddingBits(len(data) - metadataLengthWords)
	if padLen > 8 {
		return s, newMnemonicError("invalid mnemonic padding for %q...", strings.Join(words[:groupPrefixLengthWords], " "))
	}

	idExpData := data[:idExpLengthWords]
	idExpInt := intFromWordIndices(idExpData)
	s.Identifier = idExpInt >> (extendableFlagLengthBits + iterationExponentLengthBits)
	s.Extendable = (idExpInt>>iterationExponentLengthBits)&1 != 0
	s.IterationExp = idExpInt & ((1 << iterationExponentLengthBits) - 1)

	cs := customizationString(s.Extendable)
	if !rs1024VerifyChecksum(cs, data) {
		return s, newMnemonicError("invalid checksum for %q...", strings.Join(words[:groupPrefixLengthWords], " "))
	}

	shareParamsData := data[idExpLengthWords : idExpLengthWords+2]
	shareParamsInt := intFromWordIndices(shareParamsData)
	params := intToIndices(shareParamsInt, 5, 4)
	s.GroupIndex = params[0]
	s.GroupThreshold = params[1] + 1
	s.GroupCount = params[2] + 1
	s.Index = params[3]
	s.MemberThreshold = params[4] + 1

	if s.GroupCount < s.GroupThreshold {
		return s, newMnemonicError("group threshold %d exceeds group count %d", s.GroupThreshold, s.GroupCount)
	}

	valueData := data[idExpLengthWords+2 : len(data)-checksumLengthWords]
	valueByteCount := (radixBits*len(valueData) - padLen) / 8
	valueInt := bigintFromWordIndices(valueData)

	// A correctly-padded value never occupies more than valueByteCount
	// bytes; minimal big-endian encoding longer than that means one of
	// the high pad bits was nonzero.
	value := valueInt.Bytes()
	if len(value) > valueByteCount {
		return s, newMnemonicError("invalid mnemonic padding for %q...", strings.Join(words[:groupPrefixLengthWords], " "))
	}
	if len(value) < valueByteCount {
		padded := make([]byte, valueByteCount)
		copy(padded[valueByteCount-len(value):], value)
		value = padded
	}
	s.Value = value

	return s, nil
}
