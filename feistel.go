package slip39

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	roundCount         = 4
	baseIterationCount = 10000

	customizationStringNonExtendable = "shamir"
	customizationStringExtendable    = "shamir_extendable"
)

// feistelIterations returns the PBKDF2 iteration count for round function
// calls at iteration exponent e: (10000 << e) / roundCount. 10000 << e is
// always a multiple of 4, so this division is exact; it must never be
// rounded (spec treats a change here as wire-breaking).
func feistelIterations(iterationExponent int) int {
	return (baseIterationCount << uint(iterationExponent)) / roundCount
}

// feistelSalt builds the PBKDF2 salt for the Feistel round function. An
// extendable share ignores the identifier entirely, which is what lets
// two independently-identified mnemonic sets decrypt to the same secret
// under the same passphrase.
func feistelSalt(identifier int, extendable bool) []byte {
	if extendable {
		return []byte{}
	}
	idBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(idBytes, uint16(identifier))
	salt := make([]byte, 0, len(customizationStringNonExtendable)+2)
	salt = append(salt, []byte(customizationStringNonExtendable)...)
	salt = append(salt, idBytes...)
	return salt
}

// feistelRound computes F_i(passphrase, R) for round i against half R,
// salted per feistelSalt and iterated per feistelIterations.
func feistelRound(round int, r, passphrase []byte, identifier int, extendable bool, iterationExponent int) []byte {
	password := make([]byte, 0, 1+len(passphrase))
	password = append(password, byte(round))
	password = append(password, passphrase...)

	salt := append(feistelSalt(identifier, extendable), r...)

	return pbkdf2.Key(password, salt, feistelIterations(iterationExponent), len(r), sha256.New)
}

// feistelCrypt runs the 4-round unbalanced Feistel network over ms,
// encrypting when rounds is 0,1,2,3 and decrypting when rounds is
// 3,2,1,0. Both directions use the same round function and produce
// output of the same length as the input.
func feistelCrypt(ms, passphrase []byte, identifier int, extendable bool, iterationExponent int, rounds []int) ([]byte, error) {
	if len(ms)%2 != 0 {
		return nil, errors.New("slip39: master secret length must be even")
	}

	half := len(ms) / 2
	l := secureBufferCopy(ms[:half])
	r := secureBufferCopy(ms[half:])
	defer func() {
		Zeroize(l)
		Zeroize(r)
	}()

	for _, i := range rounds {
		f := feistelRound(i, r, passphrase, identifier, extendable, iterationExponent)
		newR := xor(l, f)
		Zeroize(f)
		Zeroize(l)
		l = r
		r = newR
	}

	out := make([]byte, len(ms))
	copy(out[:half], r)
	copy(out[half:], l)
	return out, nil
}

// encrypt runs the Feistel network forward: rounds 0,1,2,3.
func encrypt(ms, passphrase []byte, identifier int, extendable bool, iterationExponent int) ([]byte, error) {
	return feistelCrypt(ms, passphrase, identifier, extendable, iterationExponent, []int{0, 1, 2, 3})
}

// decrypt runs the Feistel network in reverse: rounds 3,2,1,0.
func decrypt(ems, passphrase []byte, identifier int, extendable bool, iterationExponent int) ([]byte, error) {
	return feistelCrypt(ems, passphrase, identifier, extendable, iterationExponent, []int{3, 2, 1, 0})
}
