package slip39

import (
	"crypto/subtle"
	"errors"
	"runtime"
	"unicode/utf8"
)

// ConstantTimeEqual compares two byte slices without leaking timing
// information about where they first differ. A length mismatch is still
// reported (after scanning up to the shorter length), since the spec's
// digest and share-equality checks only need the comparison itself to be
// constant time, not the length check.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		subtle.ConstantTimeCompare(a[:n], b[:n])
		return false
	}
	if len(a) == 0 {
		return true
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zeroize overwrites b with zeros in place. Call it on every
// secret-bearing buffer once it is no longer needed, including on error
// paths. runtime.KeepAlive prevents the compiler from eliminating the
// stores as dead code.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// secureBufferCopy returns an independent copy of b, so callers can
// zeroize the original without disturbing anything that escaped with
// the copy.
func secureBufferCopy(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// xor returns a ^ b, truncated to the shorter of the two inputs. Used for
// combining padded key-derivation output with plaintext halves.
func xor(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// normalizePassphrase accepts either a string or a []byte and returns the
// UTF-8 bytes to feed into the Feistel round function. A string is
// encoded as UTF-8 directly. A []byte is accepted only if it round-trips
// through UTF-8 decode/encode unchanged, i.e. it already was valid UTF-8.
func normalizePassphrase(passphrase interface{}) ([]byte, error) {
	switch p := passphrase.(type) {
	case nil:
		return []byte{}, nil
	case string:
		return []byte(p), nil
	case []byte:
		if !utf8.Valid(p) {
			return nil, errors.New("passphrase bytes are not valid UTF-8")
		}
		return secureBufferCopy(p), nil
	default:
		return nil, errors.New("passphrase must be a string or []byte")
	}
}

// isPrintableASCII reports whether every byte of p is in the printable
// ASCII range the spec requires of passphrases used at generation time
// (code points 32-126 inclusive).
func isPrintableASCII(p []byte) bool {
	for _, b := range p {
		if b < 32 || b > 126 {
			return false
		}
	}
	return true
}
