package slip39

import (
	"crypto/hmac"
	"crypto/sha256"
)

// digestLengthBytes is the size of the authenticator prefix stored in the
// DIGEST_INDEX row.
const digestLengthBytes = 4

// createDigest computes the 4-byte authenticator HMAC-SHA256(key=randomPart,
// msg=secret)[:4], used to verify that a recovered secret is consistent
// with the shares that produced it.
func createDigest(randomPart, secret []byte) []byte {
	h := hmac.New(sha256.New, randomPart)
	h.Write(secret)
	return h.Sum(nil)[:digestLengthBytes]
}

// verifyDigest reports whether digest matches HMAC-SHA256(randomPart,
// secret)[:4], compared in constant time.
func verifyDigest(digest, randomPart, secret []byte) bool {
	expected := createDigest(randomPart, secret)
	defer Zeroize(expected)
	return ConstantTimeEqual(digest, expected)
}
