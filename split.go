package slip39

import "fmt"

const (
	secretIndex = 255
	digestIndex = 254

	// maxShareCount bounds both group count and member count; the two
	// reserved x-indices above sit comfortably outside [0, maxShareCount).
	maxShareCount = 16
)

// rawShare is an (x, data) point on the Shamir polynomial, before any
// SLIP-39 metadata (group/member indices, checksum, ...) is attached.
type rawShare struct {
	x    byte
	data []byte
}

// splitSecret turns secret into count rawShares such that any threshold
// of them reconstructs it via recoverSecret. 1 <= threshold <= count <= 16.
func splitSecret(threshold, count int, secret []byte) ([]rawShare, error) {
	if threshold < 1 || count < threshold || count > maxShareCount {
		return nil, fmt.Errorf("slip39: invalid threshold/count: %d of %d", threshold, count)
	}

	if threshold == 1 {
		shares := make([]rawShare, count)
		for i := 0; i < count; i++ {
			shares[i] = rawShare{x: byte(i), data: secureBufferCopy(secret)}
		}
		return shares, nil
	}

	shares := make([]rawShare, 0, count)

	// T-2 random shares at x = 0..T-3.
	for i := 0; i < threshold-2; i++ {
		data, err := SecureRandomBytes(len(secret))
		if err != nil {
			return nil, err
		}
		shares = append(shares, rawShare{x: byte(i), data: data})
	}

	randomPart, err := SecureRandomBytes(len(secret) - digestLengthBytes)
	if err != nil {
		return nil, err
	}
	defer Zeroize(randomPart)

	digest := createDigest(randomPart, secret)
	defer Zeroize(digest)

	digestRow := make([]byte, len(secret))
	copy(digestRow, digest)
	copy(digestRow[digestLengthBytes:], randomPart)
	defer Zeroize(digestRow)

	baseRows := make([]rawShare, len(shares), len(shares)+2)
	for i, s := range shares {
		baseRows[i] = rawShare{x: s.x, data: secureBufferCopy(s.data)}
	}
	baseRows = append(baseRows,
		rawShare{x: digestIndex, data: digestRow},
		rawShare{x: secretIndex, data: secureBufferCopy(secret)},
	)
	defer func() {
		for _, r := range baseRows {
			Zeroize(r.data)
		}
	}()

	for i := threshold - 2; i < count; i++ {
		data, err := interpolate(baseRows, byte(i))
		if err != nil {
			return nil, err
		}
		shares = append(shares, rawShare{x: byte(i), data: data})
	}

	return shares, nil
}

// recoverSecret reconstructs the original secret from threshold rawShares
// produced by splitSecret with the same threshold.
func recoverSecret(threshold int, shares []rawShare) ([]byte, error) {
	if threshold == 1 {
		if len(shares) == 0 {
			return nil, newMnemonicError("no shares given")
		}
		return secureBufferCopy(shares[0].data), nil
	}

	if len(shares) != threshold {
		return nil, newMnemonicError("need exactly %d shares, got %d", threshold, len(shares))
	}

	secret, err := interpolate(shares, secretIndex)
	if err != nil {
		return nil, err
	}

	digestRow, err := interpolate(shares, digestIndex)
	if err != nil {
		Zeroize(secret)
		return nil, err
	}
	defer Zeroize(digestRow)

	digest := digestRow[:digestLengthBytes]
	randomPart := digestRow[digestLengthBytes:]

	if !verifyDigest(digest, randomPart, secret) {
		Zeroize(secret)
		return nil, newMnemonicError("share digest mismatch")
	}

	return secret, nil
}
