package slip39

import "errors"

// EncryptedMasterSecret is the master secret after Feistel encryption
// under a passphrase — the thing that actually gets Shamir-split.
type EncryptedMasterSecret struct {
	Identifier        int
	Extendable        bool
	IterationExponent int
	Ciphertext        []byte
}

// EMSFromMasterSecret encrypts ms under passphrase and wraps the result
// together with the metadata needed to decrypt it again.
func EMSFromMasterSecret(ms []byte, passphrase interface{}, identifier int, extendable bool, iterationExponent int) (*EncryptedMasterSecret, error) {
	if len(ms) < 16 || len(ms)%2 != 0 {
		return nil, errors.New("slip39: master secret must be even length and at least 16 bytes")
	}
	if identifier < 0 || identifier >= 1<<idLengthBits {
		return nil, errors.New("slip39: identifier out of range")
	}
	if iterationExponent < 0 || iterationExponent >= 1<<iterationExponentLengthBits {
		return nil, errors.New("slip39: iteration exponent out of range")
	}

	pp, err := normalizePassphrase(passphrase)
	if err != nil {
		return nil, err
	}
	defer Zeroize(pp)

	ciphertext, err := encrypt(ms, pp, identifier, extendable, iterationExponent)
	if err != nil {
		return nil, err
	}

	return &EncryptedMasterSecret{
		Identifier:        identifier,
		Extendable:        extendable,
		IterationExponent: iterationExponent,
		Ciphertext:        ciphertext,
	}, nil
}

// Decrypt normalizes passphrase and reverses the Feistel network, returning
// the master secret. Callers own the returned buffer and are responsible
// for zeroizing it once they are done.
func (e *EncryptedMasterSecret) Decrypt(passphrase interface{}) ([]byte, error) {
	pp, err := normalizePassphrase(passphrase)
	if err != nil {
		return nil, err
	}
	defer Zeroize(pp)

	return decrypt(e.Ciphertext, pp, e.Identifier, e.Extendable, e.IterationExponent)
}
