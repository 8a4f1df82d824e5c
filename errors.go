package slip39

import (
	"errors"
	"fmt"
)

// MnemonicError reports a problem with mnemonic data itself: a bad
// checksum, an inconsistent share parameter, a digest mismatch, or a
// malformed recovery set. It is distinct from the generic errors returned
// for programming mistakes such as an odd-length master secret, which
// callers are expected to catch before they ever reach the wire format.
type MnemonicError struct {
	msg string
}

func (e *MnemonicError) Error() string {
	return e.msg
}

func newMnemonicError(format string, args ...interface{}) error {
	return &MnemonicError{msg: fmt.Sprintf(format, args...)}
}

// IsMnemonicError reports whether err is (or wraps) a *MnemonicError.
func IsMnemonicError(err error) bool {
	var me *MnemonicError
	return errors.As(err, &me)
}
