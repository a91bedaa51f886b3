// Package sipcrypto provides the low-level primitives shared by every other
// package in this module: SHA-256 hashing, secure random byte generation,
// intent-ID generation, and the hex codec used at every external interface.
//
// Grounded on the Python reference SDK's crypto.py, which factors exactly
// these helpers out of the commitment, stealth, and privacy modules.
package sipcrypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sip-protocol/sip-core/siperrors"
)

// HashSHA256 returns the SHA-256 digest of data.
func HashSHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// RandomBytes returns n cryptographically secure random bytes, read from
// the OS CSPRNG. A short read is treated as fatal to the calling operation.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := rand.Read(buf)
	if err != nil || read != n {
		return nil, fmt.Errorf("%w: short read from secure RNG", siperrors.ErrRngFailure)
	}
	return buf, nil
}

// GenerateIntentID returns a unique identifier of the form
// "sip-" followed by 32 lowercase hex characters (16 random bytes).
func GenerateIntentID() (string, error) {
	raw, err := RandomBytes(16)
	if err != nil {
		return "", err
	}
	return "sip-" + hex.EncodeToString(raw), nil
}

// HexEncode returns data as a lowercase 0x-prefixed hex string.
func HexEncode(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}

// HexDecode parses a 0x-prefixed (or bare) hex string into bytes.
func HexDecode(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed hex string: %v", siperrors.ErrInvalidInput, err)
	}
	return b, nil
}
