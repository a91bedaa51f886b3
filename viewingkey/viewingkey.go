// Package viewingkey implements symmetric viewing keys for selective
// disclosure: key generation, an identifying hash for indexing without
// revealing the key, authenticated encryption of arbitrary payloads, and
// the privacy-level policy predicates that decide when encryption and key
// disclosure apply.
//
// Grounded on the Python reference SDK's privacy.py, translated from
// PyCryptodome's ChaCha20_Poly1305 to golang.org/x/crypto/chacha20poly1305
// — the same golang.org/x/crypto module the curve layer's teacher library
// already depends on for sha3 and cryptobyte.
package viewingkey

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/sip-protocol/sip-core/siperrors"
	"github.com/sip-protocol/sip-core/sipcrypto"
)

// KeySize is the size of a viewing key in bytes.
const KeySize = 32

// Key is a symmetric viewing key for selective disclosure.
type Key struct {
	Key       []byte // 32 random bytes
	KeyHash   []byte // SHA-256(Key)
	CreatedAt int64  // milliseconds since epoch
	Label     string
}

// GenerateViewingKey draws a new 32-byte viewing key and records its hash
// and creation time.
func GenerateViewingKey(label string) (*Key, error) {
	key, err := sipcrypto.RandomBytes(KeySize)
	if err != nil {
		return nil, err
	}
	hash := DeriveViewingKeyHash(key)

	return &Key{
		Key:       key,
		KeyHash:   hash,
		CreatedAt: time.Now().UnixMilli(),
		Label:     label,
	}, nil
}

// DeriveViewingKeyHash returns SHA-256(key), for indexing a viewing key
// without revealing it.
func DeriveViewingKeyHash(key []byte) []byte {
	h := sipcrypto.HashSHA256(key)
	return h[:]
}

// EncryptedPayload is an authenticated ciphertext plus the nonce it was
// sealed under. Ciphertext's trailing 16 bytes are the Poly1305 tag.
type EncryptedPayload struct {
	Ciphertext []byte
	Nonce      []byte
}

// EncryptForViewingKey authenticates and encrypts plaintext under key with
// XChaCha20-Poly1305, using a fresh random 24-byte nonce and no associated
// data.
func EncryptForViewingKey(key, plaintext []byte) (*EncryptedPayload, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: viewing key must be %d bytes, got %d", siperrors.ErrInvalidInput, KeySize, len(key))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", siperrors.ErrInvalidInput, err)
	}

	nonce, err := sipcrypto.RandomBytes(aead.NonceSize())
	if err != nil {
		return nil, err
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, nil)

	return &EncryptedPayload{
		Ciphertext: ciphertext,
		Nonce:      nonce,
	}, nil
}

// DecryptWithViewingKey authenticates and decrypts payload under key. Any
// tag mismatch or truncated ciphertext returns ErrDecryptionFailed without
// distinguishing the cause further.
func DecryptWithViewingKey(key []byte, payload *EncryptedPayload) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: viewing key must be %d bytes, got %d", siperrors.ErrInvalidInput, KeySize, len(key))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", siperrors.ErrInvalidInput, err)
	}

	plaintext, err := aead.Open(nil, payload.Nonce, payload.Ciphertext, nil)
	if err != nil {
		return nil, siperrors.ErrDecryptionFailed
	}
	return plaintext, nil
}

// PrivacyLevel is a SIP transaction's privacy configuration.
type PrivacyLevel string

const (
	// Transparent means no privacy: all data is public.
	Transparent PrivacyLevel = "transparent"
	// Shielded means full privacy: sender, amount, and recipient are hidden.
	Shielded PrivacyLevel = "shielded"
	// Compliant means privacy with a viewing key disclosed for auditors.
	Compliant PrivacyLevel = "compliant"
)

// ValidatePrivacyLevel normalizes s to lowercase and rejects any value
// outside the closed {transparent, shielded, compliant} set.
func ValidatePrivacyLevel(s string) (PrivacyLevel, error) {
	switch lvl := PrivacyLevel(strings.ToLower(s)); lvl {
	case Transparent, Shielded, Compliant:
		return lvl, nil
	default:
		return "", fmt.Errorf("%w: invalid privacy level %q, valid options are transparent, shielded, compliant", siperrors.ErrInvalidInput, s)
	}
}

// ShouldEncrypt reports whether data should be encrypted for level.
func ShouldEncrypt(level PrivacyLevel) bool {
	return level == Shielded || level == Compliant
}

// ShouldIncludeViewingKey reports whether the viewing key should be
// disclosed alongside data for level.
func ShouldIncludeViewingKey(level PrivacyLevel) bool {
	return level == Compliant
}
