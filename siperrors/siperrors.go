// Package siperrors defines the typed error vocabulary shared across the
// SIP protocol SDK's packages.
//
// Every exported operation that can fail returns one of the sentinel errors
// below, wrapped with context via fmt.Errorf("%w: ..."). Callers that need
// to distinguish kinds should use errors.Is. Operations that run over
// adversarial input during scanning (commitment verification, stealth
// ownership checks) swallow these into a plain bool instead of propagating
// them; see the doc comments on those functions.
package siperrors

import "errors"

var (
	// ErrInvalidInput covers malformed hex, out-of-range values, unknown
	// enum strings, and malformed textual encodings.
	ErrInvalidInput = errors.New("sip: invalid input")

	// ErrInvalidPoint covers a hex string that does not decode to a valid
	// non-identity secp256k1 point.
	ErrInvalidPoint = errors.New("sip: invalid curve point")

	// ErrDecryptionFailed covers an AEAD authentication failure or a
	// truncated ciphertext. The cause is never distinguished further.
	ErrDecryptionFailed = errors.New("sip: decryption failed")

	// ErrRngFailure covers a short read from the OS CSPRNG, or a random
	// draw producing a disallowed value after the caller-supplied material
	// has already been reduced (e.g. a zero blinding scalar).
	ErrRngFailure = errors.New("sip: rng failure")

	// ErrGeneratorInit covers the NUMS generator H try-and-increment loop
	// exhausting its counter budget. Fatal; there is no recovery.
	ErrGeneratorInit = errors.New("sip: generator initialization failed")
)
