// Package curve wraps secp256k1 scalar and point arithmetic: the group
// order n, modular scalar arithmetic, point addition/negation/scalar
// multiplication, and compressed/uncompressed point serialization.
//
// The public API shape — mutable receiver methods that return the
// receiver, NewScalar*/NewPoint* constructors, a CompressedBytes/SetBytes
// round trip — is grounded on gitlab.com/yawning/secp256k1-voi's Point and
// Scalar types. That library represents field and scalar elements as
// fixed-width limbs in Montgomery domain, backed by generated
// constant-time fiat-crypto arithmetic; this package represents them with
// math/big instead (see DESIGN.md for why) and is not constant-time.
// The pedersen and stealth packages build on curve.
package curve

import (
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/sip-protocol/sip-core/siperrors"
	"github.com/sip-protocol/sip-core/sipcrypto"
)

// ScalarSize is the size of a scalar in bytes.
const ScalarSize = 32

// N is the order of the secp256k1 base point G.
var N = mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: malformed constant")
	}
	return n
}

// Scalar is an integer modulo n. The zero value is not valid; use
// NewScalar for the scalar 0.
type Scalar struct {
	v *big.Int // always in [0, N)
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{v: new(big.Int)}
}

// NewScalarFrom creates a new Scalar from another.
func NewScalarFrom(other *Scalar) *Scalar {
	return &Scalar{v: new(big.Int).Set(other.v)}
}

// NewScalarFromBytes creates a Scalar from a 32-byte big-endian encoding,
// reducing it modulo n if it is not already canonical.
func NewScalarFromBytes(src []byte) (*Scalar, error) {
	if len(src) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", siperrors.ErrInvalidInput, ScalarSize, len(src))
	}
	v := new(big.Int).SetBytes(src)
	v.Mod(v, N)
	return &Scalar{v: v}, nil
}

// NewScalarFromCanonicalBytes creates a Scalar from a 32-byte big-endian
// encoding, and fails if the value is not already reduced modulo n.
func NewScalarFromCanonicalBytes(src []byte) (*Scalar, error) {
	if len(src) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", siperrors.ErrInvalidInput, ScalarSize, len(src))
	}
	v := new(big.Int).SetBytes(src)
	if v.Cmp(N) >= 0 {
		return nil, fmt.Errorf("%w: scalar value out of range", siperrors.ErrInvalidInput)
	}
	return &Scalar{v: v}, nil
}

// NewRandomScalar draws a uniformly random scalar in [1, n) from the
// secure RNG, retrying a disallowed zero draw.
func NewRandomScalar() (*Scalar, error) {
	for {
		raw, err := sipcrypto.RandomBytes(ScalarSize)
		if err != nil {
			return nil, err
		}
		s, err := NewScalarFromBytes(raw)
		if err != nil {
			return nil, err
		}
		if s.IsZero() {
			continue
		}
		return s, nil
	}
}

// Set sets s = a and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.v = new(big.Int).Set(a.v)
	return s
}

// Add sets s = (a + b) mod n and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.v = new(big.Int).Add(a.v, b.v)
	s.v.Mod(s.v, N)
	return s
}

// Subtract sets s = (a - b) mod n and returns s.
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	s.v = new(big.Int).Sub(a.v, b.v)
	s.v.Mod(s.v, N)
	return s
}

// Negate sets s = (-a) mod n and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.v = new(big.Int).Neg(a.v)
	s.v.Mod(s.v, N)
	return s
}

// IsZero reports whether s == 0.
func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Equal reports whether s == a, in constant time.
func (s *Scalar) Equal(a *Scalar) bool {
	return subtle.ConstantTimeCompare(s.Bytes(), a.Bytes()) == 1
}

// Bytes returns the canonical 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	dst := make([]byte, ScalarSize)
	b := s.v.Bytes()
	copy(dst[ScalarSize-len(b):], b)
	return dst
}

// BigInt returns a copy of the underlying integer value of s.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.v)
}

// ScalarAddModN returns (a + b) mod n as a 32-byte big-endian scalar.
func ScalarAddModN(a, b []byte) ([]byte, error) {
	sa, err := NewScalarFromBytes(a)
	if err != nil {
		return nil, err
	}
	sb, err := NewScalarFromBytes(b)
	if err != nil {
		return nil, err
	}
	return NewScalar().Add(sa, sb).Bytes(), nil
}

// ScalarSubModN returns (a - b) mod n as a 32-byte big-endian scalar.
func ScalarSubModN(a, b []byte) ([]byte, error) {
	sa, err := NewScalarFromBytes(a)
	if err != nil {
		return nil, err
	}
	sb, err := NewScalarFromBytes(b)
	if err != nil {
		return nil, err
	}
	return NewScalar().Subtract(sa, sb).Bytes(), nil
}
