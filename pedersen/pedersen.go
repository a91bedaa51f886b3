// Package pedersen implements additively-homomorphic Pedersen commitments
// over secp256k1: C = v*G + r*H, with G the standard base point and H an
// independently-generated "nothing up my sleeve" (NUMS) point.
//
// Grounded on the Python reference SDK's commitment.py, translated from
// coincurve's PublicKey.multiply/combine calls to this module's curve
// package, and on the curve layer's point/scalar API for the group
// operations themselves.
package pedersen

import (
	"crypto/subtle"
	"fmt"
	"math/big"
	"strconv"
	"sync"

	"github.com/sip-protocol/sip-core/curve"
	"github.com/sip-protocol/sip-core/siperrors"
	"github.com/sip-protocol/sip-core/sipcrypto"
)

// hDomainTag is the domain-separation tag for NUMS generator construction.
// This string, and the ":%d" counter formatting below, must never change:
// doing so re-keys every commitment this scheme has ever produced.
const hDomainTag = "SIP-PEDERSEN-GENERATOR-H-v1"

// maxHAttempts bounds the try-and-increment loop for H generation.
const maxHAttempts = 256

var (
	hOnce    sync.Once
	hPoint   *curve.Point
	hInitErr error
)

// generatorH returns the process-wide independent generator H, computing
// it on first use and caching the result. The computation is deterministic
// so concurrent first callers converge on the same point regardless of who
// wins the race.
func generatorH() (*curve.Point, error) {
	hOnce.Do(func() {
		for counter := 0; counter < maxHAttempts; counter++ {
			input := []byte(hDomainTag + ":" + strconv.Itoa(counter))
			digest := sipcrypto.HashSHA256(input)

			candidate := make([]byte, 0, curve.CompressedPointSize)
			candidate = append(candidate, 0x02)
			candidate = append(candidate, digest[:]...)

			p, err := curve.NewPointFromBytes(candidate)
			if err != nil {
				continue
			}
			hPoint = p
			return
		}
		hInitErr = fmt.Errorf("%w: exhausted %d candidates for H", siperrors.ErrGeneratorInit, maxHAttempts)
	})
	return hPoint, hInitErr
}

// Commitment is a Pedersen commitment together with the blinding factor
// used to produce it.
type Commitment struct {
	Commitment []byte // 33-byte compressed point
	Blinding   []byte // 32-byte big-endian scalar
}

// Commit creates a Pedersen commitment to value. If blinding is nil, 32
// cryptographically random bytes are drawn. value must be nonnegative and
// strictly less than the curve order n.
func Commit(value *big.Int, blinding []byte) (*Commitment, error) {
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: value must be non-negative", siperrors.ErrInvalidInput)
	}
	if value.Cmp(curve.N) >= 0 {
		return nil, fmt.Errorf("%w: value must be less than the curve order", siperrors.ErrInvalidInput)
	}

	if blinding == nil {
		var err error
		blinding, err = sipcrypto.RandomBytes(curve.ScalarSize)
		if err != nil {
			return nil, err
		}
	} else if len(blinding) != curve.ScalarSize {
		return nil, fmt.Errorf("%w: blinding must be %d bytes, got %d", siperrors.ErrInvalidInput, curve.ScalarSize, len(blinding))
	}

	r, err := curve.NewScalarFromBytes(blinding)
	if err != nil {
		return nil, err
	}
	if r.IsZero() {
		return nil, fmt.Errorf("%w: blinding reduced to zero", siperrors.ErrRngFailure)
	}

	h, err := generatorH()
	if err != nil {
		return nil, err
	}

	rH := curve.NewPoint().ScalarMult(r, h)

	c := rH
	if value.Sign() != 0 {
		vScalar, err := curve.NewScalarFromCanonicalBytes(bigIntTo32Bytes(value))
		if err != nil {
			return nil, err
		}
		vG := curve.NewPoint().ScalarBaseMult(vScalar)
		c = curve.NewPoint().Add(vG, rH)
	}

	return &Commitment{
		Commitment: c.CompressedBytes(),
		Blinding:   blinding,
	}, nil
}

// CommitZero creates a commitment to zero with the given blinding factor:
// C = r*H. Useful for balance proofs.
func CommitZero(blinding []byte) (*Commitment, error) {
	return Commit(new(big.Int), blinding)
}

// VerifyOpening recomputes C' = value*G + r*H and reports whether it
// equals commitment. Any parsing or arithmetic failure returns false,
// since this runs over untrusted input during verification.
func VerifyOpening(commitment []byte, value *big.Int, blinding []byte) bool {
	expected, err := Commit(value, blinding)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(commitment, expected.Commitment) == 1
}

// AddCommitments returns c1 + c2.
func AddCommitments(c1, c2 []byte) ([]byte, error) {
	return curve.PointAdd(c1, c2)
}

// SubtractCommitments returns c1 + (-c2), using parity-flip negation on c2.
func SubtractCommitments(c1, c2 []byte) ([]byte, error) {
	negC2, err := curve.PointNeg(c2)
	if err != nil {
		return nil, err
	}
	return curve.PointAdd(c1, negC2)
}

// AddBlindings returns (r1 + r2) mod n.
func AddBlindings(r1, r2 []byte) ([]byte, error) {
	return curve.ScalarAddModN(r1, r2)
}

// SubtractBlindings returns (r1 - r2) mod n.
func SubtractBlindings(r1, r2 []byte) ([]byte, error) {
	return curve.ScalarSubModN(r1, r2)
}

// AffinePoint is an uncompressed (x, y) coordinate pair, each as a 32-byte
// big-endian hex-ready value, for consumption by external ZK circuits.
type AffinePoint struct {
	X []byte
	Y []byte
}

// Generators exposes the uncompressed affine coordinates of G and H.
type Generators struct {
	G AffinePoint
	H AffinePoint
}

// GetGenerators returns the uncompressed affine coordinates of G and H.
func GetGenerators() (*Generators, error) {
	h, err := generatorH()
	if err != nil {
		return nil, err
	}

	gx, gy, err := curve.AffineCoordinates(curve.GCompressed)
	if err != nil {
		return nil, err
	}
	hx, hy, err := curve.AffineCoordinates(h.CompressedBytes())
	if err != nil {
		return nil, err
	}

	return &Generators{
		G: AffinePoint{X: gx, Y: gy},
		H: AffinePoint{X: hx, Y: hy},
	}, nil
}

func bigIntTo32Bytes(v *big.Int) []byte {
	dst := make([]byte, curve.ScalarSize)
	b := v.Bytes()
	copy(dst[curve.ScalarSize-len(b):], b)
	return dst
}
