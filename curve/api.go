package curve

import (
	"fmt"

	"github.com/sip-protocol/sip-core/siperrors"
)

// GCompressed is the standard secp256k1 base point, SEC 1 compressed.
var GCompressed = NewPoint().Generator().CompressedBytes()

// PointMul returns scalar*point as a compressed point. It fails only if
// scalar is not 32 bytes, is zero or is >= n (callers are expected to have
// reduced mod n first), or if point does not decode.
func PointMul(scalar []byte, point []byte) ([]byte, error) {
	s, err := NewScalarFromCanonicalBytes(scalar)
	if err != nil {
		return nil, err
	}
	if s.IsZero() {
		return nil, fmt.Errorf("%w: scalar must be nonzero", siperrors.ErrInvalidInput)
	}
	p, err := NewPointFromBytes(point)
	if err != nil {
		return nil, err
	}
	return NewPoint().ScalarMult(s, p).CompressedBytes(), nil
}

// PointBaseMul returns scalar*G as a compressed point.
func PointBaseMul(scalar []byte) ([]byte, error) {
	s, err := NewScalarFromCanonicalBytes(scalar)
	if err != nil {
		return nil, err
	}
	return NewPoint().ScalarBaseMult(s).CompressedBytes(), nil
}

// PointAdd returns p+q as a compressed point.
func PointAdd(p, q []byte) ([]byte, error) {
	pp, err := NewPointFromBytes(p)
	if err != nil {
		return nil, err
	}
	qp, err := NewPointFromBytes(q)
	if err != nil {
		return nil, err
	}
	return NewPoint().Add(pp, qp).CompressedBytes(), nil
}

// PointNeg negates a compressed point by flipping its parity byte
// (0x02<->0x03) and leaving the x-coordinate unchanged, per the SEC 1
// compressed encoding. It deliberately does not round-trip through the
// uncompressed form.
func PointNeg(compressed []byte) ([]byte, error) {
	if len(compressed) != CompressedPointSize {
		return nil, fmt.Errorf("%w: expected %d-byte compressed point, got %d", siperrors.ErrInvalidPoint, CompressedPointSize, len(compressed))
	}
	switch compressed[0] {
	case prefixCompressedEven:
	case prefixCompressedOdd:
	default:
		return nil, fmt.Errorf("%w: bad compressed point prefix", siperrors.ErrInvalidPoint)
	}

	out := make([]byte, CompressedPointSize)
	copy(out, compressed)
	if out[0] == prefixCompressedEven {
		out[0] = prefixCompressedOdd
	} else {
		out[0] = prefixCompressedEven
	}
	return out, nil
}

// PointSerializeUncompressed decodes a compressed or uncompressed point and
// returns its 65-byte SEC 1 uncompressed encoding, for components that need
// raw (x, y) coordinates (e.g. a ZK-circuit export).
func PointSerializeUncompressed(point []byte) ([]byte, error) {
	p, err := NewPointFromBytes(point)
	if err != nil {
		return nil, err
	}
	return p.UncompressedBytes(), nil
}

// AffineCoordinates returns the uncompressed-form (x, y) coordinates of a
// point, each as a 32-byte big-endian value.
func AffineCoordinates(point []byte) (x, y []byte, err error) {
	u, err := PointSerializeUncompressed(point)
	if err != nil {
		return nil, nil, err
	}
	return u[1:33], u[33:65], nil
}
