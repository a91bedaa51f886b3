package curve

import (
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/sip-protocol/sip-core/siperrors"
)

const (
	// CompressedPointSize is the size of a compressed point, SEC 1 encoding
	// (`0x02|0x03 || X`).
	CompressedPointSize = 33

	// UncompressedPointSize is the size of an uncompressed point, SEC 1
	// encoding (`0x04 || X || Y`).
	UncompressedPointSize = 65

	prefixCompressedEven = 0x02
	prefixCompressedOdd  = 0x03
	prefixUncompressed   = 0x04
)

var (
	// P is the secp256k1 field prime.
	P = mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// curveB is the `b` constant in y^2 = x^3 + a*x + b (a == 0).
	curveB = big.NewInt(7)

	gX = mustHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gY = mustHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
)

// Point represents a point on the secp256k1 curve in affine coordinates.
// The zero value is not valid and may only be used as a receiver.
type Point struct {
	x, y       *big.Int
	isIdentity bool
}

// NewPoint returns a new Point set to the identity element.
func NewPoint() *Point {
	return new(Point).Identity()
}

// Identity sets v to the point at infinity and returns v.
func (v *Point) Identity() *Point {
	v.x, v.y = new(big.Int), new(big.Int)
	v.isIdentity = true
	return v
}

// Generator sets v = G and returns v.
func (v *Point) Generator() *Point {
	v.x = new(big.Int).Set(gX)
	v.y = new(big.Int).Set(gY)
	v.isIdentity = false
	return v
}

// Set sets v = p and returns v.
func (v *Point) Set(p *Point) *Point {
	v.x = new(big.Int).Set(p.x)
	v.y = new(big.Int).Set(p.y)
	v.isIdentity = p.isIdentity
	return v
}

// IsIdentity reports whether v is the point at infinity.
func (v *Point) IsIdentity() bool {
	return v.isIdentity
}

// Equal reports whether v == p.
func (v *Point) Equal(p *Point) bool {
	if v.isIdentity || p.isIdentity {
		return v.isIdentity == p.isIdentity
	}
	return subtle.ConstantTimeCompare(v.CompressedBytes(), p.CompressedBytes()) == 1
}

// Add sets v = p + q and returns v.
func (v *Point) Add(p, q *Point) *Point {
	switch {
	case p.isIdentity:
		return v.Set(q)
	case q.isIdentity:
		return v.Set(p)
	}

	if p.x.Cmp(q.x) == 0 {
		if p.y.Cmp(q.y) != 0 || p.y.Sign() == 0 {
			// p == -q: sum is the identity.
			return v.Identity()
		}
		return v.Double(p)
	}

	// lambda = (qy - py) / (qx - px) mod P
	num := new(big.Int).Sub(q.y, p.y)
	den := new(big.Int).Sub(q.x, p.x)
	den.ModInverse(den, P)
	lambda := new(big.Int).Mul(num, den)
	lambda.Mod(lambda, P)

	return v.setFromLambda(lambda, p.x, q.x, p.y)
}

// Double sets v = p + p and returns v.
func (v *Point) Double(p *Point) *Point {
	if p.isIdentity || p.y.Sign() == 0 {
		return v.Identity()
	}

	// lambda = 3*px^2 / (2*py) mod P
	num := new(big.Int).Mul(p.x, p.x)
	num.Mul(num, big.NewInt(3))
	den := new(big.Int).Lsh(p.y, 1)
	den.ModInverse(den, P)
	lambda := new(big.Int).Mul(num, den)
	lambda.Mod(lambda, P)

	return v.setFromLambda(lambda, p.x, p.x, p.y)
}

func (v *Point) setFromLambda(lambda, px, qx, py *big.Int) *Point {
	rx := new(big.Int).Mul(lambda, lambda)
	rx.Sub(rx, px)
	rx.Sub(rx, qx)
	rx.Mod(rx, P)

	ry := new(big.Int).Sub(px, rx)
	ry.Mul(ry, lambda)
	ry.Sub(ry, py)
	ry.Mod(ry, P)

	v.x, v.y = rx, ry
	v.isIdentity = false
	return v
}

// Negate sets v = -p and returns v.
func (v *Point) Negate(p *Point) *Point {
	if p.isIdentity {
		return v.Identity()
	}
	v.x = new(big.Int).Set(p.x)
	v.y = new(big.Int).Sub(P, p.y)
	v.y.Mod(v.y, P)
	v.isIdentity = false
	return v
}

// ScalarMult sets v = s*p using double-and-add and returns v.
func (v *Point) ScalarMult(s *Scalar, p *Point) *Point {
	acc := NewPoint().Identity()
	addend := NewPoint().Set(p)

	k := s.BigInt()
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			acc.Add(acc, addend)
		}
		addend.Double(addend)
	}

	return v.Set(acc)
}

// ScalarBaseMult sets v = s*G and returns v.
func (v *Point) ScalarBaseMult(s *Scalar) *Point {
	return v.ScalarMult(s, NewPoint().Generator())
}

// onCurve reports whether (x, y) satisfies y^2 = x^3 + 7 mod P.
func onCurve(x, y *big.Int) bool {
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, P)

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, curveB)
	rhs.Mod(rhs, P)

	return lhs.Cmp(rhs) == 0
}

// sqrtModP returns a square root of a modulo P, since P ≡ 3 (mod 4).
func sqrtModP(a *big.Int) *big.Int {
	exp := new(big.Int).Add(P, big.NewInt(1))
	exp.Rsh(exp, 2)
	return new(big.Int).Exp(a, exp, P)
}

// CompressedBytes returns the SEC 1 compressed encoding of v.
func (v *Point) CompressedBytes() []byte {
	if v.isIdentity {
		return []byte{0x00}
	}

	dst := make([]byte, CompressedPointSize)
	if v.y.Bit(0) == 0 {
		dst[0] = prefixCompressedEven
	} else {
		dst[0] = prefixCompressedOdd
	}
	xb := v.x.Bytes()
	copy(dst[1+(32-len(xb)):], xb)
	return dst
}

// UncompressedBytes returns the SEC 1 uncompressed encoding of v.
func (v *Point) UncompressedBytes() []byte {
	if v.isIdentity {
		return []byte{0x00}
	}

	dst := make([]byte, UncompressedPointSize)
	dst[0] = prefixUncompressed
	xb, yb := v.x.Bytes(), v.y.Bytes()
	copy(dst[1+(32-len(xb)):33], xb)
	copy(dst[33+(32-len(yb)):], yb)
	return dst
}

// SetBytes sets v to the point encoded by src, which must be a SEC 1
// compressed or uncompressed encoding. The identity element, malformed
// lengths, invalid parity prefixes, and x-coordinates that are not on the
// curve are all rejected.
func (v *Point) SetBytes(src []byte) (*Point, error) {
	switch len(src) {
	case CompressedPointSize:
		prefix := src[0]
		if prefix != prefixCompressedEven && prefix != prefixCompressedOdd {
			return nil, fmt.Errorf("%w: bad compressed point prefix", siperrors.ErrInvalidPoint)
		}
		x := new(big.Int).SetBytes(src[1:])
		if x.Cmp(P) >= 0 {
			return nil, fmt.Errorf("%w: x-coordinate out of range", siperrors.ErrInvalidPoint)
		}

		rhs := new(big.Int).Mul(x, x)
		rhs.Mul(rhs, x)
		rhs.Add(rhs, curveB)
		rhs.Mod(rhs, P)

		y := sqrtModP(rhs)
		if !onCurve(x, y) {
			return nil, fmt.Errorf("%w: x-coordinate is not on the curve", siperrors.ErrInvalidPoint)
		}
		wantOdd := prefix == prefixCompressedOdd
		if y.Bit(0) == 1 != wantOdd {
			y.Sub(P, y)
		}

		v.x, v.y, v.isIdentity = x, y, false
		return v, nil

	case UncompressedPointSize:
		if src[0] != prefixUncompressed {
			return nil, fmt.Errorf("%w: bad uncompressed point prefix", siperrors.ErrInvalidPoint)
		}
		x := new(big.Int).SetBytes(src[1:33])
		y := new(big.Int).SetBytes(src[33:65])
		if x.Cmp(P) >= 0 || y.Cmp(P) >= 0 {
			return nil, fmt.Errorf("%w: coordinate out of range", siperrors.ErrInvalidPoint)
		}
		if !onCurve(x, y) {
			return nil, fmt.Errorf("%w: point is not on the curve", siperrors.ErrInvalidPoint)
		}

		v.x, v.y, v.isIdentity = x, y, false
		return v, nil

	case 1:
		return nil, fmt.Errorf("%w: identity element is not a valid point", siperrors.ErrInvalidPoint)

	default:
		return nil, fmt.Errorf("%w: malformed point encoding, length %d", siperrors.ErrInvalidPoint, len(src))
	}
}

// NewPointFromBytes creates a new Point from a SEC 1 encoding.
func NewPointFromBytes(src []byte) (*Point, error) {
	return new(Point).SetBytes(src)
}
