package curve

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestPointS11n(t *testing.T) {
	t.Run("G compressed round-trip", func(t *testing.T) {
		gCompressed := mustHexBytes(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")

		p, err := NewPointFromBytes(gCompressed)
		require.NoError(t, err)
		require.Equal(t, gCompressed, p.CompressedBytes())
		require.True(t, p.Equal(NewPoint().Generator()))
	})

	t.Run("G uncompressed round-trip", func(t *testing.T) {
		gUncompressed := mustHexBytes(t, "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

		p, err := NewPointFromBytes(gUncompressed)
		require.NoError(t, err)
		require.Equal(t, gUncompressed, p.UncompressedBytes())
	})

	t.Run("rejects identity", func(t *testing.T) {
		_, err := NewPointFromBytes([]byte{0x00})
		require.Error(t, err)
	})

	t.Run("rejects malformed length", func(t *testing.T) {
		_, err := NewPointFromBytes(mustHexBytes(t, "0279be667ef9"))
		require.Error(t, err)
	})

	t.Run("rejects bad parity prefix", func(t *testing.T) {
		bad := mustHexBytes(t, "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
		_, err := NewPointFromBytes(bad)
		require.Error(t, err)
	})

	t.Run("rejects non-curve x-coordinate", func(t *testing.T) {
		// Replace the last byte of G's x-coordinate with 0x00; for this x,
		// x^3 + 7 is not a square mod P, so no curve point has it.
		bad := mustHexBytes(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81700")
		_, err := NewPointFromBytes(bad)
		require.Error(t, err)
	})
}

func TestPointArithmetic(t *testing.T) {
	g := NewPoint().Generator()

	two, err := NewScalarFromBytes(append(make([]byte, 31), 2))
	require.NoError(t, err)

	doubled := NewPoint().Double(g)
	added := NewPoint().Add(g, g)
	require.True(t, doubled.Equal(added))

	scalarMul := NewPoint().ScalarMult(two, g)
	require.True(t, scalarMul.Equal(doubled))

	neg := NewPoint().Negate(g)
	sum := NewPoint().Add(g, neg)
	require.True(t, sum.IsIdentity())
}

func TestPointNegCompressed(t *testing.T) {
	g := NewPoint().Generator().CompressedBytes()
	negG, err := PointNeg(g)
	require.NoError(t, err)

	require.Equal(t, g[1:], negG[1:], "x-coordinate unchanged")
	require.NotEqual(t, g[0], negG[0], "parity byte flipped")

	sum, err := PointAdd(g, negG)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, sum)
}

func TestScalarArithmetic(t *testing.T) {
	one := NewScalar().Set(NewScalar()).Add(NewScalar(), scalarOne(t))
	require.False(t, one.IsZero())

	a := scalarOne(t)
	b := scalarOne(t)
	sum := NewScalar().Add(a, b)
	diff := NewScalar().Subtract(sum, b)
	require.True(t, diff.Equal(a))

	rolled := NewScalar().Subtract(NewScalar(), a)
	require.True(t, rolled.Equal(NewScalar().Negate(a)))
}

func scalarOne(t *testing.T) *Scalar {
	t.Helper()
	s, err := NewScalarFromBytes(append(make([]byte, 31), 1))
	require.NoError(t, err)
	return s
}

func TestNewRandomScalarIsInRange(t *testing.T) {
	s, err := NewRandomScalar()
	require.NoError(t, err)
	require.False(t, s.IsZero())
	require.Less(t, s.BigInt().Cmp(N), 0)
}
