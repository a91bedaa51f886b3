package pedersen

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sip-protocol/sip-core/curve"
)

func TestCommitAndVerify(t *testing.T) {
	c, err := Commit(big.NewInt(1000), nil)
	require.NoError(t, err)
	require.Len(t, c.Commitment, curve.CompressedPointSize)
	require.Len(t, c.Blinding, curve.ScalarSize)

	require.True(t, VerifyOpening(c.Commitment, big.NewInt(1000), c.Blinding))
	require.False(t, VerifyOpening(c.Commitment, big.NewInt(1001), c.Blinding))
}

func TestHomomorphicSum(t *testing.T) {
	c1, err := Commit(big.NewInt(100), nil)
	require.NoError(t, err)
	c2, err := Commit(big.NewInt(50), nil)
	require.NoError(t, err)

	sum, err := AddCommitments(c1.Commitment, c2.Commitment)
	require.NoError(t, err)

	sumBlinding, err := AddBlindings(c1.Blinding, c2.Blinding)
	require.NoError(t, err)

	require.True(t, VerifyOpening(sum, big.NewInt(150), sumBlinding))
}

func TestHomomorphicDifference(t *testing.T) {
	c1, err := Commit(big.NewInt(100), nil)
	require.NoError(t, err)
	c2, err := Commit(big.NewInt(40), nil)
	require.NoError(t, err)

	diff, err := SubtractCommitments(c1.Commitment, c2.Commitment)
	require.NoError(t, err)

	diffBlinding, err := SubtractBlindings(c1.Blinding, c2.Blinding)
	require.NoError(t, err)

	require.True(t, VerifyOpening(diff, big.NewInt(60), diffBlinding))
}

func TestCommitZero(t *testing.T) {
	blinding := make([]byte, curve.ScalarSize)
	blinding[31] = 7

	c, err := CommitZero(blinding)
	require.NoError(t, err)
	require.True(t, VerifyOpening(c.Commitment, new(big.Int), blinding))
}

func TestCommitRejectsOutOfRangeValue(t *testing.T) {
	_, err := Commit(big.NewInt(-1), nil)
	require.Error(t, err)

	_, err = Commit(curve.N, nil)
	require.Error(t, err)
}

func TestCommitRejectsBadBlindingLength(t *testing.T) {
	_, err := Commit(big.NewInt(1), []byte{0x01, 0x02})
	require.Error(t, err)
}

func TestGeneratorsAreFixed(t *testing.T) {
	g1, err := GetGenerators()
	require.NoError(t, err)
	g2, err := GetGenerators()
	require.NoError(t, err)

	require.Equal(t, g1.G.X, g2.G.X)
	require.Equal(t, g1.H.X, g2.H.X)
	require.Equal(t, g1.H.Y, g2.H.Y)
}
