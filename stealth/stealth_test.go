package stealth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sip-protocol/sip-core/curve"
)

func TestStealthRoundTrip(t *testing.T) {
	meta, spendingPriv, viewingPriv, err := GenerateMetaAddress("ethereum", "")
	require.NoError(t, err)

	addr, _, err := GenerateAddress(meta)
	require.NoError(t, err)

	require.True(t, CheckAddress(addr, spendingPriv, viewingPriv))

	recovery, err := DeriveStealthPrivateKey(addr, spendingPriv, viewingPriv)
	require.NoError(t, err)

	qScalar, err := curve.NewScalarFromCanonicalBytes(recovery.PrivateKey)
	require.NoError(t, err)
	derivedPub := curve.NewPoint().ScalarBaseMult(qScalar).CompressedBytes()
	require.Equal(t, addr.Address, derivedPub)
}

func TestStealthRejectsForeignRecipient(t *testing.T) {
	metaA, spendA, viewA, err := GenerateMetaAddress("ethereum", "")
	require.NoError(t, err)
	_, spendB, viewB, err := GenerateMetaAddress("ethereum", "")
	require.NoError(t, err)

	const n = 1024
	falsePositives := 0
	for i := 0; i < n; i++ {
		addr, _, err := GenerateAddress(metaA)
		require.NoError(t, err)

		require.True(t, CheckAddress(addr, spendA, viewA))

		if CheckAddress(addr, spendB, viewB) {
			falsePositives++
		}
	}
	// About 1/256 of B's checks pass the view-tag fast path, but CheckAddress
	// then runs full verification, which rejects them, so the count is
	// expected to stay at zero; the bound below is looser than that.
	require.Less(t, falsePositives, n/32)
}

func TestMetaAddressEncodeDecodeRoundTrip(t *testing.T) {
	meta, _, _, err := GenerateMetaAddress("ethereum", "wallet-1")
	require.NoError(t, err)

	// Label is not part of the textual encoding.
	meta.Label = ""

	encoded := EncodeMetaAddress(meta)
	decoded, err := DecodeMetaAddress(encoded)
	require.NoError(t, err)
	require.Equal(t, meta, decoded)
}

func TestDecodeMetaAddressRejectsBadFormat(t *testing.T) {
	_, err := DecodeMetaAddress("foo:ethereum:0x02aa:0x03bb")
	require.Error(t, err)

	_, err = DecodeMetaAddress("sip:ethereum:0x02aa")
	require.Error(t, err)
}

func TestPublicKeyToEthAddress(t *testing.T) {
	one, err := curve.NewScalarFromBytes(append(make([]byte, 31), 1))
	require.NoError(t, err)
	pub := curve.NewPoint().ScalarBaseMult(one).CompressedBytes()

	addr, err := PublicKeyToEthAddress(pub)
	require.NoError(t, err)
	require.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", addr)
}
