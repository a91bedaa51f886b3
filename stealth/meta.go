package stealth

import (
	"fmt"
	"strings"

	"github.com/sip-protocol/sip-core/curve"
	"github.com/sip-protocol/sip-core/siperrors"
	"github.com/sip-protocol/sip-core/sipcrypto"
)

// GenerateMetaAddress draws two independent spending and viewing private
// keys and returns the resulting meta-address together with both private
// keys, which the caller is responsible for storing securely.
func GenerateMetaAddress(chain, label string) (meta *MetaAddress, spendingPriv, viewingPriv []byte, err error) {
	spendScalar, err := curve.NewRandomScalar()
	if err != nil {
		return nil, nil, nil, err
	}
	viewScalar, err := curve.NewRandomScalar()
	if err != nil {
		return nil, nil, nil, err
	}

	spendPub := curve.NewPoint().ScalarBaseMult(spendScalar).CompressedBytes()
	viewPub := curve.NewPoint().ScalarBaseMult(viewScalar).CompressedBytes()

	meta = &MetaAddress{
		SpendingKey: spendPub,
		ViewingKey:  viewPub,
		Chain:       chain,
		Label:       label,
	}
	return meta, spendScalar.Bytes(), viewScalar.Bytes(), nil
}

// EncodeMetaAddress encodes meta as "sip:<chain>:<spending_hex>:<viewing_hex>".
func EncodeMetaAddress(meta *MetaAddress) string {
	return fmt.Sprintf("sip:%s:0x%x:0x%x", meta.Chain, meta.SpendingKey, meta.ViewingKey)
}

// DecodeMetaAddress decodes the textual form produced by EncodeMetaAddress.
// It rejects any input whose token count isn't 4 or whose first token isn't
// "sip"; it does not validate that the key tokens are valid curve points
// (that is the caller's job when the meta-address is first used).
func DecodeMetaAddress(encoded string) (*MetaAddress, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 4 || parts[0] != "sip" {
		return nil, fmt.Errorf("%w: invalid stealth meta-address format %q", siperrors.ErrInvalidInput, encoded)
	}

	spending, err := sipcrypto.HexDecode(parts[2])
	if err != nil {
		return nil, err
	}
	viewing, err := sipcrypto.HexDecode(parts[3])
	if err != nil {
		return nil, err
	}

	return &MetaAddress{
		Chain:       parts[1],
		SpendingKey: spending,
		ViewingKey:  viewing,
	}, nil
}
