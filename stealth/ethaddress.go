package stealth

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/sip-protocol/sip-core/curve"
	"github.com/sip-protocol/sip-core/siperrors"
)

// PublicKeyToEthAddress projects a secp256k1 public key onto an EIP-55
// checksummed Ethereum address:
//
//  1. Decompress to the 65-byte uncompressed SEC 1 form.
//  2. Discard the leading 0x04 byte.
//  3. k = Keccak-256(64-byte payload); the address is k[12:32].
//  4. Checksum: uppercase each hex letter iff the corresponding nibble of
//     Keccak-256(lowercase address hex) is >= 8.
func PublicKeyToEthAddress(publicKey []byte) (string, error) {
	uncompressed, err := curve.PointSerializeUncompressed(publicKey)
	if err != nil {
		return "", err
	}
	if len(uncompressed) != curve.UncompressedPointSize {
		return "", fmt.Errorf("%w: unexpected uncompressed point length %d", siperrors.ErrInvalidPoint, len(uncompressed))
	}

	payload := uncompressed[1:]
	addressHash := keccak256(payload)
	addressBytes := addressHash[12:]
	addressHex := hex.EncodeToString(addressBytes)

	checksumHash := keccak256([]byte(addressHex))
	checksumHex := hex.EncodeToString(checksumHash)

	out := make([]byte, len(addressHex))
	for i := 0; i < len(addressHex); i++ {
		c := addressHex[i]
		if c >= '0' && c <= '9' {
			out[i] = c
			continue
		}
		if checksumHex[i] >= '8' {
			out[i] = c - ('a' - 'A')
		} else {
			out[i] = c
		}
	}

	return "0x" + string(out), nil
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
