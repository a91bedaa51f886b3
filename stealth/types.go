// Package stealth implements the EIP-5564-style stealth address protocol:
// meta-address generation, sender-side one-time address derivation with an
// ephemeral key and view tag, recipient-side ownership checks and private
// key recovery, and public-key-to-Ethereum-address projection.
//
// Grounded on the Python reference SDK's stealth.py, translated from
// coincurve's PublicKey/PrivateKey calls and pycryptodome's Keccak to this
// module's curve package and golang.org/x/crypto/sha3.
package stealth

// MetaAddress is a recipient's long-lived (spending, viewing) public-key
// pair from which per-payment stealth addresses are derived.
type MetaAddress struct {
	SpendingKey []byte // 33-byte compressed point
	ViewingKey  []byte // 33-byte compressed point
	Chain       string
	Label       string
}

// Address is a one-time stealth address derived from a MetaAddress.
type Address struct {
	Address            []byte // 33-byte compressed point
	EphemeralPublicKey []byte // 33-byte compressed point
	ViewTag            byte
}

// Recovery is the derived spending private key for a stealth Address.
type Recovery struct {
	StealthAddress     []byte // 33-byte compressed point
	EphemeralPublicKey []byte // 33-byte compressed point
	PrivateKey         []byte // 32-byte scalar, secret
}
