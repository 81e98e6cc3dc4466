package identity

import "fmt"

// Type tags the two identity kinds. The values are the wire encoding.
type Type uint8

const (
	// TypeC25519 is the legacy identity: a combined Curve25519/Ed25519 key
	// pair bound to its address by the 2 MiB proof of work.
	TypeC25519 Type = 0
	// TypeP384 is the current identity: a compound blob of PoW nonce,
	// combined C25519 keys and a P-384 key, bound by the 128 KiB proof of
	// work through its fingerprint.
	TypeP384 Type = 1
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeC25519:
		return "c25519"
	case TypeP384:
		return "p384"
	default:
		return "unknown"
	}
}

// FingerprintHashSize is the length of the SHA-384 fingerprint hash.
const FingerprintHashSize = 48

// SymmetricKeySize is the length of the shared secret produced by Agree.
const SymmetricKeySize = 48

// SignatureSize is the signature length for both identity types.
const SignatureSize = 96

// Public and private blob sizes per type. The P384 compound public blob is
// 1-byte PoW nonce ‖ combined C25519 public ‖ compressed P-384 point; the
// private blob has the same structure with the secret scalars.
const (
	c25519PublicSize  = 64
	c25519PrivateSize = 64
	p384PublicSize    = 1 + 64 + 49
	p384PrivateSize   = 1 + 64 + 48
)

func publicSize(t Type) int {
	switch t {
	case TypeC25519:
		return c25519PublicSize
	case TypeP384:
		return p384PublicSize
	}
	return 0
}

func privateSize(t Type) int {
	switch t {
	case TypeC25519:
		return c25519PrivateSize
	case TypeP384:
		return p384PrivateSize
	}
	return 0
}

// Fingerprint pairs an address with the SHA-384 hash of the public key blob.
type Fingerprint struct {
	Address Address
	Hash    [FingerprintHashSize]byte
}

// String renders the fingerprint as address-base32(hash).
func (fp Fingerprint) String() string {
	return fmt.Sprintf("%s-%s", fp.Address, b32.EncodeToString(fp.Hash[:]))
}
