package identity

import (
	"bytes"

	"weft/internal/crypto"
	"weft/internal/util/memzero"
)

// Identity binds an overlay address to long-term public key material. The
// private half is optional; identities parsed from a public serialization
// can verify and agree-with but not sign.
type Identity struct {
	typ     Type
	address Address
	hash    [FingerprintHashSize]byte
	pub     []byte
	priv    []byte // nil when absent
}

// Type returns the identity type tag.
func (id *Identity) Type() Type { return id.typ }

// Address returns the 40-bit overlay address.
func (id *Identity) Address() Address { return id.address }

// HasPrivate reports whether private key material is present.
func (id *Identity) HasPrivate() bool { return id.priv != nil }

// Fingerprint returns the address together with the SHA-384 hash of the
// public key blob.
func (id *Identity) Fingerprint() Fingerprint {
	return Fingerprint{Address: id.address, Hash: id.hash}
}

// PublicKey returns a copy of the public key blob.
func (id *Identity) PublicKey() []byte {
	return append([]byte(nil), id.pub...)
}

// Equal reports whether two identities share type, address and public key.
// Private material never participates in equality.
func (id *Identity) Equal(other *Identity) bool {
	return other != nil && id.typ == other.typ && id.address == other.address && bytes.Equal(id.pub, other.pub)
}

// Scrub destroys the private half in place. The identity remains usable for
// verification and serialization of the public part.
func (id *Identity) Scrub() {
	memzero.Zero(id.priv)
	id.priv = nil
}

// Validate re-derives the proof of work from the public key and checks the
// address binding. It is expensive: the type 0 check re-runs the 2 MiB
// work function.
func (id *Identity) Validate() bool {
	if id.address.IsReserved() {
		return false
	}
	switch id.typ {
	case TypeC25519:
		var digest [64]byte
		v0ProofOfWork(id.pub, &digest, make([]byte, v0Memory))
		return digest[0] < v0Threshold && NewAddress(digest[59:]) == id.address
	case TypeP384:
		if NewAddress(id.hash[43:]) != id.address {
			return false
		}
		return v1ProofOfWork(id.pub)
	}
	return false
}

// Sign writes a SignatureSize-byte signature over data into sig and returns
// the number of bytes written. It returns 0 when no private key is present
// or sig is too small.
//
// Type 1 signatures cover SHA-384(data ‖ public), coupling the signature to
// the signer's full public key so it cannot be replayed under another
// identity sharing a sub-key.
func (id *Identity) Sign(data, sig []byte) int {
	if id.priv == nil || len(sig) < SignatureSize {
		return 0
	}
	switch id.typ {
	case TypeC25519:
		var priv crypto.C25519Private
		copy(priv[:], id.priv)
		s := crypto.C25519Sign(&priv, data)
		memzero.Zero(priv[:])
		copy(sig, s[:])
		return SignatureSize
	case TypeP384:
		h := crypto.SHA384Concat(data, id.pub)
		var priv crypto.P384Private
		copy(priv[:], id.priv[1+c25519PrivateSize:])
		s, err := crypto.P384Sign(&priv, h[:])
		memzero.Zero(priv[:])
		if err != nil {
			return 0
		}
		copy(sig, s[:])
		return SignatureSize
	}
	return 0
}

// Verify checks a signature over data against this identity's public key.
func (id *Identity) Verify(data, sig []byte) bool {
	switch id.typ {
	case TypeC25519:
		var pub crypto.C25519Public
		copy(pub[:], id.pub)
		return crypto.C25519Verify(&pub, data, sig)
	case TypeP384:
		if len(sig) != SignatureSize {
			return false
		}
		h := crypto.SHA384Concat(data, id.pub)
		var pub crypto.P384Public
		copy(pub[:], id.pub[1+c25519PublicSize:])
		return crypto.P384Verify(&pub, h[:], sig)
	}
	return false
}

// Agree derives the 48-byte shared symmetric key with the other identity
// and reports success. It fails without private material or with an unknown
// type on either side.
//
// Two type 1 identities agree over both curves and hash the concatenated
// secrets, so the result is protected by the stronger of the two; every
// other pairing agrees over the C25519 halves alone.
func (id *Identity) Agree(other *Identity, key *[SymmetricKeySize]byte) bool {
	if id.priv == nil {
		return false
	}
	selfPriv := id.c25519Private()
	otherPub := other.c25519Public()
	if selfPriv == nil || otherPub == nil {
		return false
	}
	defer memzero.Zero(selfPriv[:])

	if id.typ == TypeP384 && other.typ == TypeP384 {
		s1, err := crypto.C25519Agree(selfPriv, otherPub)
		if err != nil {
			return false
		}
		var p384Priv crypto.P384Private
		copy(p384Priv[:], id.priv[1+c25519PrivateSize:])
		var p384Pub crypto.P384Public
		copy(p384Pub[:], other.pub[1+c25519PublicSize:])
		s2, err := crypto.P384ECDH(&p384Priv, &p384Pub)
		memzero.Zero(p384Priv[:])
		if err != nil {
			memzero.Zero(s1[:])
			return false
		}
		*key = crypto.SHA384Concat(s1[:], s2[:])
		memzero.Zero(s1[:])
		memzero.Zero(s2[:])
		return true
	}

	s, err := crypto.C25519Agree(selfPriv, otherPub)
	if err != nil {
		return false
	}
	h := crypto.SHA512(s[:])
	memzero.Zero(s[:])
	copy(key[:], h[:SymmetricKeySize])
	return true
}

// HashWithPrivate writes SHA-384(public ‖ private) into out, or zeros when
// no private key is present.
func (id *Identity) HashWithPrivate(out *[FingerprintHashSize]byte) {
	if id.priv == nil {
		*out = [FingerprintHashSize]byte{}
		return
	}
	*out = crypto.SHA384Concat(id.pub, id.priv)
}

// c25519Private returns the combined C25519 private half, which both types
// carry. Returns nil when absent or the type is unknown.
func (id *Identity) c25519Private() *crypto.C25519Private {
	var out crypto.C25519Private
	switch id.typ {
	case TypeC25519:
		copy(out[:], id.priv)
	case TypeP384:
		copy(out[:], id.priv[1:])
	default:
		return nil
	}
	return &out
}

// c25519Public returns the combined C25519 public half, which both types
// carry. Returns nil when the type is unknown.
func (id *Identity) c25519Public() *crypto.C25519Public {
	var out crypto.C25519Public
	switch id.typ {
	case TypeC25519:
		copy(out[:], id.pub)
	case TypeP384:
		copy(out[:], id.pub[1:])
	default:
		return nil
	}
	return &out
}
