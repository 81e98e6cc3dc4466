package identity

import (
	"testing"

	"weft/internal/crypto"
)

// newTestC25519 builds a type 0 identity from fresh keys without grinding
// the proof of work. Every operation except Validate is exercisable this
// way; the address slot just has to be non-reserved.
func newTestC25519(t *testing.T) *Identity {
	t.Helper()
	priv, pub, err := crypto.GenerateC25519()
	if err != nil {
		t.Fatalf("GenerateC25519: %v", err)
	}
	id := &Identity{
		typ:  TypeC25519,
		pub:  append([]byte(nil), pub[:]...),
		priv: append([]byte(nil), priv[:]...),
	}
	id.hash = crypto.SHA384(id.pub)
	id.address = NewAddress(id.hash[43:])
	if id.address.IsReserved() {
		id.address = 1
	}
	return id
}

// newTestP384 builds a type 1 identity from fresh keys without grinding the
// proof of work. The address is derived from the fingerprint, so the codec
// sanity checks hold.
func newTestP384(t *testing.T) *Identity {
	t.Helper()
	for {
		cPriv, cPub, err := crypto.GenerateC25519()
		if err != nil {
			t.Fatalf("GenerateC25519: %v", err)
		}
		pPriv, pPub, err := crypto.GenerateP384()
		if err != nil {
			t.Fatalf("GenerateP384: %v", err)
		}
		pub := make([]byte, p384PublicSize)
		priv := make([]byte, p384PrivateSize)
		copy(pub[1:], cPub[:])
		copy(pub[1+c25519PublicSize:], pPub[:])
		copy(priv[1:], cPriv[:])
		copy(priv[1+c25519PrivateSize:], pPriv[:])

		id := &Identity{typ: TypeP384, pub: pub, priv: priv}
		id.hash = crypto.SHA384(pub)
		id.address = NewAddress(id.hash[43:])
		if id.address.IsReserved() {
			continue
		}
		return id
	}
}

// withoutPrivate returns a public-only copy.
func withoutPrivate(id *Identity) *Identity {
	return &Identity{
		typ:     id.typ,
		address: id.address,
		hash:    id.hash,
		pub:     append([]byte(nil), id.pub...),
	}
}
