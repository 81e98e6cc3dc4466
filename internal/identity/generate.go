package identity

import (
	"context"

	"weft/internal/crypto"
	"weft/internal/util/memzero"
)

// Generate creates a new identity of the given type. Generation loops
// candidate key pairs through the proof of work until one passes and its
// address is not reserved; expect on the order of seconds of CPU time.
func Generate(t Type) (*Identity, error) {
	return GenerateContext(context.Background(), t)
}

// GenerateContext is Generate with cooperative cancellation, checked at
// least once per proof-of-work attempt. A cancelled generation returns
// ctx.Err() and no identity.
func GenerateContext(ctx context.Context, t Type) (*Identity, error) {
	switch t {
	case TypeC25519:
		return generateC25519(ctx)
	case TypeP384:
		return generateP384(ctx)
	}
	return nil, ErrUnknownType
}

func generateC25519(ctx context.Context) (*Identity, error) {
	var digest [64]byte
	genmem := make([]byte, v0Memory)
	for {
		priv, pub, err := crypto.GenerateC25519Satisfying(ctx, func(pub *crypto.C25519Public) bool {
			v0ProofOfWork(pub[:], &digest, genmem)
			return digest[0] < v0Threshold
		})
		if err != nil {
			return nil, err
		}
		// The address comes from the work digest for type 0, not from the
		// fingerprint hash.
		addr := NewAddress(digest[59:])
		if addr.IsReserved() {
			memzero.Zero(priv[:])
			continue
		}
		id := &Identity{
			typ:     TypeC25519,
			address: addr,
			pub:     append([]byte(nil), pub[:]...),
			priv:    append([]byte(nil), priv[:]...),
		}
		memzero.Zero(priv[:])
		id.hash = crypto.SHA384(id.pub)
		return id, nil
	}
}

func generateP384(ctx context.Context) (*Identity, error) {
	pub := make([]byte, p384PublicSize)
	priv := make([]byte, p384PrivateSize)
	defer memzero.Zero(priv)
	for {
		// Fresh key material with a zeroed 8-bit nonce. The nonce is bumped
		// per failed attempt; each time it wraps, only the P-384 sub-key is
		// regenerated (its generator is the cheaper of the two).
		pub[0] = 0
		cPriv, cPub, err := crypto.GenerateC25519()
		if err != nil {
			return nil, err
		}
		copy(pub[1:], cPub[:])
		copy(priv[1:], cPriv[:])
		memzero.Zero(cPriv[:])
		pPriv, pPub, err := crypto.GenerateP384()
		if err != nil {
			return nil, err
		}
		copy(pub[1+c25519PublicSize:], pPub[:])
		copy(priv[1+c25519PrivateSize:], pPriv[:])
		memzero.Zero(pPriv[:])

		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if v1ProofOfWork(pub) {
				break
			}
			pub[0]++
			if pub[0] == 0 {
				pPriv, pPub, err = crypto.GenerateP384()
				if err != nil {
					return nil, err
				}
				copy(pub[1+c25519PublicSize:], pPub[:])
				copy(priv[1+c25519PrivateSize:], pPriv[:])
				memzero.Zero(pPriv[:])
			}
		}

		// The work criterion passed; the address must also be usable or the
		// whole process repeats with fresh keys.
		hash := crypto.SHA384(pub)
		addr := NewAddress(hash[43:])
		if addr.IsReserved() {
			continue
		}
		priv[0] = pub[0]
		return &Identity{
			typ:     TypeP384,
			address: addr,
			hash:    hash,
			pub:     append([]byte(nil), pub...),
			priv:    append([]byte(nil), priv...),
		}, nil
	}
}
