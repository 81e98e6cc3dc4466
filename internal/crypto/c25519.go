package crypto

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/curve25519"
)

// Combined C25519 key sizes. A combined public blob is the X25519 agreement
// key followed by the Ed25519 signing key; the private blob holds the X25519
// scalar followed by the Ed25519 seed.
const (
	C25519PublicSize    = 64
	C25519PrivateSize   = 64
	C25519SharedSize    = 32
	C25519SignatureSize = 96
)

// C25519Public is a combined X25519+Ed25519 public key blob.
type C25519Public [C25519PublicSize]byte

// Slice returns the blob as a []byte.
func (p C25519Public) Slice() []byte { return p[:] }

// C25519Private is a combined X25519+Ed25519 private key blob.
type C25519Private [C25519PrivateSize]byte

// Slice returns the blob as a []byte.
func (k C25519Private) Slice() []byte { return k[:] }

// GenerateC25519 returns a fresh combined key pair. The X25519 scalar is
// clamped per RFC 7748.
func GenerateC25519() (priv C25519Private, pub C25519Public, err error) {
	if _, err = rand.Read(priv[:32]); err != nil {
		return
	}
	clamp(priv[:32])
	xp, err := curve25519.X25519(priv[:32], curve25519.Basepoint)
	if err != nil {
		return
	}
	copy(pub[:32], xp)

	edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return
	}
	copy(priv[32:], edPriv.Seed())
	copy(pub[32:], edPub)
	return
}

// GenerateC25519Satisfying draws fresh key pairs until accept passes on the
// public blob, checking ctx between candidates.
func GenerateC25519Satisfying(ctx context.Context, accept func(pub *C25519Public) bool) (C25519Private, C25519Public, error) {
	for {
		if err := ctx.Err(); err != nil {
			return C25519Private{}, C25519Public{}, err
		}
		priv, pub, err := GenerateC25519()
		if err != nil {
			return C25519Private{}, C25519Public{}, err
		}
		if accept(&pub) {
			return priv, pub, nil
		}
	}
}

// C25519Sign signs data with the Ed25519 half of priv. The signature is the
// legacy 96-byte form: the Ed25519 signature over SHA-512(data) followed by
// the first 32 bytes of that digest.
func C25519Sign(priv *C25519Private, data []byte) (sig [C25519SignatureSize]byte) {
	digest := SHA512(data)
	sk := ed25519.NewKeyFromSeed(priv[32:])
	copy(sig[:64], ed25519.Sign(sk, digest[:]))
	copy(sig[64:], digest[:32])
	return
}

// C25519Verify checks a legacy 96-byte signature over data: both the Ed25519
// signature and the appended digest prefix must match, so a flipped bit
// anywhere in sig fails.
func C25519Verify(pub *C25519Public, data, sig []byte) bool {
	if len(sig) != C25519SignatureSize {
		return false
	}
	digest := SHA512(data)
	if subtle.ConstantTimeCompare(sig[64:], digest[:32]) != 1 {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub[32:]), digest[:], sig[:64])
}

// C25519Agree computes the X25519 shared secret between the agreement halves
// of priv and pub.
func C25519Agree(priv *C25519Private, pub *C25519Public) (out [C25519SharedSize]byte, err error) {
	secret, err := curve25519.X25519(priv[:32], pub[:32])
	if err != nil {
		return
	}
	copy(out[:], secret)
	return
}

func clamp(k []byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
