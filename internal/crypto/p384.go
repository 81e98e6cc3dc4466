package crypto

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"math/big"
)

// NIST P-384 wire sizes: compressed public point, raw private scalar,
// raw r‖s signature, and ECDH shared secret.
const (
	P384PublicSize    = 49
	P384PrivateSize   = 48
	P384SignatureSize = 96
	P384SharedSize    = 48
)

// ErrInvalidPoint is returned when a compressed P-384 point does not decode
// to a point on the curve.
var ErrInvalidPoint = errors.New("invalid P-384 point")

// P384Public is a compressed P-384 public point.
type P384Public [P384PublicSize]byte

// Slice returns the point as a []byte.
func (p P384Public) Slice() []byte { return p[:] }

// P384Private is a raw P-384 scalar.
type P384Private [P384PrivateSize]byte

// Slice returns the scalar as a []byte.
func (k P384Private) Slice() []byte { return k[:] }

// GenerateP384 returns a fresh P-384 key pair.
func GenerateP384() (priv P384Private, pub P384Public, err error) {
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		return
	}
	key.D.FillBytes(priv[:])
	copy(pub[:], elliptic.MarshalCompressed(elliptic.P384(), key.X, key.Y))
	return
}

// P384Sign produces a raw 96-byte r‖s ECDSA signature over digest.
func P384Sign(priv *P384Private, digest []byte) (sig [P384SignatureSize]byte, err error) {
	key, err := ecdsaKey(priv)
	if err != nil {
		return
	}
	r, s, err := ecdsa.Sign(rand.Reader, key, digest)
	if err != nil {
		return
	}
	r.FillBytes(sig[:48])
	s.FillBytes(sig[48:])
	return
}

// P384Verify checks a raw 96-byte r‖s ECDSA signature over digest.
func P384Verify(pub *P384Public, digest, sig []byte) bool {
	if len(sig) != P384SignatureSize {
		return false
	}
	x, y := elliptic.UnmarshalCompressed(elliptic.P384(), pub[:])
	if x == nil {
		return false
	}
	r := new(big.Int).SetBytes(sig[:48])
	s := new(big.Int).SetBytes(sig[48:])
	return ecdsa.Verify(&ecdsa.PublicKey{Curve: elliptic.P384(), X: x, Y: y}, digest, r, s)
}

// P384ECDH computes the 48-byte ECDH shared secret between priv and a
// compressed peer point.
func P384ECDH(priv *P384Private, pub *P384Public) (out [P384SharedSize]byte, err error) {
	x, y := elliptic.UnmarshalCompressed(elliptic.P384(), pub[:])
	if x == nil {
		err = ErrInvalidPoint
		return
	}
	key, err := ecdh.P384().NewPrivateKey(priv[:])
	if err != nil {
		return
	}
	peer, err := ecdh.P384().NewPublicKey(uncompressedPoint(x, y))
	if err != nil {
		return
	}
	secret, err := key.ECDH(peer)
	if err != nil {
		return
	}
	copy(out[:], secret)
	return
}

// ecdsaKey reconstructs the full ECDSA private key, deriving the public
// point through crypto/ecdh so the scalar is validated on the way.
func ecdsaKey(priv *P384Private) (*ecdsa.PrivateKey, error) {
	key, err := ecdh.P384().NewPrivateKey(priv[:])
	if err != nil {
		return nil, err
	}
	raw := key.PublicKey().Bytes() // uncompressed, 0x04 ‖ X ‖ Y
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: elliptic.P384(),
			X:     new(big.Int).SetBytes(raw[1:49]),
			Y:     new(big.Int).SetBytes(raw[49:]),
		},
		D: new(big.Int).SetBytes(priv[:]),
	}, nil
}

func uncompressedPoint(x, y *big.Int) []byte {
	buf := make([]byte, 97)
	buf[0] = 4
	x.FillBytes(buf[1:49])
	y.FillBytes(buf[49:])
	return buf
}
