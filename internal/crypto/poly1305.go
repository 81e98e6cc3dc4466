package crypto

import "golang.org/x/crypto/poly1305"

// Poly1305TagSize is the length of a Poly1305 authenticator.
const Poly1305TagSize = 16

// Poly1305Sum computes the one-shot Poly1305 tag of msg under the first 32
// bytes of key. The key is staged into a local copy, so msg may overlap key;
// callers that MAC a buffer keyed by its own leading bytes and write the tag
// back over them are safe.
func Poly1305Sum(msg, key []byte) (tag [Poly1305TagSize]byte) {
	var k [32]byte
	copy(k[:], key)
	poly1305.Sum(&tag, msg, &k)
	return
}
