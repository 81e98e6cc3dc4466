package crypto

import "crypto/sha512"

// SHA512 returns the 64-byte SHA-512 digest of in.
func SHA512(in []byte) [64]byte { return sha512.Sum512(in) }

// SHA512Concat returns the SHA-512 digest of a followed by b.
func SHA512Concat(a, b []byte) (out [64]byte) {
	h := sha512.New()
	h.Write(a)
	h.Write(b)
	copy(out[:], h.Sum(nil))
	return
}

// SHA384 returns the 48-byte SHA-384 digest of in.
func SHA384(in []byte) [48]byte { return sha512.Sum384(in) }

// SHA384Concat returns the SHA-384 digest of a followed by b.
func SHA384Concat(a, b []byte) (out [48]byte) {
	h := sha512.New384()
	h.Write(a)
	h.Write(b)
	copy(out[:], h.Sum(nil))
	return
}
