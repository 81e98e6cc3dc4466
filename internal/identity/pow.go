package identity

import (
	"encoding/binary"
	"slices"

	"weft/internal/crypto"
)

// Proof-of-work parameters. These are interoperability constants and must
// not change.
const (
	v0Memory    = 2097152
	v0Threshold = 17

	v1Memory = 131072
)

// The eight prime moduli of the v1 work function's reduction branch.
var v1Primes = [8]uint64{
	4503599627370101,
	4503599627370161,
	4503599627370227,
	4503599627370287,
	4503599627370299,
	4503599627370323,
	4503599627370353,
	4503599627370449,
}

// v0ProofOfWork computes the 2 MiB memory-hard digest of pub into digest.
// genmem must be a v0Memory-sized scratch buffer; it is zeroed here so a
// buffer may be reused across calls. The caller checks the acceptance
// criterion digest[0] < v0Threshold.
//
// The construction chains Salsa20 over the scratch in a CBC-like manner,
// since plain Salsa20 is randomly seekable (good in a cipher, fatal to
// sequential memory-hardness), then uses the scratch as a shuffle table to
// render the final digest.
func v0ProofOfWork(pub []byte, digest *[64]byte, genmem []byte) {
	*digest = crypto.SHA512(pub)

	for i := range genmem {
		genmem[i] = 0
	}
	s20 := crypto.NewSalsa20(digest[:32], digest[32:40], 20)
	s20.Crypt(genmem[:64], genmem[:64])
	for i := 64; i < v0Memory; i += 64 {
		copy(genmem[i:i+64], genmem[i-64:i])
		s20.Crypt(genmem[i:i+64], genmem[i:i+64])
	}

	for i := 0; i < v0Memory/8; i += 2 {
		idx1 := binary.BigEndian.Uint64(genmem[i*8:]) % 8
		idx2 := binary.BigEndian.Uint64(genmem[(i+1)*8:]) % (v0Memory / 8)
		var tmp [8]byte
		copy(tmp[:], genmem[idx2*8:])
		copy(genmem[idx2*8:(idx2+1)*8], digest[idx1*8:(idx1+1)*8])
		copy(digest[idx1*8:(idx1+1)*8], tmp[:])
		s20.Crypt(digest[:], digest[:])
	}
}

// v1ProofOfWork reports whether in meets the 128 KiB work criterion.
//
// The work buffer is filled by one of three branches per 64-byte block,
// chosen by the previous block's leading words; branching is hostile to
// GPU SIMT execution, which pays for all branches. The final sort makes
// every byte of the Poly1305 tag depend on every word, so implementations
// cannot elide the memory.
func v1ProofOfWork(in []byte) bool {
	w := make([]byte, v1Memory)

	first := crypto.SHA512(in)
	copy(w[:64], first[:])
	for i := 64; i < v1Memory; i += 64 {
		src := w[i-64 : i]
		dst := w[i : i+64]
		switch {
		case binary.LittleEndian.Uint64(src)&7 == 0:
			d := crypto.SHA512(src)
			copy(dst, d[:])
		case binary.LittleEndian.Uint64(src[8:])&15 == 0:
			for k := 0; k < 8; k++ {
				v := binary.BigEndian.Uint64(src[k*8:]) % v1Primes[k]
				binary.BigEndian.PutUint64(dst[k*8:], v)
			}
			// Digest the source block followed by the block just written;
			// the 48-byte digest leaves the last 16 bytes of the slot as
			// set by the reduction above.
			d := crypto.SHA384(w[i-64 : i+64])
			copy(dst[:48], d[:])
		default:
			crypto.NewSalsa20(src[:32], src[32:40], 12).Crypt(dst, src)
		}
	}

	// Sort as little-endian 64-bit integers, ascending.
	words := make([]uint64, v1Memory/8)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(w[i*8:])
	}
	slices.Sort(words)
	for i, v := range words {
		binary.LittleEndian.PutUint64(w[i*8:], v)
	}

	tag := crypto.Poly1305Sum(w, w[:32])
	copy(w[:16], tag[:])
	return binary.BigEndian.Uint64(w[:8])%1000 == 0
}
