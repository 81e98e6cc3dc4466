package crypto

import (
	"encoding/binary"
	"math/bits"
)

// Salsa20 is a stateful Salsa20 stream cipher instance keyed with a 32-byte
// key and an 8-byte IV. The keystream position advances across Crypt calls,
// so a sequence of calls encrypts one continuous stream.
//
// The round count is fixed at construction: 20 for the full cipher, 12 for
// the reduced variant.
type Salsa20 struct {
	state  [16]uint32
	rounds int
}

// "expand 32-byte k"
var salsaSigma = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// NewSalsa20 returns a cipher positioned at the start of the keystream.
// key must be at least 32 bytes and iv at least 8; rounds must be even.
func NewSalsa20(key, iv []byte, rounds int) *Salsa20 {
	s := &Salsa20{rounds: rounds}
	s.state[0] = salsaSigma[0]
	s.state[5] = salsaSigma[1]
	s.state[10] = salsaSigma[2]
	s.state[15] = salsaSigma[3]
	for i := 0; i < 4; i++ {
		s.state[1+i] = binary.LittleEndian.Uint32(key[i*4:])
		s.state[11+i] = binary.LittleEndian.Uint32(key[16+i*4:])
	}
	s.state[6] = binary.LittleEndian.Uint32(iv)
	s.state[7] = binary.LittleEndian.Uint32(iv[4:])
	return s
}

func quarterRound(x *[16]uint32, a, b, c, d int) {
	x[b] ^= bits.RotateLeft32(x[a]+x[d], 7)
	x[c] ^= bits.RotateLeft32(x[b]+x[a], 9)
	x[d] ^= bits.RotateLeft32(x[c]+x[b], 13)
	x[a] ^= bits.RotateLeft32(x[d]+x[c], 18)
}

// keystreamBlock writes the next 64 keystream bytes and advances the counter.
func (s *Salsa20) keystreamBlock(block *[64]byte) {
	x := s.state
	for i := 0; i < s.rounds; i += 2 {
		quarterRound(&x, 0, 4, 8, 12)
		quarterRound(&x, 5, 9, 13, 1)
		quarterRound(&x, 10, 14, 2, 6)
		quarterRound(&x, 15, 3, 7, 11)
		quarterRound(&x, 0, 1, 2, 3)
		quarterRound(&x, 5, 6, 7, 4)
		quarterRound(&x, 10, 11, 8, 9)
		quarterRound(&x, 15, 12, 13, 14)
	}
	for i, v := range x {
		binary.LittleEndian.PutUint32(block[i*4:], v+s.state[i])
	}
	s.state[8]++
	if s.state[8] == 0 {
		s.state[9]++
	}
}

// Crypt XORs src with the keystream into dst, which may alias src. A partial
// trailing block consumes a whole keystream block, matching the reference
// stream layout.
func (s *Salsa20) Crypt(dst, src []byte) {
	var block [64]byte
	for len(src) >= 64 {
		s.keystreamBlock(&block)
		for i := 0; i < 64; i++ {
			dst[i] = src[i] ^ block[i]
		}
		src = src[64:]
		dst = dst[64:]
	}
	if len(src) > 0 {
		s.keystreamBlock(&block)
		for i := range src {
			dst[i] = src[i] ^ block[i]
		}
	}
}
