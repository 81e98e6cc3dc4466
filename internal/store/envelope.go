package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// The current version of the sealed secret-file format.
const envelopeVersion = 1

// Sealing context, bound into the AEAD as associated data so an envelope
// cannot be repurposed for another file kind.
const envelopeContext = "weft/identity.secret"

var errWrongPassphrase = errors.New("wrong passphrase or corrupted identity")

// envelope is the on-disk JSON structure around the sealed identity.
type envelope struct {
	Version int    `json:"v"`
	Salt    []byte `json:"salt"`
	Nonce   []byte `json:"nonce"`
	N       int    `json:"scrypt_n"`
	R       int    `json:"scrypt_r"`
	P       int    `json:"scrypt_p"`
	Sealed  []byte `json:"sealed"`
}

// encrypt derives a key from passphrase and seals raw into a JSON envelope.
func encrypt(passphrase string, raw []byte, N, r, p int) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	sealed := aead.Seal(nil, nonce, raw, []byte(envelopeContext))

	return json.Marshal(envelope{
		Version: envelopeVersion,
		Salt:    salt[:],
		Nonce:   nonce,
		N:       N,
		R:       r,
		P:       p,
		Sealed:  sealed,
	})
}

// decrypt opens a JSON envelope using a key derived from passphrase.
func decrypt(passphrase string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	if env.Version > envelopeVersion {
		return nil, fmt.Errorf("unsupported envelope version %d", env.Version)
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, errWrongPassphrase
	}
	pt, err := aead.Open(nil, env.Nonce, env.Sealed, []byte(envelopeContext))
	if err != nil {
		return nil, errWrongPassphrase
	}
	return pt, nil
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }
