// Package crypto exposes the primitives used by the identity subsystem.
//
// Contents
//
//   - Combined C25519 key blobs (X25519 agreement key and Ed25519 signing key
//     packed into one 64-byte public and one 64-byte private blob), with
//     generation, signing, verification and Diffie–Hellman agreement
//   - ECDSA and ECDH over NIST P-384 with compressed 49-byte points and raw
//     96-byte r‖s signatures
//   - SHA-384 and SHA-512 helpers in one- and two-input forms
//   - A stateful Salsa20 stream cipher with selectable round count (12 or 20)
//   - One-shot Poly1305 with alias-safe key/message handling
//
// # Notes
//
// All wire sizes are fixed and normative; functions return fixed-size array
// types to avoid accidental reallocations. Callers should treat returned
// secrets as sensitive and rely on memzero.Zero when practical to reduce
// lifetime in memory.
package crypto
