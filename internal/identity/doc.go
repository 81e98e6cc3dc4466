// Package identity implements the long-term node identity of the overlay.
//
// An identity binds a 40-bit address to public key material through a
// memory-hard proof of work, making bulk address grinding expensive. Two
// identity types exist: type 0 (combined Curve25519/Ed25519 keys, 2 MiB
// proof of work) and type 1 (a compound blob adding a NIST P-384 key,
// 128 KiB proof of work). Identities sign and verify control messages and
// derive 48-byte symmetric session keys via Diffie–Hellman agreement.
//
// Identities are immutable once constructed; they are created by Generate,
// ParseIdentity or UnmarshalIdentity and never mutated afterwards, with one
// exception: Scrub destroys the private half in place when an identity is
// discarded.
package identity
