package identity

import "errors"

var (
	// ErrMalformedIdentity is returned when a textual or binary identity
	// fails to decode: missing fields, bad hex or base32, size mismatches,
	// or truncated input.
	ErrMalformedIdentity = errors.New("malformed identity")

	// ErrReservedAddress is returned when a decoded identity carries a
	// reserved address.
	ErrReservedAddress = errors.New("reserved address")

	// ErrFingerprintMismatch is returned when a type 1 identity's address
	// does not match the recomputed fingerprint of its public key.
	ErrFingerprintMismatch = errors.New("address does not match public key fingerprint")

	// ErrUnknownType is returned for an unrecognized identity type.
	ErrUnknownType = errors.New("unknown identity type")
)
