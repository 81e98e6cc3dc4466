package identity

import (
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"weft/internal/crypto"
)

// The base32 alphabet for type 1 textual encodings. In-tree and normative:
// RFC 3548 style, lowercase, unpadded.
var b32 = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// addressMask keeps the low 40 bits of a parsed address field.
const addressMask = 0xffffffffff

// String renders the public textual form address:type:public.
func (id *Identity) String() string {
	return id.toString(false)
}

// StringWithPrivate renders the textual form with the private field
// appended when private material is present.
func (id *Identity) StringWithPrivate() string {
	return id.toString(true)
}

func (id *Identity) toString(includePrivate bool) string {
	var b strings.Builder
	b.WriteString(id.address.String())
	switch id.typ {
	case TypeC25519:
		b.WriteString(":0:")
		b.WriteString(hex.EncodeToString(id.pub))
		if includePrivate && id.priv != nil {
			b.WriteByte(':')
			b.WriteString(hex.EncodeToString(id.priv))
		}
	case TypeP384:
		b.WriteString(":1:")
		b.WriteString(b32.EncodeToString(id.pub))
		if includePrivate && id.priv != nil {
			b.WriteByte(':')
			b.WriteString(b32.EncodeToString(id.priv))
		}
	}
	return b.String()
}

// ParseIdentity parses the textual form address:type:public[:private].
// Type 0 key fields are lowercase hex; type 1 fields use the in-tree base32
// alphabet. A private field of length 0 or 1 is ignored, matching the
// legacy parser. For type 1 the address is checked against the recomputed
// fingerprint.
func ParseIdentity(s string) (*Identity, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 && len(fields) != 4 {
		return nil, fmt.Errorf("%w: want 3 or 4 fields, got %d", ErrMalformedIdentity, len(fields))
	}

	raw, err := strconv.ParseUint(fields[0], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad address %q", ErrMalformedIdentity, fields[0])
	}
	addr := Address(raw & addressMask)
	if addr.IsReserved() {
		return nil, ErrReservedAddress
	}

	var typ Type
	switch fields[1] {
	case "0":
		typ = TypeC25519
	case "1":
		typ = TypeP384
	default:
		return nil, ErrUnknownType
	}

	pub, err := decodeKeyField(typ, fields[2])
	if err != nil || len(pub) != publicSize(typ) {
		return nil, fmt.Errorf("%w: bad public key field", ErrMalformedIdentity)
	}

	var priv []byte
	if len(fields) == 4 && len(fields[3]) > 1 {
		priv, err = decodeKeyField(typ, fields[3])
		if err != nil || len(priv) != privateSize(typ) {
			return nil, fmt.Errorf("%w: bad private key field", ErrMalformedIdentity)
		}
	}

	id := &Identity{typ: typ, address: addr, pub: pub, priv: priv}
	id.hash = crypto.SHA384(pub)
	if typ == TypeP384 && NewAddress(id.hash[43:]) != addr {
		return nil, ErrFingerprintMismatch
	}
	return id, nil
}

func decodeKeyField(t Type, s string) ([]byte, error) {
	if t == TypeC25519 {
		return hex.DecodeString(s)
	}
	return b32.DecodeString(s)
}
