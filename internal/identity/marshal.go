package identity

import (
	"fmt"

	"weft/internal/crypto"
)

// Binary layout: 5-byte big-endian address, 1-byte type, fixed-size public
// blob, 1-byte private length, optional private blob. The private length is
// 0 or exactly the type's private size; anything else is rejected.

// Marshal returns the binary form. The private blob is emitted only when
// includePrivate is set and private material is present.
func (id *Identity) Marshal(includePrivate bool) []byte {
	out := make([]byte, 0, AddressSize+2+len(id.pub)+len(id.priv))
	out = append(out, id.address.Bytes()...)
	out = append(out, byte(id.typ))
	out = append(out, id.pub...)
	if includePrivate && id.priv != nil {
		out = append(out, byte(len(id.priv)))
		out = append(out, id.priv...)
	} else {
		out = append(out, 0)
	}
	return out
}

// UnmarshalIdentity decodes an identity from the head of data and returns
// the number of bytes consumed. For type 1 the address is checked against
// the recomputed fingerprint before the private length is read.
func UnmarshalIdentity(data []byte) (*Identity, int, error) {
	if len(data) < AddressSize+1 {
		return nil, 0, fmt.Errorf("%w: truncated", ErrMalformedIdentity)
	}
	addr := NewAddress(data)
	typ := Type(data[AddressSize])
	switch typ {
	case TypeC25519, TypeP384:
	default:
		return nil, 0, ErrUnknownType
	}
	if addr.IsReserved() {
		return nil, 0, ErrReservedAddress
	}

	n := AddressSize + 1
	pubLen := publicSize(typ)
	if len(data) < n+pubLen+1 {
		return nil, 0, fmt.Errorf("%w: truncated", ErrMalformedIdentity)
	}
	pub := append([]byte(nil), data[n:n+pubLen]...)
	n += pubLen

	hash := crypto.SHA384(pub)
	if typ == TypeP384 && NewAddress(hash[43:]) != addr {
		return nil, 0, ErrFingerprintMismatch
	}

	privLen := int(data[n])
	n++
	var priv []byte
	switch privLen {
	case 0:
	case privateSize(typ):
		if len(data) < n+privLen {
			return nil, 0, fmt.Errorf("%w: truncated", ErrMalformedIdentity)
		}
		priv = append([]byte(nil), data[n:n+privLen]...)
		n += privLen
	default:
		return nil, 0, fmt.Errorf("%w: bad private key length %d", ErrMalformedIdentity, privLen)
	}

	return &Identity{typ: typ, address: addr, hash: hash, pub: pub, priv: priv}, n, nil
}
