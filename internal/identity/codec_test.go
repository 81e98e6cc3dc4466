package identity

import (
	"errors"
	"strings"
	"testing"
)

func TestParseIdentity_RoundTripC25519(t *testing.T) {
	id := newTestC25519(t)

	got, err := ParseIdentity(id.StringWithPrivate())
	if err != nil {
		t.Fatalf("ParseIdentity: %v", err)
	}
	if !got.Equal(id) || !got.HasPrivate() {
		t.Fatal("round trip lost data")
	}
	if got.StringWithPrivate() != id.StringWithPrivate() {
		t.Fatal("textual form not stable")
	}

	pubOnly, err := ParseIdentity(id.String())
	if err != nil {
		t.Fatalf("ParseIdentity public: %v", err)
	}
	if pubOnly.HasPrivate() {
		t.Fatal("public form should not carry private material")
	}
	if !pubOnly.Equal(id) {
		t.Fatal("public fields changed")
	}
}

func TestParseIdentity_RoundTripP384(t *testing.T) {
	id := newTestP384(t)

	got, err := ParseIdentity(id.StringWithPrivate())
	if err != nil {
		t.Fatalf("ParseIdentity: %v", err)
	}
	if !got.Equal(id) || !got.HasPrivate() {
		t.Fatal("round trip lost data")
	}
	if got.Fingerprint() != id.Fingerprint() {
		t.Fatal("fingerprint changed")
	}
}

func TestParseIdentity_ReservedAddress(t *testing.T) {
	zeroPub := strings.Repeat("00", c25519PublicSize)

	if _, err := ParseIdentity("0000000000:0:" + zeroPub); !errors.Is(err, ErrReservedAddress) {
		t.Fatalf("zero address: got %v", err)
	}
	if _, err := ParseIdentity("ff12345678:0:" + zeroPub); !errors.Is(err, ErrReservedAddress) {
		t.Fatalf("0xff prefix: got %v", err)
	}
}

func TestParseIdentity_Malformed(t *testing.T) {
	id := newTestC25519(t)
	valid := id.StringWithPrivate()
	fields := strings.Split(valid, ":")

	cases := map[string]string{
		"too few fields":   fields[0],
		"too many fields":  valid + ":extra:extra",
		"bad address":      "zzzzzzzzzz:" + fields[1] + ":" + fields[2],
		"unknown type":     fields[0] + ":2:" + fields[2],
		"short public":     fields[0] + ":0:" + fields[2][:40],
		"bad public hex":   fields[0] + ":0:" + strings.Repeat("zz", c25519PublicSize),
		"short private":    fields[0] + ":0:" + fields[2] + ":aabb",
		"bad private char": fields[0] + ":0:" + fields[2] + ":" + strings.Repeat("zz", c25519PrivateSize),
	}
	for name, in := range cases {
		if _, err := ParseIdentity(in); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestParseIdentity_TinyPrivateFieldIgnored(t *testing.T) {
	// The legacy parser treats a private field of one character or less as
	// absent rather than malformed.
	id := newTestC25519(t)
	got, err := ParseIdentity(id.String() + ":a")
	if err != nil {
		t.Fatalf("ParseIdentity: %v", err)
	}
	if got.HasPrivate() {
		t.Fatal("tiny private field should be ignored")
	}
}

func TestParseIdentity_P384FingerprintMismatch(t *testing.T) {
	id := newTestP384(t)
	fields := strings.Split(id.String(), ":")

	wrong := "0123456789"
	if wrong == fields[0] {
		wrong = "0123456788"
	}
	_, err := ParseIdentity(wrong + ":1:" + fields[2])
	if !errors.Is(err, ErrFingerprintMismatch) {
		t.Fatalf("got %v, want ErrFingerprintMismatch", err)
	}
}
