package identity

import "testing"

func TestAddress_IsReserved(t *testing.T) {
	cases := []struct {
		addr     Address
		reserved bool
	}{
		{0, true},
		{1, false},
		{0xff00000000, true},
		{0xffffffffff, true},
		{0xfe00000001, false},
		{0x0123456789, false},
	}
	for _, c := range cases {
		if got := c.addr.IsReserved(); got != c.reserved {
			t.Fatalf("IsReserved(%s) = %v, want %v", c.addr, got, c.reserved)
		}
	}
}

func TestAddress_BytesRoundTrip(t *testing.T) {
	a := Address(0x0123456789)
	b := a.Bytes()
	if len(b) != AddressSize {
		t.Fatalf("Bytes length %d", len(b))
	}
	if got := NewAddress(b); got != a {
		t.Fatalf("round trip: got %s, want %s", got, a)
	}
}

func TestAddress_StringWidth(t *testing.T) {
	if s := Address(0x42).String(); s != "0000000042" {
		t.Fatalf("String = %q", s)
	}
}
