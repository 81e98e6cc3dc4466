package crypto

import (
	"bytes"
	"context"
	"testing"
)

func TestC25519_SignVerify(t *testing.T) {
	priv, pub, err := GenerateC25519()
	if err != nil {
		t.Fatalf("GenerateC25519: %v", err)
	}
	msg := []byte("control message")

	sig := C25519Sign(&priv, msg)
	if !C25519Verify(&pub, msg, sig[:]) {
		t.Fatal("signature should verify")
	}

	bad := append([]byte(nil), msg...)
	bad[0] ^= 1
	if C25519Verify(&pub, bad, sig[:]) {
		t.Fatal("flipped message should not verify")
	}

	// A flipped bit anywhere in the 96 bytes must fail, including the
	// appended digest prefix.
	for _, i := range []int{0, 40, 63, 64, 95} {
		s := sig
		s[i] ^= 0x80
		if C25519Verify(&pub, msg, s[:]) {
			t.Fatalf("flipped signature byte %d should not verify", i)
		}
	}

	if C25519Verify(&pub, msg, sig[:64]) {
		t.Fatal("truncated signature should not verify")
	}
}

func TestC25519_AgreeSymmetric(t *testing.T) {
	aPriv, aPub, err := GenerateC25519()
	if err != nil {
		t.Fatalf("GenerateC25519: %v", err)
	}
	bPriv, bPub, err := GenerateC25519()
	if err != nil {
		t.Fatalf("GenerateC25519: %v", err)
	}

	ab, err := C25519Agree(&aPriv, &bPub)
	if err != nil {
		t.Fatalf("C25519Agree: %v", err)
	}
	ba, err := C25519Agree(&bPriv, &aPub)
	if err != nil {
		t.Fatalf("C25519Agree: %v", err)
	}
	if ab != ba {
		t.Fatal("shared secrets differ")
	}
}

func TestGenerateC25519Satisfying(t *testing.T) {
	calls := 0
	priv, pub, err := GenerateC25519Satisfying(context.Background(), func(p *C25519Public) bool {
		calls++
		return p[0]&1 == 0
	})
	if err != nil {
		t.Fatalf("GenerateC25519Satisfying: %v", err)
	}
	if pub[0]&1 != 0 {
		t.Fatal("returned public key does not satisfy the predicate")
	}
	if calls == 0 {
		t.Fatal("predicate never invoked")
	}
	if bytes.Equal(priv[:], make([]byte, C25519PrivateSize)) {
		t.Fatal("zero private key")
	}
}

func TestGenerateC25519Satisfying_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := GenerateC25519Satisfying(ctx, func(*C25519Public) bool { return false })
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
