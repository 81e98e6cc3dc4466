package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"weft/internal/identity"
	"weft/internal/store"
)

func TestLoad_Empty(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	if _, err := s.Load(""); !errors.Is(err, store.ErrNoIdentity) {
		t.Fatalf("got %v, want ErrNoIdentity", err)
	}
	if _, err := s.LoadPublic(); !errors.Is(err, store.ErrNoIdentity) {
		t.Fatalf("got %v, want ErrNoIdentity", err)
	}
}

func TestSaveLoad_Plain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping proof-of-work generation in short mode")
	}
	home := t.TempDir()
	s := store.NewFileStore(home)

	id, err := identity.Generate(identity.TypeC25519)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := s.Save(id, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// identity.secret carries the private field, identity.public does not.
	secret, err := os.ReadFile(filepath.Join(home, "identity.secret"))
	if err != nil {
		t.Fatalf("read secret: %v", err)
	}
	if got := strings.Count(string(secret), ":"); got != 3 {
		t.Fatalf("secret file has %d colons, want 3", got)
	}

	loaded, err := s.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Equal(id) || !loaded.HasPrivate() {
		t.Fatal("loaded identity differs")
	}

	pub, err := s.LoadPublic()
	if err != nil {
		t.Fatalf("LoadPublic: %v", err)
	}
	if pub.HasPrivate() {
		t.Fatal("public file should not carry private material")
	}
	if !pub.Equal(id) {
		t.Fatal("public identity differs")
	}
}

func TestSaveLoad_Passphrase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping proof-of-work generation in short mode")
	}
	home := t.TempDir()
	s := store.NewFileStore(home)

	id, err := identity.Generate(identity.TypeC25519)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := s.Save(id, "correct horse"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := s.Load("wrong"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
	loaded, err := s.Load("correct horse")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Equal(id) || !loaded.HasPrivate() {
		t.Fatal("loaded identity differs")
	}
}
