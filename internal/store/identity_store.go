package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"weft/internal/identity"
	"weft/internal/util/memzero"
)

const (
	secretFile = "identity.secret"
	publicFile = "identity.public"
)

// ErrNoIdentity is returned when no identity has been generated yet.
var ErrNoIdentity = errors.New("no identity in store")

// FileStore keeps the node identity on disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Save writes identity.secret and identity.public. A non-empty passphrase
// seals the secret file in a scrypt/ChaCha20-Poly1305 envelope.
func (s *FileStore) Save(id *identity.Identity, passphrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	secret := []byte(id.StringWithPrivate())
	defer memzero.Zero(secret)

	blob := secret
	if passphrase != "" {
		var err error
		N, r, p := scryptParamsDefault()
		blob, err = encrypt(passphrase, secret, N, r, p)
		if err != nil {
			return err
		}
	}
	if err := writeFile(filepath.Join(s.dir, secretFile), blob, 0o600); err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, publicFile), []byte(id.String()+"\n"), 0o644)
}

// Load reads and parses identity.secret, unsealing it when a passphrase is
// given, and validates the identity before returning it.
func (s *FileStore) Load(passphrase string) (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, secretFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoIdentity
	}
	if err != nil {
		return nil, err
	}
	if passphrase != "" {
		if b, err = decrypt(passphrase, b); err != nil {
			return nil, err
		}
	}
	defer memzero.Zero(b)

	id, err := identity.ParseIdentity(strings.TrimSpace(string(b)))
	if err != nil {
		return nil, err
	}
	if !id.Validate() {
		id.Scrub()
		return nil, errors.New("stored identity failed local validation")
	}
	return id, nil
}

// LoadPublic reads identity.public; it never touches the secret file.
func (s *FileStore) LoadPublic() (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, publicFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoIdentity
	}
	if err != nil {
		return nil, err
	}
	return identity.ParseIdentity(strings.TrimSpace(string(b)))
}
