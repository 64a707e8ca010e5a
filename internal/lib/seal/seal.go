// Package seal wraps event secret codes for transport between the server and
// admin clients. A sealed value is base64(nonce || ciphertext || tag) produced
// by AES-256-GCM with a key derived as SHA-256 of the shared passphrase.
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

var ErrEmptyKey = errors.New("seal: empty key")

type Sealer struct {
	aead cipher.AEAD
}

func New(passphrase string) (*Sealer, error) {
	const op = "lib.seal.New"

	if passphrase == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyKey)
	}

	key := sha256.Sum256([]byte(passphrase))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Sealer{aead: aead}, nil
}

func (s *Sealer) Seal(plain string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("lib.seal.Seal: %w", err)
	}

	out := s.aead.Seal(nonce, nonce, []byte(plain), nil)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Open returns "" for anything that does not authenticate: bad encoding,
// truncation, tampering or a different key. Callers must treat "" as invalid input.
func (s *Sealer) Open(sealed string) string {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return ""
	}

	ns := s.aead.NonceSize()
	if len(raw) < ns+s.aead.Overhead() {
		return ""
	}

	plain, err := s.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return ""
	}

	return string(plain)
}
