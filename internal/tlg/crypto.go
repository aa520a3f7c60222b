package tlg

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"strings"
)

// SessionCipher seals stored user sessions with AES-GCM under MASTER_KEY, using IV_KEY as nonce.
type SessionCipher struct {
	masterKey []byte
	iv        []byte
}

func NewSessionCipher(masterKey, ivKey string) (*SessionCipher, error) {
	switch len(masterKey) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("master key must be 16, 24 or 32 bytes, got %d", len(masterKey))
	}
	if ivKey == "" {
		return nil, fmt.Errorf("iv key is empty")
	}
	return &SessionCipher{masterKey: []byte(masterKey), iv: []byte(ivKey)}, nil
}

func (c *SessionCipher) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.masterKey)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, len(c.iv))
}

func (c *SessionCipher) Encrypt(plain string) (string, error) {
	gcm, err := c.aead()
	if err != nil {
		return "", fmt.Errorf("can not build cipher: %w", err)
	}
	return base64.URLEncoding.EncodeToString(gcm.Seal(nil, c.iv, []byte(plain), nil)), nil
}

func (c *SessionCipher) Decrypt(enc string) (string, error) {
	enc = strings.TrimSpace(enc)
	raw, err := base64.URLEncoding.DecodeString(enc)
	if err != nil {
		if raw, err = base64.StdEncoding.DecodeString(enc); err != nil {
			return "", fmt.Errorf("%w: %w", ErrBadSession, err)
		}
	}
	gcm, err := c.aead()
	if err != nil {
		return "", fmt.Errorf("can not build cipher: %w", err)
	}
	plain, err := gcm.Open(nil, c.iv, raw, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadSession, err)
	}
	return string(plain), nil
}
