package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/textops/pkg/domain"
	"github.com/aretw0/textops/pkg/ports"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new results.
	ActiveKey []byte

	// FallbackKeys are tried when the active key cannot decrypt a value,
	// so keys can be rotated without flushing the cache.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.ResultCache
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that stores results sealed with
// AES-GCM, base64 encoded. Every key must be KeySize bytes.
func NewEncryptionMiddleware(config EncryptionConfig) (Middleware, error) {
	if len(config.ActiveKey) != KeySize {
		return nil, fmt.Errorf("active key must be %d bytes (AES-256), got %d", KeySize, len(config.ActiveKey))
	}
	for i, k := range config.FallbackKeys {
		if len(k) != KeySize {
			return nil, fmt.Errorf("fallback key %d must be %d bytes (AES-256), got %d", i, KeySize, len(k))
		}
	}
	return func(next ports.ResultCache) ports.ResultCache {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}, nil
}

func (m *encryptionMiddleware) Set(ctx context.Context, key, value string) error {
	ciphertext, err := encrypt([]byte(value), m.config.ActiveKey)
	if err != nil {
		return domain.NewCacheError("encrypt", err)
	}
	return m.next.Set(ctx, key, base64.StdEncoding.EncodeToString(ciphertext))
}

// Get reports undecryptable entries as cache errors; callers treat them as misses.
func (m *encryptionMiddleware) Get(ctx context.Context, key string) (string, bool, error) {
	sealed, found, err := m.next.Get(ctx, key)
	if err != nil || !found {
		return "", found, err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", false, domain.NewCacheError("decode", err)
	}

	plainText, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return "", false, domain.NewCacheError("decrypt", err)
	}
	return string(plainText), true, nil
}

// Helpers

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}

	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}

	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, ciphertext[gcm.NonceSize():], nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
