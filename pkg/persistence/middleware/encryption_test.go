package middleware_test

import (
	"context"
	"crypto/rand"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/textops/pkg/adapters/memory"
	"github.com/aretw0/textops/pkg/domain"
	"github.com/aretw0/textops/pkg/persistence/middleware"
	"github.com/aretw0/textops/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) []byte {
	k := make([]byte, middleware.KeySize)
	if _, err := io.ReadFull(rand.Reader, k); err != nil {
		t.Fatal(err)
	}
	return k
}

func newSecureCache(t *testing.T, cfg middleware.EncryptionConfig, next ports.ResultCache) ports.ResultCache {
	t.Helper()
	mw, err := middleware.NewEncryptionMiddleware(cfg)
	require.NoError(t, err)
	return mw(next)
}

func TestEncryptionMiddleware_Contract(t *testing.T) {
	ports.RunResultCacheContract(t, newSecureCache(t, middleware.EncryptionConfig{ActiveKey: generateKey(t)}, memory.NewCache()))
}

func TestEncryptionMiddleware_Roundtrip(t *testing.T) {
	underlying := memory.NewCache()
	secure := newSecureCache(t, middleware.EncryptionConfig{ActiveKey: generateKey(t)}, underlying)
	ctx := context.Background()

	require.NoError(t, secure.Set(ctx, "upper", "MY SECRET SAUCE"))

	stored, found, err := underlying.Get(ctx, "upper")
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, stored, "SECRET")

	got, found, err := secure.Get(ctx, "upper")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "MY SECRET SAUCE", got)
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	underlying := memory.NewCache()
	oldKey := generateKey(t)
	newKey := generateKey(t)
	ctx := context.Background()

	oldCache := newSecureCache(t, middleware.EncryptionConfig{ActiveKey: oldKey}, underlying)
	require.NoError(t, oldCache.Set(ctx, "k", "encrypted-with-old-key"))

	rotated := newSecureCache(t, middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	}, underlying)

	got, found, err := rotated.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "encrypted-with-old-key", got)

	require.NoError(t, rotated.Set(ctx, "k", "encrypted-with-new-key"))

	// The old key alone can no longer read it.
	_, found, err = oldCache.Get(ctx, "k")
	require.Error(t, err)
	assert.False(t, found)
	assert.Equal(t, domain.ErrCodeCacheError, domain.ErrorCode(err))
}

func TestEncryptionMiddleware_CorruptEntry(t *testing.T) {
	underlying := memory.NewCache()
	secure := newSecureCache(t, middleware.EncryptionConfig{ActiveKey: generateKey(t)}, underlying)
	ctx := context.Background()

	require.NoError(t, underlying.Set(ctx, "plain", "not base64!"))
	_, found, err := secure.Get(ctx, "plain")
	assert.False(t, found)
	assert.Equal(t, domain.ErrCodeCacheError, domain.ErrorCode(err))

	require.NoError(t, underlying.Set(ctx, "short", "YWJj"))
	_, found, err = secure.Get(ctx, "short")
	assert.False(t, found)
	assert.Error(t, err)
}

func TestEncryptionMiddleware_InvalidKey(t *testing.T) {
	_, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short-key")})
	assert.ErrorContains(t, err, "32 bytes")

	_, err = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    generateKey(t),
		FallbackKeys: [][]byte{[]byte(strings.Repeat("k", 16))},
	})
	assert.ErrorContains(t, err, "fallback key 0")
}

type countingCache struct {
	ports.ResultCache
	sets int
}

func (c *countingCache) Set(ctx context.Context, key, value string) error {
	c.sets++
	return c.ResultCache.Set(ctx, key, value)
}

func TestChain(t *testing.T) {
	base := memory.NewCache()
	counter := &countingCache{ResultCache: base}

	encrypt, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	require.NoError(t, err)
	count := func(next ports.ResultCache) ports.ResultCache {
		counter.ResultCache = next
		return counter
	}

	// count wraps encrypt, which wraps base.
	c := middleware.Chain(base, count, encrypt)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", "v"))

	assert.Equal(t, 1, counter.sets)
	raw, _, _ := base.Get(ctx, "k")
	assert.NotEqual(t, "v", raw)

	got, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", got)
}
