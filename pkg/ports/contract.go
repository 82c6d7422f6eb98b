package ports

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache implementation
// adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	t.Helper()
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405.000000000") + "-"

	t.Run("Set and Get", func(t *testing.T) {
		err := cache.Set(ctx, prefix+"upper", "HELLO")
		require.NoError(t, err, "Set should not return error")

		value, found, err := cache.Get(ctx, prefix+"upper")
		require.NoError(t, err, "Get should not return error")
		assert.True(t, found)
		assert.Equal(t, "HELLO", value)
	})

	t.Run("Get Missing", func(t *testing.T) {
		value, found, err := cache.Get(ctx, prefix+"missing")
		require.NoError(t, err, "a miss is not an error")
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("Empty Value Is A Hit", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, prefix+"empty", ""))

		value, found, err := cache.Get(ctx, prefix+"empty")
		require.NoError(t, err)
		assert.True(t, found, "empty results must be distinguishable from misses")
		assert.Equal(t, "", value)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, prefix+"k", "v1"))
		require.NoError(t, cache.Set(ctx, prefix+"k", "v2"))

		value, _, err := cache.Get(ctx, prefix+"k")
		require.NoError(t, err)
		assert.Equal(t, "v2", value)
	})

	t.Run("Concurrent Access", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("%sc%d", prefix, i)
				assert.NoError(t, cache.Set(ctx, key, key))
				value, found, err := cache.Get(ctx, key)
				assert.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, key, value)
			}(i)
		}
		wg.Wait()
	})
}
