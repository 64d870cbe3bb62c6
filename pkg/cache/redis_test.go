package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := &Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "analysis:competitor:ACME:US", "# Report", 15*time.Minute)
	require.NoError(t, err)

	val, err := client.Get(ctx, "analysis:competitor:ACME:US")
	require.NoError(t, err)
	assert.Equal(t, "# Report", val)
}

func TestClient_GetMiss(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	_, err := client.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsMiss(err))
}

func TestClient_Expiration(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "key", "value", time.Minute)
	require.NoError(t, err)

	// miniredis advances TTLs manually
	mr.FastForward(2 * time.Minute)

	_, err = client.Get(ctx, "key")
	assert.True(t, IsMiss(err))
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "key1", "v1", time.Hour)
	_ = client.Set(ctx, "key2", "v2", time.Hour)

	err := client.Delete(ctx, "key1", "key2")
	require.NoError(t, err)

	exists, err := client.Exists(ctx, "key1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)

	_ = client.Set(ctx, "key", "v", time.Hour)

	exists, err = client.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "analysis:competitor:A", "1", time.Hour)
	_ = client.Set(ctx, "analysis:competitor:B", "2", time.Hour)
	_ = client.Set(ctx, "analysis:trends:X", "3", time.Hour)

	err := client.DeletePattern(ctx, "analysis:competitor:*")
	require.NoError(t, err)

	exists, _ := client.Exists(ctx, "analysis:competitor:A")
	assert.False(t, exists)
	exists, _ = client.Exists(ctx, "analysis:trends:X")
	assert.True(t, exists)
}

func TestNewClient_BadURL(t *testing.T) {
	_, err := NewClient("not-a-url")
	assert.Error(t, err)
}
