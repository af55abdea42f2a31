package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/lifeos/pkg/adapters/redis"
	"github.com/aretw0/lifeos/pkg/domain"
	"github.com/aretw0/lifeos/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ports.RunDocumentStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	client := newTestClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("custom:doc:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewDocument("My Doc", domain.DocTypeTargets, "body")))

	val, err := client.Exists(ctx, "custom:doc:my_doc").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)
}

func TestRedisStore_TTLIndexed(t *testing.T) {
	client := newTestClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(time.Hour))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewDocument("Expiring", domain.DocTypePlaybook, "body")))

	ttl, err := client.TTL(ctx, "lifeos:document:expiring").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "Expiring")
}
