package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()

	srv, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Error starting miniredis server: %v", err)
	}
	t.Cleanup(srv.Close)

	cache, err := NewCache(&Config{
		Host: srv.Host(),
		Port: srv.Port(),
	})
	assert.Nil(t, err)
	assert.NotNil(t, cache)

	return srv, cache
}

func TestNewRedisInstanceWithInvalidConfig(t *testing.T) {
	cache, err := NewCache(&Config{
		Host: "fakelocalhost",
		Port: "6379",
	})

	// no server is listening there, the ping must fail
	assert.NotNil(t, err)
	assert.Nil(t, cache)
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	_, cache := newTestServer(t)
	ctx := context.Background()

	err := cache.Set(ctx, "team:t1", `{"id":"t1","name":"Data Platform"}`, time.Minute)
	assert.Nil(t, err)

	val, err := cache.Get(ctx, "team:t1")
	assert.Nil(t, err)
	assert.Equal(t, `{"id":"t1","name":"Data Platform"}`, val)

	err = cache.Delete(ctx, "team:t1")
	assert.Nil(t, err)

	val, err = cache.Get(ctx, "team:t1")
	assert.NotNil(t, err)
	assert.Equal(t, "", val)
}

func TestRedisCacheGetByPattern(t *testing.T) {
	_, cache := newTestServer(t)
	ctx := context.Background()

	assert.Nil(t, cache.Set(ctx, "webhook:w1", "value1", time.Minute))
	assert.Nil(t, cache.Set(ctx, "webhook:w2", "value2", time.Minute))
	assert.Nil(t, cache.Set(ctx, "team:t1", "othervalue", time.Minute))

	values, err := cache.GetByPattern(ctx, "webhook:*")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(values))
	assert.Equal(t, "value1", values["webhook:w1"])
	assert.Equal(t, "value2", values["webhook:w2"])

	values, err = cache.GetByPattern(ctx, "room:*")
	assert.Nil(t, err)
	assert.Equal(t, 0, len(values))
}

func TestRedisCache_Disconnect(t *testing.T) {
	_, cache := newTestServer(t)
	assert.Nil(t, cache.Disconnect())
}
