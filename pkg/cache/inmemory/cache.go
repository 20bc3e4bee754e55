package inmemory

import (
	"context"
	"fmt"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// InMemoryCache keeps snapshots in process memory using go-cache. It is the
// default driver and needs no external service.
type InMemoryCache struct {
	client *gocache.Cache
}

// Config is the configuration for the in-memory cache, in seconds.
type Config struct {
	DefaultExpiration int32
	CleanupInterval   int32
}

// NewCache builds an in-memory cache. A nil config keeps entries forever.
func NewCache(config *Config) (*InMemoryCache, error) {
	if config == nil {
		config = getDefaultConfig()
	}

	defaultExpiration := time.Duration(config.DefaultExpiration) * time.Second
	cleanupExpiration := time.Duration(config.CleanupInterval) * time.Second

	return &InMemoryCache{
		client: gocache.New(defaultExpiration, cleanupExpiration),
	}, nil
}

// Set implements Cache.
func (imc *InMemoryCache) Set(
	ctx context.Context,
	key string,
	value string,
	ttl time.Duration,
) error {
	imc.client.Set(key, value, ttl)
	return nil
}

// Get implements Cache.
func (imc *InMemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	val, found := imc.client.Get(key)
	if !found {
		return "", fmt.Errorf("key not found")
	}
	return val, nil
}

// GetByPattern implements Cache. The pattern uses path.Match glob syntax.
func (imc *InMemoryCache) GetByPattern(ctx context.Context, keyPattern string) (map[string]interface{}, error) {
	values := make(map[string]interface{})
	for key, item := range imc.client.Items() {
		matched, err := path.Match(keyPattern, key)
		if err != nil {
			return nil, err
		}
		if matched {
			values[key] = item.Object
		}
	}
	return values, nil
}

// Delete implements Cache.
func (imc *InMemoryCache) Delete(ctx context.Context, key string) error {
	_, found := imc.client.Get(key)
	if found {
		imc.client.Delete(key)
	}
	return nil
}

// Flush drops every key from the cache.
func (imc *InMemoryCache) Flush(ctx context.Context) {
	imc.client.Flush()
}

func getDefaultConfig() *Config {
	return &Config{
		DefaultExpiration: -1,
		CleanupInterval:   -1,
	}
}
