// Package cache provides the drivers used to keep serialized resource
// snapshots between runs of a consuming layer. Values are JSON text produced
// by the resource views in pkg/models.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/sumitmcc/webexteamssdk/pkg/cache/inmemory"
	"github.com/sumitmcc/webexteamssdk/pkg/cache/redis"
)

var (
	// ErrInvalidCacheDriver is returned when an unknown cache driver is
	// configured
	ErrInvalidCacheDriver = errors.New("invalid cache driver")
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"

	NoExpiration = -1 * time.Second
)

// Cache implements a generic interface for cache clients
type Cache interface {
	// Get returns the value for the given key
	// returns an error if the key was not found
	Get(ctx context.Context, key string) (interface{}, error)

	// GetByPattern returns all key/value pairs whose keys match the glob
	// pattern
	GetByPattern(ctx context.Context, keyPattern string) (map[string]interface{}, error)

	// Set stores the value under the given key with a TTL
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes the value for the given key
	Delete(ctx context.Context, key string) error
}

// Config is the configuration for the cache client
type Config struct {
	// Driver is the type of cache client
	Driver string

	// InMemory is the configuration for the inmemory cache client
	InMemory *inmemory.Config

	// Redis is the configuration for the redis client
	Redis *redis.Config
}

// New returns a new cache client
func New(config *Config) (Cache, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	switch config.Driver {
	case DriverMemory:
		return inmemory.NewCache(config.InMemory)
	case DriverRedis:
		return redis.NewCache(config.Redis)
	default:
		return nil, ErrInvalidCacheDriver
	}
}
