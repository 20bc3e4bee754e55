package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	otredis "github.com/opentracing-contrib/goredis"
)

// Config holds all required info for initializing the redis driver
type Config struct {
	Host     string
	Port     string
	Database int32
	Password string
}

// RedisCache keeps snapshots in a redis instance so they survive process
// restarts and can be shared between consumers.
type RedisCache struct {
	client otredis.Client
}

// NewCache inits a RedisCache instance and verifies the connection.
func NewCache(config *Config) (*RedisCache, error) {
	if config == nil {
		config = getDefaultConfig()
	}

	addr := fmt.Sprintf("%s:%s", config.Host, config.Port)
	options := &redis.UniversalOptions{
		Addrs:    []string{addr},
		Password: config.Password,
		DB:       int(config.Database),
	}

	rc := RedisCache{
		client: otredis.Wrap(redis.NewUniversalClient(options)),
	}

	if _, err := rc.client.Ping().Result(); err != nil {
		return nil, fmt.Errorf("ping failed: %w", err)
	}

	return &rc, nil
}

func getDefaultConfig() *Config {
	return &Config{
		Host:     "localhost",
		Port:     "6379",
		Database: 0,
		Password: "",
	}
}

// Set implements Cache.
func (rc *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return rc.client.WithContext(ctx).Set(key, value, ttl).Err()
}

// Get implements Cache.
func (rc *RedisCache) Get(ctx context.Context, key string) (interface{}, error) {
	val, err := rc.client.WithContext(ctx).Get(key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// GetByPattern implements Cache. Keys are collected with SCAN and fetched in
// a single MGET round trip.
func (rc *RedisCache) GetByPattern(ctx context.Context, keyPattern string) (map[string]interface{}, error) {
	var keys []string
	iter := rc.client.WithContext(ctx).Scan(0, keyPattern, 0).Iterator()
	for iter.Next() {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return make(map[string]interface{}), nil
	}

	vals, err := rc.client.WithContext(ctx).MGet(keys...).Result()
	if err != nil {
		return nil, err
	}

	values := make(map[string]interface{}, len(keys))
	for i, key := range keys {
		// nil values are keys that expired between SCAN and MGET
		if vals[i] != nil {
			values[key] = vals[i]
		}
	}

	return values, nil
}

// Delete implements Cache.
func (rc *RedisCache) Delete(ctx context.Context, key string) error {
	return rc.client.WithContext(ctx).Del(key).Err()
}

// Disconnect closes the connection to the redis server.
func (rc *RedisCache) Disconnect() error {
	return rc.client.Close()
}
