package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotInitialized is returned when a helper is called before Init or SetClient
var ErrNotInitialized = errors.New("redis client not initialized")

// ErrNil reports a missing key
var ErrNil = redis.Nil

var client *redis.Client

var pingTimeout = 5 * time.Second

var pingClient = func(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// Init parses the connection URL, applies an optional password override and pings the server
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}

	if password != "" {
		opts.Password = password
	}

	c := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := pingClient(ctx, c); err != nil {
		_ = c.Close()
		return err
	}

	client = c
	return nil
}

// SetClient sets the Redis client (used for testing)
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the Redis client
func GetClient() *redis.Client {
	return client
}

// Close releases the shared client
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}

// Ping checks connectivity, used by the health endpoint
func Ping(ctx context.Context) error {
	if client == nil {
		return ErrNotInitialized
	}
	return client.Ping(ctx).Err()
}

// Set stores a key-value pair with expiration
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if client == nil {
		return ErrNotInitialized
	}
	return client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func Get(ctx context.Context, key string) (string, error) {
	if client == nil {
		return "", ErrNotInitialized
	}
	return client.Get(ctx, key).Result()
}

// Del removes a key
func Del(ctx context.Context, key string) error {
	if client == nil {
		return ErrNotInitialized
	}
	return client.Del(ctx, key).Err()
}

// SetNX sets a key only if it does not exist
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	if client == nil {
		return false, ErrNotInitialized
	}
	return client.SetNX(ctx, key, value, expiration).Result()
}
