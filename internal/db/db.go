package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// opTimeout bounds every store call so a slow or unreachable Redis
// cannot stall a request indefinitely.
const opTimeout = 5 * time.Second

// DB wraps a Redis connection as a plain key-value store.
type DB struct {
	rdb *redis.Client
}

// Open connects to Redis at addr using the given logical database and
// verifies the connection with a ping.
func Open(addr string, database int) (*DB, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}

	return &DB{rdb: rdb}, nil
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	return d.rdb.Close()
}

// Get returns the value stored at key. The second return value reports
// whether the key exists.
func (d *DB) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	value, err := d.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value at key. Writes are durable as soon as the call returns.
func (d *DB) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := d.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("setting key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (d *DB) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := d.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// Keys returns all keys matching the glob pattern.
func (d *DB) Keys(ctx context.Context, pattern string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	keys, err := d.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, fmt.Errorf("listing keys %q: %w", pattern, err)
	}
	return keys, nil
}

// Flush clears the entire logical database. Only used from test setup,
// never from request paths.
func (d *DB) Flush(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := d.rdb.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("flushing database: %w", err)
	}
	return nil
}
