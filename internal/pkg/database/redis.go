package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/internal/pkg/retry"
)

const redisConnectTimeout = 5 * time.Second

// watchRetrier reruns optimistic transactions that lost a race on a watched
// key. Each round has a winner, so the bound only needs to exceed the number
// of writers racing on one key.
var watchRetrier = retry.New("redis-watch", retry.Config{
	MaxRetries:  100,
	BaseDelay:   time.Millisecond,
	MaxDelay:    10 * time.Millisecond,
	Multiplier:  2,
	Jitter:      true,
	IsRetryable: func(err error) bool { return errors.Is(err, redis.TxFailedErr) },
})

// RedisClient wraps go-redis with the JSON, hash and geo operations the
// drivers and cart stores are built on
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient connects and pings Redis
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	r := &RedisClient{Client: client}
	if err := r.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return r, nil
}

// GetClient returns the underlying Redis client
func (r *RedisClient) GetClient() *redis.Client {
	return r.Client
}

// Ping checks the connection; used by the readiness check
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// SetJSON stores value as a JSON document. A zero ttl keeps it forever.
func (r *RedisClient) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return r.Client.Set(ctx, key, data, ttl).Err()
}

// GetJSON decodes the document at key into dest. found is false, and dest
// untouched, when the key does not exist.
func (r *RedisClient) GetJSON(ctx context.Context, key string, dest interface{}) (found bool, err error) {
	data, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// UpdateJSON is an optimistic read-modify-write of the JSON document at key.
// apply gets the stored bytes (nil when the key is missing) and returns the
// replacement document, or nil to delete the key. The read and the write run
// under WATCH; when another client changes key in between, EXEC aborts and
// the whole cycle runs again, so apply must not have side effects. Errors
// returned by apply are passed through unchanged.
func (r *RedisClient) UpdateJSON(ctx context.Context, key string, apply func(current []byte) (interface{}, error)) error {
	return watchRetrier.Execute(ctx, func(ctx context.Context) error {
		return r.Client.Watch(ctx, func(tx *redis.Tx) error {
			current, err := tx.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				current = nil
			} else if err != nil {
				return err
			}

			next, err := apply(current)
			if err != nil {
				return err
			}

			var data []byte
			if next != nil {
				if data, err = json.Marshal(next); err != nil {
					return fmt.Errorf("failed to encode %s: %w", key, err)
				}
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				if data == nil {
					pipe.Del(ctx, key)
					return nil
				}
				pipe.Set(ctx, key, data, 0)
				return nil
			})
			return err
		}, key)
	})
}

// Delete removes a key
func (r *RedisClient) Delete(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

// StoreHash writes hash fields and refreshes the key's expiry in one
// MULTI/EXEC round trip
func (r *RedisClient) StoreHash(ctx context.Context, key string, fields map[string]interface{}, ttl time.Duration) error {
	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields)
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		return nil
	})
	return err
}

// HGetAll reads every field of a hash; a missing key yields an empty map
func (r *RedisClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return r.Client.HGetAll(ctx, key).Result()
}

// GeoAdd places member at the given position in a geo set
func (r *RedisClient) GeoAdd(ctx context.Context, key string, longitude, latitude float64, member string) error {
	return r.Client.GeoAdd(ctx, key, &redis.GeoLocation{
		Longitude: longitude,
		Latitude:  latitude,
		Name:      member,
	}).Err()
}

// GeoRadius returns the members within radius of a point, nearest first,
// with their coordinates and distances
func (r *RedisClient) GeoRadius(ctx context.Context, key string, longitude, latitude float64, radius float64, unit string) ([]redis.GeoLocation, error) {
	return r.Client.GeoRadius(ctx, key, longitude, latitude, &redis.GeoRadiusQuery{
		Radius:    radius,
		Unit:      unit,
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}).Result()
}

// GeoRemove drops members from a geo set
func (r *RedisClient) GeoRemove(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	return r.Client.ZRem(ctx, key, args...).Err()
}

// ExistsEach reports, per key, whether it exists. All keys are checked in
// one pipelined round trip.
func (r *RedisClient) ExistsEach(ctx context.Context, keys ...string) ([]bool, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	cmds := make([]*redis.IntCmd, len(keys))
	_, err := r.Client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, key := range keys {
			cmds[i] = pipe.Exists(ctx, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	exists := make([]bool, len(keys))
	for i, cmd := range cmds {
		exists[i] = cmd.Val() > 0
	}
	return exists, nil
}

// Close closes the Redis client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}
