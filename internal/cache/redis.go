package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kvbuilders/app/internal/model"
)

const (
	// dedupKeyPrefix is followed by the normalized email address.
	dedupKeyPrefix = "inquiry:"

	// listingKey is the singleton slot for the admin listing snapshot.
	listingKey = "admin:inquiries"
)

type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) LastSubmission(ctx context.Context, email string) (time.Time, error) {
	raw, err := c.rdb.Get(ctx, dedupKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get dedup marker: %w", err)
	}

	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode dedup marker for %s: %w", email, err)
	}
	return at.UTC(), nil
}

func (c *RedisCache) MarkSubmitted(ctx context.Context, email string, at time.Time, ttl time.Duration) error {
	val := at.UTC().Format(time.RFC3339Nano)
	if err := c.rdb.Set(ctx, dedupKeyPrefix+email, val, ttl).Err(); err != nil {
		return fmt.Errorf("set dedup marker: %w", err)
	}
	return nil
}

func (c *RedisCache) Listing(ctx context.Context) ([]model.Inquiry, error) {
	raw, err := c.rdb.Get(ctx, listingKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get listing snapshot: %w", err)
	}

	var out []model.Inquiry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode listing snapshot: %w", err)
	}
	if out == nil {
		out = []model.Inquiry{}
	}
	return out, nil
}

func (c *RedisCache) StoreListing(ctx context.Context, inquiries []model.Inquiry, ttl time.Duration) error {
	if inquiries == nil {
		inquiries = []model.Inquiry{}
	}
	b, err := json.Marshal(inquiries)
	if err != nil {
		return fmt.Errorf("encode listing snapshot: %w", err)
	}
	if err := c.rdb.Set(ctx, listingKey, b, ttl).Err(); err != nil {
		return fmt.Errorf("set listing snapshot: %w", err)
	}
	return nil
}

func (c *RedisCache) DropListing(ctx context.Context) error {
	if err := c.rdb.Del(ctx, listingKey).Err(); err != nil {
		return fmt.Errorf("delete listing snapshot: %w", err)
	}
	return nil
}
