// Package quotecache implements the quote cache port on Redis. Each order's
// ranked quote listing is stored as one JSON value whose TTL matches the
// quotes' validity window, so stale listings age out on their own even if no
// explicit invalidation ever reaches the cache.
package quotecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "quotes:order:"

// RedisQuoteCache caches per-order quote listings in Redis.
type RedisQuoteCache struct {
	client *redis.Client
}

// NewRedisQuoteCache creates a cache backed by the Redis server at addr.
func NewRedisQuoteCache(addr string) *RedisQuoteCache {
	return &RedisQuoteCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// NewRedisQuoteCacheWithClient allows injecting a preconfigured client.
func NewRedisQuoteCacheWithClient(client *redis.Client) *RedisQuoteCache {
	return &RedisQuoteCache{client: client}
}

// quoteEntry is the cached wire form of a single quote.
type quoteEntry struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	VendorID      string    `json:"vendorId"`
	Price         float64   `json:"price"`
	EstimatedDays int       `json:"estimatedDays"`
	IssuedAt      time.Time `json:"issuedAt"`
	ValidUntil    time.Time `json:"validUntil"`
}

// Put stores the ranked listing for an order. The entry expires at validUntil,
// so the cache never outlives the quotes it holds.
func (c *RedisQuoteCache) Put(
	ctx context.Context,
	orderID kernel.UUID,
	quotes []*quote.Quote,
	validUntil time.Time,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	ttl := time.Until(validUntil)
	if ttl <= 0 {
		return nil
	}

	entries := make([]quoteEntry, 0, len(quotes))
	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			return err
		}
		entries = append(entries, quoteEntry{
			ID:            q.ID().String(),
			OrderID:       q.OrderID().String(),
			VendorID:      q.VendorID().String(),
			Price:         q.Price(),
			EstimatedDays: q.EstimatedDays(),
			IssuedAt:      q.IssuedAt(),
			ValidUntil:    q.ValidUntil(),
		})
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode quote listing: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(orderID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache quote listing for order %s: %w", orderID, err)
	}
	return nil
}

// Get retrieves the cached listing for an order. The second return is false
// on a miss. A corrupt entry is treated as a miss after dropping it, so the
// caller falls back to the repository instead of failing the read.
func (c *RedisQuoteCache) Get(ctx context.Context, orderID kernel.UUID) ([]*quote.Quote, bool, error) {
	if err := orderID.Validate(); err != nil {
		return nil, false, err
	}

	payload, err := c.client.Get(ctx, cacheKey(orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read quote listing for order %s: %w", orderID, err)
	}

	var entries []quoteEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		_ = c.client.Del(ctx, cacheKey(orderID)).Err()
		return nil, false, nil
	}

	quotes := make([]*quote.Quote, 0, len(entries))
	for _, entry := range entries {
		q, err := entry.toDomain()
		if err != nil {
			_ = c.client.Del(ctx, cacheKey(orderID)).Err()
			return nil, false, nil
		}
		quotes = append(quotes, q)
	}

	return quotes, true, nil
}

// Invalidate drops the listing for an order.
func (c *RedisQuoteCache) Invalidate(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if err := c.client.Del(ctx, cacheKey(orderID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate quote listing for order %s: %w", orderID, err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (c *RedisQuoteCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisQuoteCache) Close() error {
	return c.client.Close()
}

func (e quoteEntry) toDomain() (*quote.Quote, error) {
	id, err := kernel.UUIDFromString(e.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromString(e.OrderID)
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromString(e.VendorID)
	if err != nil {
		return nil, err
	}

	// Only valid quotes are ever cached; the window check happens in the
	// query handler against the current time.
	return quote.RestoreQuote(
		id, orderID, vendorID,
		e.Price, e.EstimatedDays, quote.Valid,
		e.IssuedAt, e.ValidUntil)
}

func cacheKey(orderID kernel.UUID) string {
	return keyPrefix + orderID.String()
}
