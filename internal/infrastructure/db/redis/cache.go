package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

const (
	listingTTL    = 5 * time.Minute
	listingPrefix = "products:"
)

// ListingCache implements ports.ProductCache on Redis. Listings are stored
// as JSON under a shared key prefix so Purge can drop them all with one
// SCAN pass.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get returns the cached listing for key, or (nil, nil) on a miss.
func (c *ListingCache) Get(ctx context.Context, key string) ([]domain.Product, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("listing cache decode: %w", err)
	}
	// An empty cached listing must still count as a hit.
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (c *ListingCache) Set(ctx context.Context, key string, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("listing cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, listingTTL).Err(); err != nil {
		return fmt.Errorf("listing cache set: %w", err)
	}
	return nil
}

// Purge deletes every cached listing.
func (c *ListingCache) Purge(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, listingPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("listing cache purge: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("listing cache purge: %w", err)
	}
	return nil
}
