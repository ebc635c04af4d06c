// internal/adapters/redis/redis.go
package redis

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache fronts the ledger for reads. The key layout is flat strings:
// "products" for the catalog, "order:<id>" for one order, "orders:<email>"
// for a user's order list. Order entries carry a short TTL and are also
// invalidated by prefix whenever checkout, reconciliation or a manual
// confirmation writes through; the catalog changes rarely and keeps a
// longer TTL. A cold cache is never an error for callers.
type Cache struct {
	client     *redis.Client
	catalogTTL time.Duration
	orderTTL   time.Duration
}

func NewCache(addr, username, password string, db int, catalogTTL, orderTTL time.Duration) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &Cache{client: client, catalogTTL: catalogTTL, orderTTL: orderTTL}
}

func (c *Cache) ttlFor(key string) time.Duration {
	if strings.HasPrefix(key, "order") {
		return c.orderTTL
	}
	return c.catalogTTL
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttlFor(key)).Err()
}

func (c *Cache) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
