package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marcelsud/lead-router/webhook"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of webhook.ConfigCache
 * Best effort by contract: any Redis failure reads as a miss and the caller
 * falls back to the database
 */

const configKeyPrefix = "webhook:config"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a config cache and verifies the connection
func NewCache(addr, password string, db int, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &Cache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Get returns the cached delivery policy for a rule, or a miss
func (c *Cache) Get(ctx context.Context, ruleID string) (webhook.Config, bool) {
	key := fmt.Sprintf("%s:%s", configKeyPrefix, ruleID)

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return webhook.Config{}, false
	}

	var cfg webhook.Config
	if err := json.Unmarshal([]byte(data), &cfg); err != nil {
		return webhook.Config{}, false
	}

	return cfg, true
}

// Set caches the delivery policy with a TTL
func (c *Cache) Set(ctx context.Context, cfg webhook.Config) {
	key := fmt.Sprintf("%s:%s", configKeyPrefix, cfg.RoutingRuleID)

	data, err := json.Marshal(cfg)
	if err != nil {
		return
	}

	_ = c.client.Set(ctx, key, data, c.ttl).Err()
}

// Invalidate drops the cached policy after an update
func (c *Cache) Invalidate(ctx context.Context, ruleID string) {
	key := fmt.Sprintf("%s:%s", configKeyPrefix, ruleID)
	_ = c.client.Del(ctx, key).Err()
}

// Close releases the Redis connection
func (c *Cache) Close() error {
	return c.client.Close()
}
