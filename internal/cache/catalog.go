package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/petshopco/petshop-backend/internal/config"
)

const (
	KeyServices      = "catalog:services"
	KeyVeterinarians = "catalog:veterinarians"
)

const catalogTTL = 5 * time.Minute

// NewClient connects to redis when configured. A missing or unreachable
// redis disables caching instead of failing startup; the catalog
// endpoints just read the database directly.
func NewClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		zap.L().Warn("redis unreachable, catalog cache disabled", zap.Error(err))
		return nil
	}

	return client
}

// Catalog caches the public services/veterinarians listings only.
// Availability and appointments are never cached; every query reads
// live state.
type Catalog struct {
	client *redis.Client
}

func NewCatalog(client *redis.Client) *Catalog {
	return &Catalog{client: client}
}

func (c *Catalog) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}

	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(b, dest) == nil
}

func (c *Catalog) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}

	b, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, b, catalogTTL).Err(); err != nil {
		zap.L().Warn("catalog cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Catalog) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		zap.L().Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
