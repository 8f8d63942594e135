package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"studio/src/models"
	"time"

	"github.com/redis/go-redis/v9"
)

const AVAILABILITY_CACHE_KEY = "availability:windows"

// WindowCache holds the full window list served by GET /availability.
type WindowCache interface {
	Get(ctx context.Context) ([]models.AvailabilityWindow, bool)
	Set(ctx context.Context, windows []models.AvailabilityWindow)
	Invalidate(ctx context.Context)
}

type NopCache struct{}

func (NopCache) Get(context.Context) ([]models.AvailabilityWindow, bool) { return nil, false }
func (NopCache) Set(context.Context, []models.AvailabilityWindow)        {}
func (NopCache) Invalidate(context.Context)                              {}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(c *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: c, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) ([]models.AvailabilityWindow, bool) {
	raw, err := c.client.Get(ctx, AVAILABILITY_CACHE_KEY).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Printf("[redis] Error reading availability cache: %s\n", err.Error())
		return nil, false
	}
	var windows []models.AvailabilityWindow
	if err := json.Unmarshal(raw, &windows); err != nil {
		log.Printf("[redis] Discarding unreadable availability cache: %s\n", err.Error())
		return nil, false
	}
	return windows, true
}

func (c *RedisCache) Set(ctx context.Context, windows []models.AvailabilityWindow) {
	raw, err := json.Marshal(windows)
	if err != nil {
		log.Printf("Error encoding availability cache: %s\n", err.Error())
		return
	}
	if err := c.client.Set(ctx, AVAILABILITY_CACHE_KEY, raw, c.ttl).Err(); err != nil {
		log.Printf("[redis] Error updating availability cache: %s\n", err.Error())
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, AVAILABILITY_CACHE_KEY).Err(); err != nil {
		log.Printf("[redis] Error invalidating availability cache: %s\n", err.Error())
	}
}
