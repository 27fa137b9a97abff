package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin redis wrapper used for the planner rating aggregate and
// for memoizing AI responses. All methods are best-effort; a nil Cache or a
// redis failure just means a miss.
type Cache struct {
	client *redis.Client
}

// NewCache connects to redis. An empty URL disables caching and returns
// a nil Cache.
func NewCache(redisURL string) (*Cache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &Cache{client: client}, nil
}

type plannerAggregate struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}

// SetPlannerAggregate stores the recomputed rating aggregate for a planner.
func (c *Cache) SetPlannerAggregate(ctx context.Context, plannerID uint, avg float64, total int) {
	if c == nil {
		return
	}
	data, err := json.Marshal(plannerAggregate{AverageRating: avg, TotalRatings: total})
	if err != nil {
		return
	}
	key := fmt.Sprintf("planner:rating:%d", plannerID)
	c.client.Set(ctx, key, data, time.Hour)
}

// GetPlannerAggregate returns the cached aggregate, if any.
func (c *Cache) GetPlannerAggregate(ctx context.Context, plannerID uint) (avg float64, total int, ok bool) {
	if c == nil {
		return 0, 0, false
	}
	key := fmt.Sprintf("planner:rating:%d", plannerID)
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return 0, 0, false
	}

	var agg plannerAggregate
	if err := json.Unmarshal([]byte(data), &agg); err != nil {
		return 0, 0, false
	}
	return agg.AverageRating, agg.TotalRatings, true
}

// InvalidatePlanner drops the cached aggregate for a planner.
func (c *Cache) InvalidatePlanner(ctx context.Context, plannerID uint) {
	if c == nil {
		return
	}
	c.client.Del(ctx, fmt.Sprintf("planner:rating:%d", plannerID))
}

// SetAIResponse memoizes one generated AI response.
func (c *Cache) SetAIResponse(ctx context.Context, key, text string) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key, text, time.Hour)
}

// GetAIResponse returns a memoized AI response, if any.
func (c *Cache) GetAIResponse(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	text, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return text, true
}
