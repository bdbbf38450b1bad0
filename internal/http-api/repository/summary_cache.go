package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"locallibrary/internal/http-api/models"

	"github.com/redis/go-redis/v9"
)

const summaryKey = "catalog:summary"

// SummaryCache keeps the catalog landing-page counters in a redis hash.
// A nil *SummaryCache is a valid no-op cache that always misses.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache connects to redisURL (redis://host:port/db) and verifies the connection.
func NewSummaryCache(redisURL, password string, ttl time.Duration) (*SummaryCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SummaryCache{client: rdb, ttl: ttl}, nil
}

// Get returns nil, nil on a miss.
func (c *SummaryCache) Get(ctx context.Context) (*models.CatalogSummary, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	fields, err := c.client.HGetAll(ctx, summaryKey).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	var s models.CatalogSummary
	for name, target := range map[string]*int64{
		"books":               &s.Books,
		"instances":           &s.Instances,
		"instances_available": &s.InstancesAvailable,
		"authors":             &s.Authors,
		"genres":              &s.Genres,
	} {
		v, err := strconv.ParseInt(fields[name], 10, 64)
		if err != nil {
			// partially written hash, treat as a miss
			return nil, nil
		}
		*target = v
	}
	return &s, nil
}

func (c *SummaryCache) Set(ctx context.Context, s *models.CatalogSummary) error {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return nil
	}

	fields := map[string]any{
		"books":               s.Books,
		"instances":           s.Instances,
		"instances_available": s.InstancesAvailable,
		"authors":             s.Authors,
		"genres":              s.Genres,
	}

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, summaryKey, fields)
	pipe.Expire(ctx, summaryKey, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *SummaryCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, summaryKey).Err()
}

func (c *SummaryCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
