package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContentCache holds serialized content lists keyed by content type. Reads go
// cache-first, mutations invalidate the key.
type ContentCache struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewContentCache(client *redis.Client, ttl time.Duration) *ContentCache {
	return &ContentCache{
		client: client,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

func (c *ContentCache) SetList(contentType string, items interface{}) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return c.client.Set(c.ctx, "content:"+contentType, data, c.ttl).Err()
}

func (c *ContentCache) GetList(contentType string, dest interface{}) error {
	data, err := c.client.Get(c.ctx, "content:"+contentType).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

func (c *ContentCache) Invalidate(contentType string) error {
	return c.client.Del(c.ctx, "content:"+contentType).Err()
}
