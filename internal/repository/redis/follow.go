package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/repository/cache"
)

const (
	KeyUserFollowing = "follow:user:%d:following"

	// physical TTL is a multiple of the logical one so stale data can still be served
	physicalTTLFactor = 6
)

type followCache struct {
	client *redis.Client
	now    func() time.Time
}

var _ domain.FollowCache = (*followCache)(nil)

func NewFollowCache(client *redis.Client) *followCache {
	return &followCache{
		client: client,
		now:    time.Now,
	}
}

func (c *followCache) GetFollowing(ctx context.Context, uid int64) ([]int64, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyUserFollowing, uid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var entry cache.DataWithLogicalExpire[[]int64]
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, err
	}
	if entry.Data == nil {
		entry.Data = []int64{}
	}
	return entry.Data, entry.IsLogicalExpired(c.now()), nil
}

func (c *followCache) SetFollowing(ctx context.Context, uid int64, ids []int64, ttl time.Duration) error {
	if ids == nil {
		ids = []int64{}
	}
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(ids, c.now(), ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyUserFollowing, uid), string(data), ttl*physicalTTLFactor).Err()
}

func (c *followCache) DeleteFollowing(ctx context.Context, uid int64) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyUserFollowing, uid)).Err()
}
