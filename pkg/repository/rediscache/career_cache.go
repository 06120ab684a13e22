package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"careerpath/pkg/career"
)

const (
	catalogKey = "careerpath:catalog"
	catalogTTL = 10 * time.Minute
)

// CareerCache is a read-through cache over a career.Repository. The
// catalog is read-mostly, so full-list reads are cached with a TTL and
// busted on ReplaceAll. Only the catalog is cached here; model replies
// never are.
type CareerCache struct {
	inner career.Repository
	rdb   *redis.Client
}

func NewCareerCache(inner career.Repository, rdb *redis.Client) *CareerCache {
	return &CareerCache{inner: inner, rdb: rdb}
}

func (c *CareerCache) ListAll(ctx context.Context) ([]career.Career, error) {
	if data, err := c.rdb.Get(ctx, catalogKey).Bytes(); err == nil {
		var res []career.Career
		if json.Unmarshal(data, &res) == nil {
			return res, nil
		}
	}
	res, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(res); err == nil {
		// cache write failures are not fatal for a read path
		_ = c.rdb.Set(ctx, catalogKey, data, catalogTTL).Err()
	}
	return res, nil
}

func (c *CareerCache) Names(ctx context.Context) ([]string, error) {
	all, err := c.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for _, cr := range all {
		names = append(names, cr.CareerName)
	}
	return names, nil
}

func (c *CareerCache) GetByNames(ctx context.Context, names []string) ([]career.Career, error) {
	return c.inner.GetByNames(ctx, names)
}

func (c *CareerCache) ReplaceAll(ctx context.Context, careers []career.Career) error {
	if err := c.inner.ReplaceAll(ctx, careers); err != nil {
		return err
	}
	return c.rdb.Del(ctx, catalogKey).Err()
}
