package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"Hostess/internal/dto"

	"github.com/redis/go-redis/v9"
)

const (
	keyBoard  = "board:"
	keySearch = "board:search:"
)

// BoardCache caches projected table views per date and per search query in
// Redis. Any write to the item store invalidates everything — the board is
// cheap to rebuild and the dataset is restaurant-sized.
type BoardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewBoardCache returns a new BoardCache.
func NewBoardCache(rdb *redis.Client, ttl time.Duration) *BoardCache {
	return &BoardCache{rdb: rdb, ttl: ttl}
}

// GetBoard returns the cached table views for the date, or nil on miss.
func (c *BoardCache) GetBoard(ctx context.Context, date string) ([]dto.TableView, error) {
	return c.get(ctx, keyBoard+date)
}

// SetBoard stores the table views for the date.
func (c *BoardCache) SetBoard(ctx context.Context, date string, tables []dto.TableView) error {
	return c.set(ctx, keyBoard+date, tables)
}

// GetSearch returns the cached filtered views for query q, or nil on miss.
func (c *BoardCache) GetSearch(ctx context.Context, q string) ([]dto.TableView, error) {
	return c.get(ctx, keySearch+normalizeQuery(q))
}

// SetSearch stores the filtered views for query q.
func (c *BoardCache) SetSearch(ctx context.Context, q string, tables []dto.TableView) error {
	return c.set(ctx, keySearch+normalizeQuery(q), tables)
}

// InvalidateAll removes every board and search key (cache invalidation on write).
func (c *BoardCache) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyBoard+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *BoardCache) get(ctx context.Context, key string) ([]dto.TableView, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var tables []dto.TableView
	if err := json.Unmarshal(b, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *BoardCache) set(ctx context.Context, key string, tables []dto.TableView) error {
	b, err := json.Marshal(tables)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func normalizeQuery(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
