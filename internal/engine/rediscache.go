package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/keyxmakerx/almanac/internal/calendars"
)

// redisCacheTimeout bounds each cache round trip so a slow Redis never
// stalls a conversion; a miss just means re-deriving the year.
const redisCacheTimeout = 2 * time.Second

// RedisYearCache stores derived Chinese year tables in Redis so multiple
// instances share one derivation. Entries are pure functions of the year
// number and are written without expiry. Every Redis failure degrades to a
// cache miss.
type RedisYearCache struct {
	client *redis.Client
	prefix string
}

// NewRedisYearCache creates a year cache over an established Redis client.
func NewRedisYearCache(client *redis.Client) *RedisYearCache {
	return &RedisYearCache{client: client, prefix: "almanac:chinese:year:"}
}

func (c *RedisYearCache) key(year int) string {
	return fmt.Sprintf("%s%d", c.prefix, year)
}

// Get fetches a cached year table. Any error (including a plain miss) is
// reported as absence.
func (c *RedisYearCache) Get(year int) (*calendars.ChineseYear, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisCacheTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, c.key(year)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("redis year cache get failed",
				slog.Int("year", year),
				slog.Any("error", err),
			)
		}
		return nil, false
	}

	var rec calendars.ChineseYear
	if err := json.Unmarshal(raw, &rec); err != nil {
		slog.Warn("redis year cache holds malformed entry",
			slog.Int("year", year),
			slog.Any("error", err),
		)
		return nil, false
	}
	return &rec, true
}

// Put stores a derived year table. Best effort: failures are logged and
// dropped, the in-process derivation already succeeded.
func (c *RedisYearCache) Put(year int, rec *calendars.ChineseYear) {
	raw, err := json.Marshal(rec)
	if err != nil {
		slog.Warn("redis year cache marshal failed",
			slog.Int("year", year),
			slog.Any("error", err),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisCacheTimeout)
	defer cancel()

	if err := c.client.Set(ctx, c.key(year), raw, 0).Err(); err != nil {
		slog.Warn("redis year cache put failed",
			slog.Int("year", year),
			slog.Any("error", err),
		)
	}
}
