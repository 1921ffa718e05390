package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"freight-quote-service/internal/domain"
)

const redisKeyPrefix = "resolution:"

// RedisResolutionCache stores postal-code resolutions as JSON values with a
// TTL. A zero TTL means entries never expire.
type RedisResolutionCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisResolutionCache(client *redis.Client, ttl time.Duration) *RedisResolutionCache {
	return &RedisResolutionCache{Client: client, TTL: ttl}
}

type cachedResolution struct {
	Municipality string  `json:"municipality"`
	UF           string  `json:"uf"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	IBGECode     int     `json:"ibge_code,omitempty"`
}

func (r *RedisResolutionCache) Get(
	ctx context.Context,
	postalCode string,
) (domain.DestinationResolution, bool, error) {
	raw, err := r.Client.Get(ctx, redisKeyPrefix+postalCode).Result()
	if errors.Is(err, redis.Nil) {
		return domain.DestinationResolution{}, false, nil
	}
	if err != nil {
		return domain.DestinationResolution{}, false, fmt.Errorf("get resolution cache: %w", err)
	}

	var entry cachedResolution
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.DestinationResolution{}, false, fmt.Errorf("get resolution cache: decode: %w", err)
	}

	return domain.DestinationResolution{
		Municipality: entry.Municipality,
		UF:           entry.UF,
		Location:     domain.Coordinate{Lat: entry.Lat, Lon: entry.Lon},
		IBGECode:     entry.IBGECode,
	}, true, nil
}

func (r *RedisResolutionCache) Put(
	ctx context.Context,
	postalCode string,
	res domain.DestinationResolution,
) error {
	if postalCode == "" {
		return errors.New("insert resolution cache: empty postal code key")
	}

	payload, err := json.Marshal(cachedResolution{
		Municipality: res.Municipality,
		UF:           res.UF,
		Lat:          res.Location.Lat,
		Lon:          res.Location.Lon,
		IBGECode:     res.IBGECode,
	})
	if err != nil {
		return fmt.Errorf("insert resolution cache: encode: %w", err)
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+postalCode, payload, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert resolution cache postal_code=%q: %w", postalCode, err)
	}

	return nil
}
