package geocoding

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/mmcloughlin/geohash"
	"github.com/redis/go-redis/v9"
)

// reverseGeohashPrecision of 8 characters is a cell of roughly 38m x 19m,
// fine enough that cached place names stay accurate.
const reverseGeohashPrecision = 8

type cachedGeocoder struct {
	next   service.Geocoder
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// WithCache memoizes successful, non-empty lookups in Redis. Cache failures
// are logged and fall through to the provider.
func WithCache(next service.Geocoder, client *redis.Client, ttl time.Duration, logger *slog.Logger) service.Geocoder {
	return &cachedGeocoder{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *cachedGeocoder) Forward(ctx context.Context, query, countryCode string) ([]service.GeocodeResult, error) {
	key := forwardKey(query, countryCode)

	var cached []service.GeocodeResult
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	results, err := c.next.Forward(ctx, query, countryCode)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		c.store(ctx, key, results)
	}

	return results, nil
}

func (c *cachedGeocoder) Reverse(ctx context.Context, point entity.GeoPoint) (string, error) {
	key := reverseKey(point)

	var cached string
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	name, err := c.next.Reverse(ctx, point)
	if err != nil {
		return "", err
	}
	if name != "" {
		c.store(ctx, key, name)
	}

	return name, nil
}

func (c *cachedGeocoder) load(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "geocode cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	return json.Unmarshal(data, dest) == nil
}

func (c *cachedGeocoder) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "geocode cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func forwardKey(query, countryCode string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	sum := sha1.Sum([]byte(normalized))

	return constants.CachePrefixGeocode + ":fwd:" + strings.ToLower(countryCode) + ":" + hex.EncodeToString(sum[:])
}

func reverseKey(point entity.GeoPoint) string {
	return constants.CachePrefixGeocode + ":rev:" + geohash.EncodeWithPrecision(point.Latitude, point.Longitude, reverseGeohashPrecision)
}
