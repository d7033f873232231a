package currency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedSource caches ratios of a wrapped source in redis for a fixed TTL.
// A failed cache write never fails the lookup.
type CachedSource struct {
	client *redis.Client
	source RatioSource
	ttl    time.Duration
}

// NewCachedSource returns new CachedSource wrapping provided source.
func NewCachedSource(client *redis.Client, source RatioSource, ttl time.Duration) *CachedSource {
	return &CachedSource{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

// Ratio returns the cached ratio for provided currency, falling back to
// the wrapped source on a cache miss.
func (s *CachedSource) Ratio(ctx context.Context, currency string) (float64, error) {
	key := ratioKey(currency)

	cached, err := s.client.Get(ctx, key).Float64()
	if err == nil {
		return cached, nil
	}

	ratio, err := s.source.Ratio(ctx, currency)
	if err != nil {
		return 0, err
	}

	_ = s.client.Set(ctx, key, ratio, s.ttl).Err()

	return ratio, nil
}

func ratioKey(currency string) string {
	return fmt.Sprintf("exchange-ratio:%s", currency)
}
