package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/metinatakli/content-catalog/internal/domain"
	"github.com/metinatakli/content-catalog/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
)

const (
	cacheKeyPrefix = "catalog:"
	cacheBreaker   = "redis-cache"

	// The breaker opens after this many consecutive Redis failures and stays
	// open for breakerTimeout before letting a probe through.
	breakerFailureThreshold = 5
	breakerTimeout          = 30 * time.Second
)

// CachedFacetRepository serves whole-collection aggregates from Redis and
// falls back to the wrapped repository on a miss. Cache failures are logged
// and never fail the read. While the breaker is open Redis is skipped.
type CachedFacetRepository struct {
	next    domain.FacetRepository
	redis   redis.UniversalClient
	ttl     time.Duration
	logger  *slog.Logger
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewCachedFacetRepository(
	next domain.FacetRepository,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger) *CachedFacetRepository {

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        cacheBreaker,
		MaxRequests: 1,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		// A miss is a healthy answer.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("cache circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			metrics.CacheBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})

	return &CachedFacetRepository{
		next:    next,
		redis:   client,
		ttl:     ttl,
		logger:  logger,
		breaker: breaker,
	}
}

func (c *CachedFacetRepository) GetDistinctValues(ctx context.Context, facet domain.Facet) ([]string, error) {
	return readThrough(ctx, c, "facet:"+facet.String(), func(ctx context.Context) ([]string, error) {
		return c.next.GetDistinctValues(ctx, facet)
	})
}

func (c *CachedFacetRepository) GetYearRange(ctx context.Context) (*domain.YearRange, error) {
	return readThrough(ctx, c, "years", c.next.GetYearRange)
}

func (c *CachedFacetRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	return readThrough(ctx, c, "stats", c.next.GetStats)
}

func (c *CachedFacetRepository) get(ctx context.Context, key string) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		return c.redis.Get(ctx, key).Bytes()
	})
}

func (c *CachedFacetRepository) set(ctx context.Context, key string, data []byte) error {
	_, err := c.breaker.Execute(func() ([]byte, error) {
		return nil, c.redis.Set(ctx, key, data, c.ttl).Err()
	})

	return err
}

func readThrough[T any](
	ctx context.Context,
	c *CachedFacetRepository,
	key string,
	load func(context.Context) (T, error)) (T, error) {

	key = cacheKeyPrefix + key

	data, err := c.get(ctx, key)
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			metrics.CacheHits.WithLabelValues(key).Inc()
			return cached, nil
		}
		c.logger.Warn("discarding undecodable cache entry", "key", key)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.logger.Debug("skipping cache", "key", key, "error", err)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("failed to read cache", "key", key, "error", err)
	}

	metrics.CacheMisses.WithLabelValues(key).Inc()

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	data, err = json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to encode cache entry", "key", key, "error", err)
		return value, nil
	}

	err = c.set(ctx, key, data)
	if err != nil {
		c.logger.Warn("failed to write cache", "key", key, "error", err)
	}

	return value, nil
}
