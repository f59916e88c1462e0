package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firsthome/affordability-service/internal/observability"
)

type failingRateProvider struct {
	calls int
}

func (p *failingRateProvider) CurrentRate(_ context.Context) (float64, error) {
	p.calls++
	return 0, fmt.Errorf("upstream unavailable")
}

type countingRateProvider struct {
	rate  float64
	calls int
}

func (p *countingRateProvider) CurrentRate(_ context.Context) (float64, error) {
	p.calls++
	return p.rate, nil
}

// fakeCache is an in-memory port.Cache that ignores TTLs.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func TestCompositeRateProvider_PrefersScrape(t *testing.T) {
	scraper := &countingRateProvider{rate: 6.875}
	ai := &countingRateProvider{rate: 7.0}
	provider := NewCompositeRateProvider(scraper, ai, 7.5, slog.Default())

	rate, err := provider.CurrentRate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6.875, rate)
	assert.Zero(t, ai.calls)
}

func TestCompositeRateProvider_FallsBackToAI(t *testing.T) {
	scraper := &failingRateProvider{}
	ai := &countingRateProvider{rate: 7.0}
	provider := NewCompositeRateProvider(scraper, ai, 7.5, slog.Default())

	rate, err := provider.CurrentRate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7.0, rate)
	assert.Equal(t, 1, scraper.calls)
	assert.Equal(t, 1, ai.calls)
}

func TestCompositeRateProvider_DefaultNeverFails(t *testing.T) {
	provider := NewCompositeRateProvider(&failingRateProvider{}, &failingRateProvider{}, 7.5, slog.Default())

	rate, err := provider.CurrentRate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7.5, rate)
}

func TestCompositeRateProvider_NilAIIsSkipped(t *testing.T) {
	provider := NewCompositeRateProvider(&failingRateProvider{}, nil, 7.5, slog.Default())

	rate, err := provider.CurrentRate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7.5, rate)
}

func TestCompositeRateProvider_CountsResolutionsBySource(t *testing.T) {
	scrape := observability.RateResolutionsTotal.WithLabelValues("scrape")
	def := observability.RateResolutionsTotal.WithLabelValues("default")
	scrapeBefore := testutil.ToFloat64(scrape)
	defBefore := testutil.ToFloat64(def)

	provider := NewCompositeRateProvider(&countingRateProvider{rate: 6.875}, nil, 7.5, slog.Default())
	_, err := provider.CurrentRate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, scrapeBefore+1, testutil.ToFloat64(scrape),
		"a primary-source success counts as a scrape resolution")
	assert.Equal(t, defBefore, testutil.ToFloat64(def),
		"the default source must not tick when the scrape succeeds")
}

func TestCachedRateProvider_CachesUpstreamResolution(t *testing.T) {
	inner := &countingRateProvider{rate: 6.5}
	cache := newFakeCache()
	provider := NewCachedRateProvider(inner, cache)

	first, err := provider.CurrentRate(context.Background())
	require.NoError(t, err)
	second, err := provider.CurrentRate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6.5, first)
	assert.Equal(t, 6.5, second)
	assert.Equal(t, 1, inner.calls, "second hit must come from the cache")
}

func TestCachedRateProvider_IgnoresCorruptEntries(t *testing.T) {
	inner := &countingRateProvider{rate: 6.5}
	cache := newFakeCache()
	require.NoError(t, cache.Set(context.Background(), rateCacheKey, "not-a-rate", 0))

	provider := NewCachedRateProvider(inner, cache)

	rate, err := provider.CurrentRate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6.5, rate)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedRateProvider_PropagatesInnerError(t *testing.T) {
	provider := NewCachedRateProvider(&failingRateProvider{}, newFakeCache())

	_, err := provider.CurrentRate(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve rate")
}
