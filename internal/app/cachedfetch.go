package app

import (
	"context"
	"encoding/json"
	"time"

	"chess-league-service/internal/cache"
	"chess-league-service/internal/metrics"
)

// Fetcher defines how raw payloads are fetched from the upstream API.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) (json.RawMessage, error)
}

// CachedFetcher memoizes Fetcher calls through the shared cache store under a
// fixed resource kind. The kind selects which version counter participates in
// the cache key.
type CachedFetcher struct {
	fetcher Fetcher
	cache   *cache.Store
	kind    string
	metrics *metrics.Recorder
}

// NewCachedFetcher wires a fetcher to the cache store for one resource kind.
func NewCachedFetcher(fetcher Fetcher, store *cache.Store, kind string, recorder *metrics.Recorder) *CachedFetcher {
	return &CachedFetcher{
		fetcher: fetcher,
		cache:   store,
		kind:    kind,
		metrics: recorder,
	}
}

// Kind returns the resource kind this fetcher caches under.
func (f *CachedFetcher) Kind() string {
	return f.kind
}

// Payload returns the cached payload for endpoint, fetching on a miss.
// When refresh is set, the kind's version counter is bumped first, which
// invalidates every live entry of this kind regardless of TTL.
func (f *CachedFetcher) Payload(ctx context.Context, endpoint string, refresh bool) (json.RawMessage, error) {
	if refresh {
		f.cache.Bump(f.kind)
	}
	version := f.cache.Version(f.kind)

	if payload, ok := f.cache.Get(endpoint, version); ok {
		f.metrics.RecordCacheLookup(f.kind, true)
		return payload, nil
	}
	f.metrics.RecordCacheLookup(f.kind, false)

	start := time.Now()
	payload, err := f.fetcher.Fetch(ctx, endpoint)
	f.metrics.RecordFetch(f.kind, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	f.cache.Set(endpoint, version, payload)
	return payload, nil
}
