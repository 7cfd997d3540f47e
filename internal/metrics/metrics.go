package metrics

import (
	"sync"
	"time"
)

// Attribute keys shared between in-memory stats and OTel instruments.
const (
	AttrMethod = "method"
	AttrPath   = "path"
	AttrStatus = "status"
	AttrKind   = "kind"
	AttrCache  = "cache"
)

type fetchStats struct {
	attempts        int
	errors          int
	cacheHits       int
	cacheMisses     int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches and
// scrapes. It is intentionally simple so it can be swapped for a real backend
// later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*fetchStats

	scrapeCount  int
	scrapeErrors int

	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*fetchStats),
		otel:  otel,
	}
}

// RecordFetch tracks one API fetch attempt for a resource kind, including the
// latency of the upstream call.
func (r *Recorder) RecordFetch(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(kind)
	r.mu.Lock()
	stats.attempts++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(kind, duration, err)
	}
}

// RecordCacheLookup tracks whether a cached accessor was served from memory.
func (r *Recorder) RecordCacheLookup(kind string, hit bool) {
	if r == nil {
		return
	}

	stats := r.ensureStats(kind)
	r.mu.Lock()
	if hit {
		stats.cacheHits++
	} else {
		stats.cacheMisses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(kind, hit)
	}
}

// RecordScrape tracks one forum page scrape and how many IDs it yielded.
func (r *Recorder) RecordScrape(duration time.Duration, count int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.scrapeCount++
	if err != nil {
		r.scrapeErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordScrape(duration, count, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one resource kind.
type Snapshot struct {
	Attempts        int
	Errors          int
	CacheHits       int
	CacheMisses     int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(kind string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[kind]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Attempts:        stats.attempts,
		Errors:          stats.errors,
		CacheHits:       stats.cacheHits,
		CacheMisses:     stats.cacheMisses,
		LastCallLatency: stats.lastCallLatency,
	}
}

// FetchAttempts returns the total fetch attempts recorded for a kind.
func (r *Recorder) FetchAttempts(kind string) int {
	return r.Snapshot(kind).Attempts
}

// FetchErrors returns the total failed fetches recorded for a kind.
func (r *Recorder) FetchErrors(kind string) int {
	return r.Snapshot(kind).Errors
}

// CacheHits returns the cache hits recorded for a kind.
func (r *Recorder) CacheHits(kind string) int {
	return r.Snapshot(kind).CacheHits
}

// Scrapes returns the number of scrape attempts and how many failed.
func (r *Recorder) Scrapes() (count, errors int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scrapeCount, r.scrapeErrors
}

func (r *Recorder) ensureStats(kind string) *fetchStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[kind]
	if !ok {
		stats = &fetchStats{}
		r.stats[kind] = stats
	}
	return stats
}
