package cache

import (
	"encoding/json"
	"sync"
	"time"
)

const defaultTTL = time.Hour

// Kinds of logical resources carrying an independent version counter.
const (
	KindClub   = "club"
	KindMatch  = "match"
	KindPlayer = "player"
)

// Kinds returns every logical resource kind with its own version counter.
func Kinds() []string {
	return []string{KindClub, KindMatch, KindPlayer}
}

type entryKey struct {
	endpoint string
	version  int
}

type entry struct {
	payload  json.RawMessage
	storedAt time.Time
}

// Store memoizes fetched payloads keyed by (endpoint, version) for a fixed
// TTL window. Version counters are the manual escape hatch: bumping a kind's
// counter changes the key every accessor uses, forcing fresh fetches without
// touching unexpired entries of other kinds. TTL expiry and version bumps are
// orthogonal; neither disables the other.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	entries  map[entryKey]entry
	versions map[string]int

	hits      uint64
	misses    uint64
	evictions uint64
}

// New constructs a Store. A non-positive ttl falls back to one hour.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[entryKey]entry),
		versions: make(map[string]int),
	}
}

// Get returns the cached payload for (endpoint, version) if it exists and has
// not expired. Expired entries are dropped on access.
func (s *Store) Get(endpoint string, version int) (json.RawMessage, bool) {
	key := entryKey{endpoint: endpoint, version: version}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		s.misses++
		return nil, false
	}
	if s.now().Sub(e.storedAt) >= s.ttl {
		delete(s.entries, key)
		s.evictions++
		s.misses++
		return nil, false
	}
	s.hits++
	return e.payload, true
}

// Set stores a payload under (endpoint, version), superseding any previous
// entry. Entries are never deleted explicitly; they age out or get replaced.
func (s *Store) Set(endpoint string, version int, payload json.RawMessage) {
	key := entryKey{endpoint: endpoint, version: version}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{payload: payload, storedAt: s.now()}
}

// Version returns the current version counter for a resource kind.
func (s *Store) Version(kind string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions[kind]
}

// Bump increments the version counter for a resource kind and returns the new
// value. Subsequent fetches of that kind bypass every existing cache entry.
func (s *Store) Bump(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions[kind]++
	return s.versions[kind]
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	Entries   int            `json:"entries"`
	Hits      uint64         `json:"hits"`
	Misses    uint64         `json:"misses"`
	Evictions uint64         `json:"evictions"`
	Versions  map[string]int `json:"versions"`
}

// Snapshot returns current cache statistics.
func (s *Store) Snapshot() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions := make(map[string]int, len(s.versions))
	for kind, v := range s.versions {
		versions[kind] = v
	}
	return Stats{
		Entries:   len(s.entries),
		Hits:      s.hits,
		Misses:    s.misses,
		Evictions: s.evictions,
		Versions:  versions,
	}
}
