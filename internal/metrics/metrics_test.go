package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordFetchCounts(t *testing.T) {
	r := NewRecorder()
	r.RecordFetch("club", 10*time.Millisecond, nil)
	r.RecordFetch("club", 20*time.Millisecond, errors.New("boom"))
	r.RecordFetch("match", time.Millisecond, nil)

	snap := r.Snapshot("club")
	if snap.Attempts != 2 || snap.Errors != 1 {
		t.Fatalf("club snapshot = %+v", snap)
	}
	if snap.LastCallLatency != 20*time.Millisecond {
		t.Fatalf("latency = %v", snap.LastCallLatency)
	}
	if got := r.FetchAttempts("match"); got != 1 {
		t.Fatalf("match attempts = %d", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	r := NewRecorder()
	r.RecordCacheLookup("player", true)
	r.RecordCacheLookup("player", true)
	r.RecordCacheLookup("player", false)

	snap := r.Snapshot("player")
	if snap.CacheHits != 2 || snap.CacheMisses != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if got := r.CacheHits("player"); got != 2 {
		t.Fatalf("CacheHits = %d", got)
	}
}

func TestRecordScrape(t *testing.T) {
	r := NewRecorder()
	r.RecordScrape(time.Second, 5, nil)
	r.RecordScrape(time.Second, 0, errors.New("403"))

	count, errs := r.Scrapes()
	if count != 2 || errs != 1 {
		t.Fatalf("scrapes = (%d, %d)", count, errs)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordFetch("club", time.Second, nil)
	r.RecordCacheLookup("club", true)
	r.RecordScrape(time.Second, 0, nil)
	r.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if snap := r.Snapshot("club"); snap.Attempts != 0 {
		t.Fatalf("nil recorder snapshot = %+v", snap)
	}
	if count, errs := r.Scrapes(); count != 0 || errs != 0 {
		t.Fatal("nil recorder reported scrapes")
	}
}

func TestSnapshotUnknownKind(t *testing.T) {
	r := NewRecorder()
	if snap := r.Snapshot("never-seen"); snap != (Snapshot{}) {
		t.Fatalf("snapshot = %+v", snap)
	}
}
