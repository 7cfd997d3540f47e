package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"chess-league-service/internal/cache"
	"chess-league-service/internal/metrics"
)

type countingFetcher struct {
	calls   int
	payload json.RawMessage
	err     error
}

func (f *countingFetcher) Fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func TestPayloadMemoizesByEndpoint(t *testing.T) {
	fetcher := &countingFetcher{payload: json.RawMessage(`{"a":1}`)}
	store := cache.New(time.Hour)
	cf := NewCachedFetcher(fetcher, store, cache.KindClub, metrics.NewRecorder())

	for i := 0; i < 3; i++ {
		payload, err := cf.Payload(context.Background(), "club/martinique", false)
		if err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
		if string(payload) != `{"a":1}` {
			t.Fatalf("call %d payload = %s", i, payload)
		}
	}
	if fetcher.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", fetcher.calls)
	}
}

func TestPayloadDistinctEndpointsFetchSeparately(t *testing.T) {
	fetcher := &countingFetcher{payload: json.RawMessage(`{}`)}
	store := cache.New(time.Hour)
	cf := NewCachedFetcher(fetcher, store, cache.KindClub, metrics.NewRecorder())

	cf.Payload(context.Background(), "club/a", false)
	cf.Payload(context.Background(), "club/b", false)
	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
}

func TestPayloadRefreshBumpsVersion(t *testing.T) {
	fetcher := &countingFetcher{payload: json.RawMessage(`{}`)}
	store := cache.New(time.Hour)
	cf := NewCachedFetcher(fetcher, store, cache.KindMatch, metrics.NewRecorder())

	cf.Payload(context.Background(), "match/1", false)
	cf.Payload(context.Background(), "match/1", true)
	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
	if store.Version(cache.KindMatch) != 1 {
		t.Fatalf("version = %d, want 1", store.Version(cache.KindMatch))
	}

	// Other kinds keep their counters.
	if store.Version(cache.KindClub) != 0 {
		t.Fatal("club version bumped by match refresh")
	}
}

func TestPayloadErrorNotCached(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("boom")}
	store := cache.New(time.Hour)
	recorder := metrics.NewRecorder()
	cf := NewCachedFetcher(fetcher, store, cache.KindPlayer, recorder)

	if _, err := cf.Payload(context.Background(), "player/x/matches", false); err == nil {
		t.Fatal("expected error")
	}
	if _, err := cf.Payload(context.Background(), "player/x/matches", false); err == nil {
		t.Fatal("expected error on second call")
	}
	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2 (errors must not cache)", fetcher.calls)
	}
	if got := recorder.FetchErrors(cache.KindPlayer); got != 2 {
		t.Fatalf("recorded errors = %d, want 2", got)
	}
}
