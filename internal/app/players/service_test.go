package players

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"chess-league-service/internal/cache"
	domainmatches "chess-league-service/internal/domain/matches"
	"chess-league-service/internal/metrics"
	"chess-league-service/internal/testutil"
)

type stubFetcher struct {
	calls   int
	payload string
	err     error
}

func (f *stubFetcher) Fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(f.payload), nil
}

func newTestService(fetcher *stubFetcher) *Service {
	return NewService(fetcher, cache.New(time.Hour), nil, metrics.NewRecorder())
}

func TestMatchesEmptyUsernameFailsBeforeFetch(t *testing.T) {
	fetcher := &stubFetcher{payload: testutil.GroupedMatchesJSON}
	svc := newTestService(fetcher)

	for _, username := range []string{"", "   ", "\t"} {
		_, err := svc.Matches(context.Background(), username, nil, false)
		if !errors.Is(err, ErrEmptyUsername) {
			t.Fatalf("username %q: err = %v, want ErrEmptyUsername", username, err)
		}
	}
	if fetcher.calls != 0 {
		t.Fatalf("fetch calls = %d, want 0", fetcher.calls)
	}
}

func TestMatchesDefaultsToActiveStatuses(t *testing.T) {
	fetcher := &stubFetcher{payload: testutil.GroupedMatchesJSON}
	svc := newTestService(fetcher)

	grouped, err := svc.Matches(context.Background(), "erik", nil, false)
	if err != nil {
		t.Fatalf("Matches failed: %v", err)
	}
	if grouped.Has(domainmatches.StatusFinished) {
		t.Fatal("finished returned without being requested")
	}
	if !grouped.Has(domainmatches.StatusInProgress) || !grouped.Has(domainmatches.StatusRegistered) {
		t.Fatalf("default statuses missing: %v", grouped)
	}
}

func TestMatchesCompleteRecordSkipsFetch(t *testing.T) {
	fetcher := &stubFetcher{payload: testutil.GroupedMatchesJSON}
	svc := newTestService(fetcher)

	statuses := []domainmatches.Status{domainmatches.StatusFinished}
	if _, err := svc.Matches(context.Background(), "erik", statuses, false); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if _, err := svc.Matches(context.Background(), "erik", statuses, false); err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", fetcher.calls)
	}
}

func TestMatchesUsernameIsCaseInsensitive(t *testing.T) {
	fetcher := &stubFetcher{payload: testutil.GroupedMatchesJSON}
	svc := newTestService(fetcher)

	statuses := []domainmatches.Status{domainmatches.StatusFinished}
	svc.Matches(context.Background(), "Erik", statuses, false)
	svc.Matches(context.Background(), "  ERIK ", statuses, false)
	if fetcher.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1 (usernames differ only in case)", fetcher.calls)
	}
}

func TestMatchesFetchFailureKeepsRecord(t *testing.T) {
	// A payload with only finished entries leaves the record incomplete, so a
	// later broader query must hit the upstream again.
	fetcher := &stubFetcher{payload: `{"finished":[{"name":"R1","@id":"https://api.chess.com/pub/match/1803600"}]}`}
	svc := newTestService(fetcher)

	finished := []domainmatches.Status{domainmatches.StatusFinished}
	if _, err := svc.Matches(context.Background(), "erik", finished, false); err != nil {
		t.Fatalf("seed call failed: %v", err)
	}

	// The record lacks in_progress, so this forces a fetch that now fails.
	fetcher.err = errors.New("upstream down")
	grouped, err := svc.Matches(context.Background(), "erik", []domainmatches.Status{
		domainmatches.StatusFinished,
		domainmatches.StatusInProgress,
	}, false)
	if err == nil {
		t.Fatal("expected fetch error")
	}
	// What was already known still comes back alongside the error.
	if len(grouped[domainmatches.StatusFinished]) != 1 {
		t.Fatalf("known finished entries lost: %v", grouped)
	}

	// The stored record survived; a finished-only query needs no fetch.
	calls := fetcher.calls
	if _, err := svc.Matches(context.Background(), "erik", finished, false); err != nil {
		t.Fatalf("post-failure call failed: %v", err)
	}
	if fetcher.calls != calls {
		t.Fatal("record was dropped after a failed fetch")
	}
}

func TestMatchesRefreshDropsRecord(t *testing.T) {
	fetcher := &stubFetcher{payload: testutil.GroupedMatchesJSON}
	svc := newTestService(fetcher)

	statuses := []domainmatches.Status{domainmatches.StatusFinished}
	svc.Matches(context.Background(), "erik", statuses, false)
	svc.Matches(context.Background(), "erik", statuses, true)
	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
}

func TestMatchIDs(t *testing.T) {
	fetcher := &stubFetcher{payload: testutil.GroupedMatchesJSON}
	svc := newTestService(fetcher)

	ids, err := svc.MatchIDs(context.Background(), "erik", []domainmatches.Status{
		domainmatches.StatusFinished,
		domainmatches.StatusRegistered,
	}, false)
	if err != nil {
		t.Fatalf("MatchIDs failed: %v", err)
	}
	want := []string{"1803600", "1869975"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}

func TestMatchIDsEmptyUsername(t *testing.T) {
	svc := newTestService(&stubFetcher{})
	if _, err := svc.MatchIDs(context.Background(), "", nil, false); !errors.Is(err, ErrEmptyUsername) {
		t.Fatalf("err = %v, want ErrEmptyUsername", err)
	}
}
