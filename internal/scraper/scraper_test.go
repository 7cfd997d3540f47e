package scraper

import (
	"context"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"chess-league-service/internal/metrics"
	"chess-league-service/internal/testutil"
)

func pageClient(status int, body string) *http.Client {
	return testutil.StubClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})
}

func TestMatchIDsExtractsFromAnchors(t *testing.T) {
	page := `<html><body>
		<a href="https://www.chess.com/club/matches/team-martinique/1803600">Ronde 1</a>
		<a href="https://www.chess.com/club/matches/1869975">Ronde 2</a>
	</body></html>`
	s := New(Config{HTTPClient: pageClient(http.StatusOK, page)})

	ids, err := s.MatchIDs(context.Background(), "https://example.test/forum", Options{})
	if err != nil {
		t.Fatalf("MatchIDs failed: %v", err)
	}
	want := []string{"1803600", "1869975"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
}

func TestMatchIDsDeduplicatesPreservingOrder(t *testing.T) {
	page := `
		<a href="https://www.chess.com/club/matches/2222">a</a>
		<a href="https://www.chess.com/club/matches/1111">b</a>
		<a href="https://www.chess.com/club/matches/2222">c</a>`
	s := New(Config{HTTPClient: pageClient(http.StatusOK, page)})

	ids, err := s.MatchIDs(context.Background(), "https://example.test/forum", Options{})
	if err != nil {
		t.Fatalf("MatchIDs failed: %v", err)
	}
	want := []string{"2222", "1111"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
}

func TestMatchIDsNoLinksYieldsEmpty(t *testing.T) {
	s := New(Config{HTTPClient: pageClient(http.StatusOK, "<html><body>nothing here</body></html>")})

	ids, err := s.MatchIDs(context.Background(), "https://example.test/forum", Options{})
	if err != nil {
		t.Fatalf("MatchIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("ids = %v, want empty", ids)
	}
}

func TestMatchIDsSelectorNarrowsScan(t *testing.T) {
	page := `<html><body>
		<div class="sidebar"><a href="/club/matches/9999">noise</a></div>
		<div class="post-view-content"><a href="/club/matches/1803600">Ronde 1</a></div>
	</body></html>`
	s := New(Config{HTTPClient: pageClient(http.StatusOK, page)})

	ids, err := s.MatchIDs(context.Background(), "https://example.test/forum", Options{
		Selector: "div.post-view-content",
	})
	if err != nil {
		t.Fatalf("MatchIDs failed: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"1803600"}) {
		t.Fatalf("ids = %v, want [1803600]", ids)
	}
}

func TestMatchIDsSelectorMissFallsBackToFullPage(t *testing.T) {
	page := `<a href="/club/matches/1803600">Ronde 1</a>`
	s := New(Config{HTTPClient: pageClient(http.StatusOK, page)})

	ids, err := s.MatchIDs(context.Background(), "https://example.test/forum", Options{
		Selector: "div.does-not-exist",
	})
	if err != nil {
		t.Fatalf("MatchIDs failed: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"1803600"}) {
		t.Fatalf("ids = %v, want [1803600]", ids)
	}
}

func TestMatchIDsCustomPattern(t *testing.T) {
	page := `<a href="https://www.chess.com/fr/clubs/forum/view/cfe2026-d1">CFE D1</a>`
	s := New(Config{HTTPClient: pageClient(http.StatusOK, page)})

	ids, err := s.MatchIDs(context.Background(), "https://example.test/season", Options{
		Pattern: `forum/view/(cfe[\w-]+)`,
	})
	if err != nil {
		t.Fatalf("MatchIDs failed: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"cfe2026-d1"}) {
		t.Fatalf("ids = %v", ids)
	}
}

func TestMatchIDsInvalidPattern(t *testing.T) {
	s := New(Config{HTTPClient: pageClient(http.StatusOK, "")})
	if _, err := s.MatchIDs(context.Background(), "https://example.test", Options{Pattern: "("}); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestMatchIDsNon200StatusIsError(t *testing.T) {
	recorder := metrics.NewRecorder()
	s := New(Config{
		HTTPClient: pageClient(http.StatusForbidden, "blocked"),
		Metrics:    recorder,
	})

	if _, err := s.MatchIDs(context.Background(), "https://example.test/forum", Options{}); err == nil {
		t.Fatal("expected error for 403 page")
	}
	if count, errs := recorder.Scrapes(); count != 1 || errs != 1 {
		t.Fatalf("scrape stats = (%d, %d), want (1, 1)", count, errs)
	}
}

func TestMatchIDsLeadingZerosPassThrough(t *testing.T) {
	page := `<a href="/club/matches/007">bond</a>`
	s := New(Config{HTTPClient: pageClient(http.StatusOK, page)})

	ids, err := s.MatchIDs(context.Background(), "https://example.test", Options{})
	if err != nil {
		t.Fatalf("MatchIDs failed: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"007"}) {
		t.Fatalf("ids = %v, want [007]", ids)
	}
}
