package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"chess-league-service/internal/logging"
	"chess-league-service/internal/metrics"
)

// DefaultPattern targets result links of the form
// "https://www.chess.com/club/matches/{club-slug}/{id}" where "{club-slug}/"
// may be missing, and captures only the numeric {id}.
const DefaultPattern = `matches/(?:[\w-]+/)?(\d+)`

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	defaultTimeout   = 30 * time.Second
)

var defaultPattern = regexp.MustCompile(DefaultPattern)

// Config controls how forum pages are fetched.
type Config struct {
	HTTPClient *http.Client
	UserAgent  string
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Options tune one extraction. Forum page structure varies from season to
// season (divisions vs rounds vs knockout brackets), so the caller supplies
// the page boundaries instead of the scraper assuming one fixed layout.
type Options struct {
	// Pattern overrides DefaultPattern. The first capture group is taken as
	// the extracted value; with no group, the whole match is.
	Pattern string
	// Selector narrows extraction to a CSS-selected container (e.g. the
	// announcement post body) instead of the full page.
	Selector string
}

// Scraper extracts match IDs from chess.com forum announcement pages.
type Scraper struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// New creates a Scraper. A browser-like user agent is used by default to
// avoid being blocked by basic anti-bot filters.
func New(cfg Config) *Scraper {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Scraper{
		client:    client,
		userAgent: userAgent,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
	}
}

// MatchIDs fetches a forum page and returns every pattern match found in it,
// deduplicated preserving first-occurrence order. IDs come back as strings
// verbatim; leading zeros or oversized values pass through untouched.
func (s *Scraper) MatchIDs(ctx context.Context, pageURL string, opts Options) ([]string, error) {
	start := time.Now()
	ids, err := s.extract(ctx, pageURL, opts)
	s.metrics.RecordScrape(time.Since(start), len(ids), err)
	if err != nil {
		logging.Warn(s.logger, "forum scrape failed",
			slog.String(logging.FieldURL, pageURL),
			slog.Any("error", err),
		)
		return nil, err
	}

	logging.Info(s.logger, "forum scrape complete",
		slog.String(logging.FieldURL, pageURL),
		slog.Int(logging.FieldCount, len(ids)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return ids, nil
}

func (s *Scraper) extract(ctx context.Context, pageURL string, opts Options) ([]string, error) {
	pattern := defaultPattern
	if opts.Pattern != "" {
		compiled, err := regexp.Compile(opts.Pattern)
		if err != nil {
			return nil, fmt.Errorf("scraper: invalid pattern: %w", err)
		}
		pattern = compiled
	}

	content, err := s.fetchPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	if opts.Selector != "" {
		if narrowed, ok := narrowToSelector(content, opts.Selector); ok {
			content = narrowed
		}
	}

	return extractAll(pattern, content), nil
}

func (s *Scraper) fetchPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("scraper: build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("scraper: get %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("scraper: %s returned status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("scraper: read %s: %w", pageURL, err)
	}
	return string(body), nil
}

// narrowToSelector reduces the page to the HTML of the selected container(s).
// On parse failure or when nothing matches, the full page is kept so a layout
// change degrades to a broader scan rather than an empty result.
func narrowToSelector(content, selector string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", false
	}

	var builder strings.Builder
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if html, err := goquery.OuterHtml(sel); err == nil {
			builder.WriteString(html)
		}
	})
	if builder.Len() == 0 {
		return "", false
	}
	return builder.String(), true
}

func extractAll(pattern *regexp.Regexp, content string) []string {
	found := pattern.FindAllStringSubmatch(content, -1)

	seen := make(map[string]bool, len(found))
	ids := make([]string, 0, len(found))
	for _, match := range found {
		value := match[0]
		if len(match) > 1 {
			value = match[1]
		}
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		ids = append(ids, value)
	}
	return ids
}
