package chesscom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"chess-league-service/internal/logging"
)

// Config controls how the client reaches the published-data API.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client issues read-only GETs against the chess.com published-data API,
// cf. https://www.chess.com/news/view/published-data-api.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// Fetch GETs base URL + "/" + endpoint and returns the raw JSON payload.
// Transport failures and non-2xx statuses come back as errors; a non-2xx is
// reported as a *StatusError so callers can inspect the code. No retries are
// attempted; re-fetching is the caller's (or the cache TTL's) job.
func (c *Client) Fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	url := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("chesscom: build request for %s: %w", endpoint, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chesscom: get %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logging.Warn(c.logger, "api returned error status",
			slog.String(logging.FieldEndpoint, endpoint),
			slog.Int(logging.FieldStatusCode, resp.StatusCode),
		)
		return nil, &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("chesscom: read %s: %w", endpoint, err)
	}
	if !json.Valid(payload) {
		return nil, fmt.Errorf("chesscom: %s returned invalid JSON", endpoint)
	}
	return payload, nil
}
