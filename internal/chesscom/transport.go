package chesscom

import (
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.chess.com/pub"
	defaultUserAgent = "ChessCom-LFR-Project"

	defaultHTTPTimeout = 20 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveUserAgent(raw string) string {
	if raw == "" {
		return defaultUserAgent
	}
	return raw
}
