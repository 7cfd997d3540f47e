package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	appclubs "chess-league-service/internal/app/clubs"
	appmatches "chess-league-service/internal/app/matches"
	appplayers "chess-league-service/internal/app/players"
	"chess-league-service/internal/chesscom"
	"chess-league-service/internal/directory"
	domainmatches "chess-league-service/internal/domain/matches"
	"chess-league-service/internal/logging"
	"chess-league-service/internal/scraper"
)

// Handler wires HTTP routes to the domain services.
type Handler struct {
	clubs   *appclubs.Service
	matches *appmatches.Service
	players *appplayers.Service
	scraper *scraper.Scraper
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(clubs *appclubs.Service, matches *appmatches.Service, players *appplayers.Service, sc *scraper.Scraper, logger *slog.Logger) *Handler {
	return &Handler{
		clubs:   clubs,
		matches: matches,
		players: players,
		scraper: sc,
		logger:  logger,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/directory" || strings.HasPrefix(r.URL.Path, "/directory/"):
		h.Directory(w, r)
	case r.URL.Path == "/scrape/matches":
		h.ScrapeMatches(w, r)
	case strings.HasPrefix(r.URL.Path, "/clubs/"):
		h.Club(w, r)
	case strings.HasPrefix(r.URL.Path, "/matches/"):
		h.MatchByID(w, r)
	case strings.HasPrefix(r.URL.Path, "/players/"):
		h.PlayerMatches(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service holds no warm state, so
// readiness follows health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Club serves /clubs/{id}, /clubs/{id}/matches, and raw sub-resources such as
// /clubs/{id}/members.
func (h *Handler) Club(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := pathResource(w, r, "/clubs/", "invalid club id", h.logger)
	if !ok {
		return
	}
	logger := loggerFromContext(r, h.logger)
	refresh := refreshParam(r)

	switch {
	case strings.HasSuffix(id, "/matches"):
		grouped, err := h.clubs.Matches(r.Context(), strings.TrimSuffix(id, "/matches"), refresh)
		if err != nil {
			h.upstreamError(w, r, err, "club not found", logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, grouped, logger)
	case strings.Contains(id, "/"):
		payload, err := h.clubs.Raw(r.Context(), id, refresh)
		if err != nil {
			h.upstreamError(w, r, err, "club resource not found", logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, payload, logger)
	default:
		profile, err := h.clubs.Get(r.Context(), id, refresh)
		if err != nil {
			h.upstreamError(w, r, err, "club not found", logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, profile, logger)
	}
}

// MatchByID serves /matches/{id}, where {id} is a bare numeric match ID.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := pathResource(w, r, "/matches/", "invalid match id", h.logger)
	if !ok {
		return
	}
	logger := loggerFromContext(r, h.logger)

	match, err := h.matches.Get(r.Context(), id, refreshParam(r))
	if err != nil {
		h.upstreamError(w, r, err, "match not found", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, match, logger)
}

// PlayerMatches serves /players/{username}/matches. The status query parameter
// accepts abbreviations ("fi", "reg"); ids=1 returns only the match IDs.
func (h *Handler) PlayerMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	rest, ok := pathResource(w, r, "/players/", "invalid player path", h.logger)
	if !ok {
		return
	}
	username, trailing, found := strings.Cut(rest, "/")
	if !found || trailing != "matches" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	statuses, dropped := domainmatches.ParseStatuses(r.URL.Query().Get("status"))
	if len(dropped) > 0 {
		logging.Warn(logger, "unrecognized statuses dropped",
			slog.String(logging.FieldUsername, username),
			slog.Any("dropped", dropped),
		)
	}
	refresh := refreshParam(r)

	if isTruthy(r.URL.Query().Get("ids")) {
		ids, err := h.players.MatchIDs(r.Context(), username, statuses, refresh)
		if err != nil {
			h.playerError(w, r, err, logger)
			return
		}
		if ids == nil {
			ids = []string{}
		}
		writeJSON(w, nethttp.StatusOK, map[string]any{"username": username, "match_ids": ids}, logger)
		return
	}

	grouped, err := h.players.Matches(r.Context(), username, statuses, refresh)
	if err != nil {
		h.playerError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, grouped, logger)
}

// Directory serves the static competition directory: every season at
// /directory, a single season at /directory/{label}.
func (h *Handler) Directory(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if r.URL.Path == "/directory" {
		writeJSON(w, nethttp.StatusOK, map[string]any{"seasons": directory.Seasons()}, h.logger)
		return
	}

	label, err := url.PathUnescape(strings.TrimPrefix(r.URL.Path, "/directory/"))
	if err != nil || label == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid season label", h.logger)
		return
	}
	season, ok := directory.FindSeason(label)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "season not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, season, h.logger)
}

// ScrapeMatches serves /scrape/matches?url=... and returns the match IDs found
// on the forum page. Optional selector and pattern parameters narrow the scan.
func (h *Handler) ScrapeMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	pageURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if pageURL == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing url parameter", logger)
		return
	}
	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		writeError(w, r, nethttp.StatusBadRequest, "url must be absolute http(s)", logger)
		return
	}

	ids, err := h.scraper.MatchIDs(r.Context(), pageURL, scraper.Options{
		Pattern:  r.URL.Query().Get("pattern"),
		Selector: r.URL.Query().Get("selector"),
	})
	if err != nil {
		if strings.Contains(err.Error(), "invalid pattern") {
			writeError(w, r, nethttp.StatusBadRequest, "invalid pattern", logger)
			return
		}
		writeError(w, r, nethttp.StatusBadGateway, "failed to scrape page", logger)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"url": pageURL, "match_ids": ids}, logger)
}

func (h *Handler) upstreamError(w nethttp.ResponseWriter, r *nethttp.Request, err error, notFoundMsg string, logger *slog.Logger) {
	if chesscom.IsNotFound(err) {
		writeError(w, r, nethttp.StatusNotFound, notFoundMsg, logger)
		return
	}
	writeError(w, r, nethttp.StatusBadGateway, "upstream request failed", logger)
}

func (h *Handler) playerError(w nethttp.ResponseWriter, r *nethttp.Request, err error, logger *slog.Logger) {
	if err == appplayers.ErrEmptyUsername {
		writeError(w, r, nethttp.StatusBadRequest, "username must not be empty", logger)
		return
	}
	h.upstreamError(w, r, err, "player not found", logger)
}

// pathResource strips the route prefix and unescapes the remainder, rejecting
// empty or malformed resource paths.
func pathResource(w nethttp.ResponseWriter, r *nethttp.Request, prefix, badMsg string, logger *slog.Logger) (string, bool) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	resource, err := url.PathUnescape(raw)
	resource = strings.Trim(resource, "/")
	if err != nil || resource == "" || strings.ContainsAny(resource, " \t") {
		writeError(w, r, nethttp.StatusBadRequest, badMsg, logger)
		return "", false
	}
	return resource, true
}

func refreshParam(r *nethttp.Request) bool {
	return isTruthy(r.URL.Query().Get("refresh"))
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
