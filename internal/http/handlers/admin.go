package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"chess-league-service/internal/cache"
	"chess-league-service/internal/http/requestutil"
	"chess-league-service/internal/logging"
)

// AdminHandler exposes admin-only endpoints (cache refresh).
type AdminHandler struct {
	store  *cache.Store
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(store *cache.Store, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		store:  store,
		token:  token,
		logger: logger,
	}
}

// RefreshCache bumps the version counter for the requested resource kind
// (club, match, player, or all), forcing fresh upstream fetches on the next
// access. Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.store == nil {
		writeError(w, r, http.StatusServiceUnavailable, "cache not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	kind := strings.TrimSpace(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = "all"
	}

	var bumped []string
	switch kind {
	case "all":
		for _, k := range cache.Kinds() {
			h.store.Bump(k)
			bumped = append(bumped, k)
		}
	case cache.KindClub, cache.KindMatch, cache.KindPlayer:
		h.store.Bump(kind)
		bumped = append(bumped, kind)
	default:
		logging.Warn(logger, "admin refresh invalid kind", slog.String(logging.FieldKind, kind))
		writeError(w, r, http.StatusBadRequest, "invalid kind (expected club, match, player or all)", logger)
		return
	}

	stats := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"bumped": bumped,
		"cache":  stats,
	}, logger)
	logging.Info(logger, "admin cache refreshed",
		slog.Any("bumped", bumped),
	)
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
