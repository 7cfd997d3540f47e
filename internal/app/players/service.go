package players

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"chess-league-service/internal/app"
	"chess-league-service/internal/cache"
	"chess-league-service/internal/chesscom"
	domainmatches "chess-league-service/internal/domain/matches"
	"chess-league-service/internal/logging"
	"chess-league-service/internal/metrics"
)

// ErrEmptyUsername is returned before any network call when no username was
// given; that is caller error, not an upstream failure.
var ErrEmptyUsername = errors.New("players: username must not be empty")

// Service exposes the cached player-matches accessor. It accumulates a
// per-player record of match summaries grouped by status; once a record
// carries every requested status it is treated as complete and never
// refetched within the session.
type Service struct {
	fetch  *app.CachedFetcher
	logger *slog.Logger

	mu      sync.RWMutex
	records map[string]domainmatches.Grouped
}

// NewService constructs a Service caching under the player version counter.
func NewService(fetcher app.Fetcher, store *cache.Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		fetch:   app.NewCachedFetcher(fetcher, store, cache.KindPlayer, recorder),
		logger:  logger,
		records: make(map[string]domainmatches.Grouped),
	}
}

// Matches returns the player's team matches for the requested statuses.
// On fetch failure the accumulated record is left untouched and whatever is
// already known for the requested statuses is returned alongside the error.
func (s *Service) Matches(ctx context.Context, username string, statuses []domainmatches.Status, refresh bool) (domainmatches.Grouped, error) {
	username = normalizeUsername(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if len(statuses) == 0 {
		statuses = domainmatches.DefaultStatuses()
	}

	if refresh {
		s.mu.Lock()
		delete(s.records, username)
		s.mu.Unlock()
	}

	s.mu.RLock()
	record, ok := s.records[username]
	if ok && record.HasAll(statuses) {
		out := record.Select(statuses)
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()

	payload, err := s.fetch.Payload(ctx, chesscom.PlayerMatchesEndpoint(username), refresh)
	if err != nil {
		logging.Warn(s.logger, "player matches fetch failed",
			slog.String(logging.FieldUsername, username),
			slog.Any("error", err),
		)
		s.mu.RLock()
		defer s.mu.RUnlock()
		if record, ok := s.records[username]; ok {
			return record.Select(statuses), err
		}
		return nil, err
	}

	grouped, err := chesscom.DecodeGrouped(payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok = s.records[username]
	if !ok {
		record = make(domainmatches.Grouped)
		s.records[username] = record
	}
	// Statuses already present are assumed complete; only the gaps merge in.
	record.MergeMissing(grouped)
	return record.Select(statuses), nil
}

// MatchIDs returns just the trailing numeric IDs of the player's matches for
// the requested statuses, in status then encounter order. Entries with no
// resolvable ID are skipped.
func (s *Service) MatchIDs(ctx context.Context, username string, statuses []domainmatches.Status, refresh bool) ([]string, error) {
	if len(statuses) == 0 {
		statuses = domainmatches.DefaultStatuses()
	}
	grouped, err := s.Matches(ctx, username, statuses, refresh)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, status := range statuses {
		for _, summary := range grouped[status] {
			if id := summary.MatchID(); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

// chess.com usernames are case-insensitive and appear lowercased in API
// URLs, so records key on the lowercased form.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
