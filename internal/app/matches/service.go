package matches

import (
	"context"
	"log/slog"

	"chess-league-service/internal/app"
	"chess-league-service/internal/cache"
	"chess-league-service/internal/chesscom"
	domainmatches "chess-league-service/internal/domain/matches"
	"chess-league-service/internal/metrics"
)

// Service exposes the cached match accessor.
type Service struct {
	fetch  *app.CachedFetcher
	logger *slog.Logger
}

// NewService constructs a Service caching under the match version counter.
func NewService(fetcher app.Fetcher, store *cache.Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		fetch:  app.NewCachedFetcher(fetcher, store, cache.KindMatch, recorder),
		logger: logger,
	}
}

// Get returns the match record for a reference given either as a bare numeric
// ID or as any URL ending in one. Both forms normalize to the same endpoint,
// so they share a single cache entry.
func (s *Service) Get(ctx context.Context, idOrURL string, refresh bool) (domainmatches.Match, error) {
	payload, err := s.fetch.Payload(ctx, chesscom.MatchEndpoint(idOrURL), refresh)
	if err != nil {
		return domainmatches.Match{}, err
	}
	return chesscom.DecodeMatch(payload)
}
