package clubs

import (
	"context"
	"encoding/json"
	"log/slog"

	"chess-league-service/internal/app"
	"chess-league-service/internal/cache"
	"chess-league-service/internal/chesscom"
	domainclubs "chess-league-service/internal/domain/clubs"
	domainmatches "chess-league-service/internal/domain/matches"
	"chess-league-service/internal/metrics"
)

// Service exposes cached club accessors over the published-data API.
type Service struct {
	fetch  *app.CachedFetcher
	logger *slog.Logger
}

// NewService constructs a Service caching under the club version counter.
func NewService(fetcher app.Fetcher, store *cache.Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		fetch:  app.NewCachedFetcher(fetcher, store, cache.KindClub, recorder),
		logger: logger,
	}
}

// Get returns the profile for a club URL slug (e.g. "martinique" for
// www.chess.com/club/martinique). When refresh is set, the club version
// counter is bumped so the entry is refetched despite an unexpired TTL.
func (s *Service) Get(ctx context.Context, id string, refresh bool) (domainclubs.Profile, error) {
	payload, err := s.fetch.Payload(ctx, chesscom.ClubEndpoint(id), refresh)
	if err != nil {
		return domainclubs.Profile{}, err
	}
	return chesscom.DecodeClubProfile(payload)
}

// Matches returns the club's recent team matches grouped by status.
func (s *Service) Matches(ctx context.Context, id string, refresh bool) (domainmatches.Grouped, error) {
	payload, err := s.fetch.Payload(ctx, chesscom.ClubEndpoint(id)+"/matches", refresh)
	if err != nil {
		return nil, err
	}
	return chesscom.DecodeGrouped(payload)
}

// Raw returns the payload for an extended club id such as
// "martinique/members", for sub-resources without a dedicated accessor.
func (s *Service) Raw(ctx context.Context, extendedID string, refresh bool) (json.RawMessage, error) {
	return s.fetch.Payload(ctx, chesscom.ClubEndpoint(extendedID), refresh)
}
