package chesscom

import (
	"encoding/json"
	"fmt"

	"chess-league-service/internal/domain/clubs"
	"chess-league-service/internal/domain/matches"
)

// The published-data API already serves clean JSON, so payloads decode
// straight into domain models; shapes the API does not guarantee surface as
// decode errors at the point of use rather than at fetch time.

// DecodeClubProfile decodes a club/{id} payload.
func DecodeClubProfile(payload json.RawMessage) (clubs.Profile, error) {
	var profile clubs.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return clubs.Profile{}, fmt.Errorf("chesscom: decode club profile: %w", err)
	}
	return profile, nil
}

// DecodeGrouped decodes a status-grouped match listing, the shape shared by
// club/{id}/matches and player/{username}/matches.
func DecodeGrouped(payload json.RawMessage) (matches.Grouped, error) {
	grouped := make(matches.Grouped)
	if err := json.Unmarshal(payload, &grouped); err != nil {
		return nil, fmt.Errorf("chesscom: decode grouped matches: %w", err)
	}
	return grouped, nil
}

// DecodeMatch decodes a match/{id} payload.
func DecodeMatch(payload json.RawMessage) (matches.Match, error) {
	var match matches.Match
	if err := json.Unmarshal(payload, &match); err != nil {
		return matches.Match{}, fmt.Errorf("chesscom: decode match: %w", err)
	}
	return match, nil
}
