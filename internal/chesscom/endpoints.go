package chesscom

import (
	"strings"

	"chess-league-service/internal/domain/matches"
)

// Endpoint builders. Accessors key their cache entries by these strings, so a
// reference given as a full URL and as a bare ID must build the same endpoint.

// ClubEndpoint maps a club URL slug (optionally extended with a sub-resource
// such as "martinique/matches") to its API path.
func ClubEndpoint(id string) string {
	return "club/" + strings.Trim(strings.TrimSpace(id), "/")
}

// MatchEndpoint maps a match reference (bare numeric ID or any URL ending in
// one) to its API path.
func MatchEndpoint(idOrURL string) string {
	return "match/" + matches.TrailingID(idOrURL)
}

// PlayerMatchesEndpoint maps a username to its team-match listing path.
func PlayerMatchesEndpoint(username string) string {
	return "player/" + strings.TrimSpace(username) + "/matches"
}
