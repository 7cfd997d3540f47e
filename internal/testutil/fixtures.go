package testutil

// Fixture payloads mirror the shapes served by the chess.com published-data
// API, trimmed to the fields the service decodes.

// ClubProfileJSON is a minimal club profile payload.
const ClubProfileJSON = `{
	"@id": "https://api.chess.com/pub/club/martinique",
	"name": "Martinique",
	"url": "https://www.chess.com/club/martinique",
	"club_id": 123456,
	"country": "https://api.chess.com/pub/country/MQ",
	"members_count": 42
}`

// GroupedMatchesJSON carries one finished and one registered match summary.
const GroupedMatchesJSON = `{
	"finished": [
		{
			"name": "CFE D1 Ronde 1",
			"@id": "https://api.chess.com/pub/match/1803600",
			"url": "https://www.chess.com/club/matches/1803600",
			"result": "win"
		}
	],
	"in_progress": [],
	"registered": [
		{
			"name": "CFE D1 Ronde 2",
			"@id": "https://api.chess.com/pub/match/1869975",
			"url": "https://www.chess.com/club/matches/1869975"
		}
	]
}`

// MatchJSON is a minimal team match payload.
const MatchJSON = `{
	"@id": "https://api.chess.com/pub/match/1803600",
	"name": "CFE D1 Ronde 1",
	"url": "https://www.chess.com/club/matches/1803600",
	"status": "finished",
	"boards": 12
}`
