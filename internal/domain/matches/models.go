package matches

// Settings describes the rules a team match is played under.
type Settings struct {
	Rules       string `json:"rules,omitempty"`
	TimeClass   string `json:"time_class,omitempty"`
	TimeControl string `json:"time_control,omitempty"`
}

// BoardPlayer is one roster entry of a match team, with per-colour results
// once the corresponding games have finished.
type BoardPlayer struct {
	Username      string `json:"username"`
	Stats         string `json:"stats,omitempty"`
	Status        string `json:"status,omitempty"`
	Board         string `json:"board,omitempty"`
	PlayedAsWhite string `json:"played_as_white,omitempty"`
	PlayedAsBlack string `json:"played_as_black,omitempty"`
}

// Team is one side of a team match.
type Team struct {
	APIID            string        `json:"@id"`
	Name             string        `json:"name"`
	URL              string        `json:"url,omitempty"`
	Score            float64       `json:"score,omitempty"`
	Result           string        `json:"result,omitempty"`
	Players          []BoardPlayer `json:"players,omitempty"`
	FairPlayRemovals []string      `json:"fair_play_removals,omitempty"`
}

// Teams holds the two sides of a match under their API keys.
type Teams struct {
	Team1 Team `json:"team1"`
	Team2 Team `json:"team2"`
}

// Match is the canonical record of a team-vs-team fixture.
type Match struct {
	APIID     string   `json:"@id"`
	URL       string   `json:"url,omitempty"`
	Name      string   `json:"name"`
	Status    Status   `json:"status"`
	StartTime int64    `json:"start_time,omitempty"`
	EndTime   int64    `json:"end_time,omitempty"`
	Boards    int      `json:"boards,omitempty"`
	Settings  Settings `json:"settings,omitempty"`
	Teams     Teams    `json:"teams"`
}

// PlayerResults carries per-colour outcomes inside a player match summary.
type PlayerResults struct {
	PlayedAsWhite string `json:"played_as_white,omitempty"`
	PlayedAsBlack string `json:"played_as_black,omitempty"`
}

// Summary is a single match entry as listed under a club or a player.
// Club listings carry Opponent/TimeClass, player listings carry Club/Board;
// the API uses the same overall shape for both.
type Summary struct {
	APIID     string         `json:"@id"`
	Name      string         `json:"name"`
	URL       string         `json:"url,omitempty"`
	Opponent  string         `json:"opponent,omitempty"`
	Club      string         `json:"club,omitempty"`
	Board     string         `json:"board,omitempty"`
	StartTime int64          `json:"start_time,omitempty"`
	TimeClass string         `json:"time_class,omitempty"`
	Result    string         `json:"result,omitempty"`
	Results   *PlayerResults `json:"results,omitempty"`
}

// MatchID returns the trailing numeric identifier of the summary, preferring
// the API @id over the web URL.
func (s Summary) MatchID() string {
	if s.APIID != "" {
		return TrailingID(s.APIID)
	}
	if s.URL != "" {
		return TrailingID(s.URL)
	}
	return ""
}

// Grouped maps a status to the match summaries currently in that stage.
type Grouped map[Status][]Summary

// Has reports whether the group already carries an entry list for status.
func (g Grouped) Has(status Status) bool {
	_, ok := g[status]
	return ok
}

// HasAll reports whether every requested status is present.
func (g Grouped) HasAll(statuses []Status) bool {
	for _, s := range statuses {
		if !g.Has(s) {
			return false
		}
	}
	return true
}

// MergeMissing copies lists from other for statuses not already present.
// Existing lists are treated as complete and never overwritten.
func (g Grouped) MergeMissing(other Grouped) {
	for status, list := range other {
		if !g.Has(status) {
			g[status] = list
		}
	}
}

// Select returns a copy of g restricted to the requested statuses.
// Requested statuses with no entry map to an empty list so callers can tell
// "known empty" from "never fetched".
func (g Grouped) Select(statuses []Status) Grouped {
	out := make(Grouped, len(statuses))
	for _, s := range statuses {
		list, ok := g[s]
		if !ok {
			list = []Summary{}
		}
		out[s] = list
	}
	return out
}
