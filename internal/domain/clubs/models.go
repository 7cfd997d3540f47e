package clubs

// Profile is the canonical club record exposed by the service, matching the
// published-data club endpoint.
type Profile struct {
	APIID         string   `json:"@id"`
	Name          string   `json:"name"`
	URL           string   `json:"url,omitempty"`
	ClubID        int64    `json:"club_id,omitempty"`
	Country       string   `json:"country,omitempty"`
	MembersCount  int      `json:"members_count,omitempty"`
	Created       int64    `json:"created,omitempty"`
	LastActivity  int64    `json:"last_activity,omitempty"`
	AverageRating int      `json:"average_daily_rating,omitempty"`
	Visibility    string   `json:"visibility,omitempty"`
	JoinRequest   string   `json:"join_request,omitempty"`
	Icon          string   `json:"icon,omitempty"`
	Description   string   `json:"description,omitempty"`
	Admins        []string `json:"admin,omitempty"`
}
