// Package directory holds the read-only table of French team competitions
// (CFE, CFT, LFR) and the forum announcement pages describing them. It is
// pure configuration driving which pages the scraper visits; entries are
// maintained by hand as new seasons are announced.
package directory

// ScrapeHints narrow how a season's forum pages should be scraped when the
// default whole-page scan picks up too much.
type ScrapeHints struct {
	// Selector is the CSS selector of the announcement post body.
	Selector string
	// LinkPattern extracts competition page links from the season page.
	LinkPattern string
}

// Competition is one championship, cup or league division within a season.
type Competition struct {
	Name     string `json:"name"`
	ForumURL string `json:"forum_url"`
}

// Season groups the competitions announced for one season.
type Season struct {
	Label           string        `json:"label"`
	AnnouncementURL string        `json:"announcement_url,omitempty"`
	AnnuaireURL     string        `json:"annuaire_url,omitempty"`
	Hints           ScrapeHints   `json:"-"`
	Competitions    []Competition `json:"competitions"`
}

// seasons is ordered most recent first. Competition names repeat the wording
// used on the announcement pages.
var seasons = []Season{
	{
		Label:           "CFE/CFT/LFR - Saison 2026",
		AnnouncementURL: "https://www.chess.com/fr/announcements/view/cfe-cft-lfr-saison-2026",
		AnnuaireURL:     "https://www.chess.com/fr/announcements/view/annuaire-des-equipes-locales",
		Hints: ScrapeHints{
			Selector:    "div.post-view-content",
			LinkPattern: `https://www\.chess\.com/(?:fr/)?clubs/forum/view/(?:lfr|cfe|cft)2026[^"]+`,
		},
		Competitions: []Competition{
			{
				Name:     "Championnat de France par Equipes (CFE) 1ère division",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/cfe2026-d1",
			},
			{
				Name:     "Championnat de France par Equipes (CFE) 2ème division",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/cfe2026-d2",
			},
			{
				Name:     "Championnat de France par Equipes (CFE) 3ème division",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/cfe2026-d3",
			},
			// The CFT was announced round by round; later rounds supersede
			// earlier ones under the same name.
			{
				Name:     "Coupe de France des Territoires (CFT)",
				ForumURL: "https://www.chess.com/fr/announcements/view/cft2026-r2",
			},
			{
				Name:     "Ligue Française des Régions (LFR) 1ère division",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/lfr2026-l1",
			},
			{
				Name:     "Ligue Française des Régions (LFR) 2ème division",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/lfr2026-l2",
			},
			{
				Name:     "Ligue Française des Régions (LFR) 3ème division",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/lfr2026-l3",
			},
			{
				Name:     "Ligue Française des Régions (LFR) en 960",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/lfr2026-960",
			},
			{
				Name:     "Championnat de France par Equipes en moins de 1400 (CFE)",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/cfe2026-u1400",
			},
			{
				Name:     "Ligue Française des Régions en moins de 1400 (LFR)",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/lfr2026-u1400",
			},
			{
				Name:     "Ligue Française des Régions en moins de 1000 (LFR)",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/lfr2026-u1000",
			},
		},
	},
	{
		Label:           "CFE - saison 2025",
		AnnouncementURL: "https://www.chess.com/fr/announcements/view/cfe2-demarrage-de-la-saison-2025-ronde-1",
		Competitions: []Competition{
			{
				Name:     "Division 1",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/cfe2025-division-1",
			},
			{
				Name:     "Division 2",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/cfe2025-division-2",
			},
			{
				Name:     "Division 3",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/cfe-division-3",
			},
			{
				Name:     "CFE 2025 U1400",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/cfe2025-u1400",
			},
		},
	},
	{
		Label: "Saison 2024",
		Competitions: []Competition{
			{
				Name:     "CFE 2024",
				ForumURL: "https://www.chess.com/fr/clubs/forum/view/cfe-2024",
			},
		},
	},
}

// Seasons returns the full directory, most recent season first.
func Seasons() []Season {
	out := make([]Season, len(seasons))
	copy(out, seasons)
	return out
}

// FindSeason looks a season up by its label.
func FindSeason(label string) (Season, bool) {
	for _, season := range seasons {
		if season.Label == label {
			return season, true
		}
	}
	return Season{}, false
}

// FindCompetition looks a competition up by its display name. When a name
// repeats, the last entry wins, matching how later announcements supersede
// earlier ones.
func (s Season) FindCompetition(name string) (Competition, bool) {
	for i := len(s.Competitions) - 1; i >= 0; i-- {
		if s.Competitions[i].Name == name {
			return s.Competitions[i], true
		}
	}
	return Competition{}, false
}
