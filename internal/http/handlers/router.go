package handlers

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler, admin *AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/directory", handler.Directory)
	mux.HandleFunc("/directory/", handler.Directory)
	mux.HandleFunc("/scrape/matches", handler.ScrapeMatches)
	mux.HandleFunc("/clubs/", handler.Club)
	mux.HandleFunc("/matches/", handler.MatchByID)
	mux.HandleFunc("/players/", handler.PlayerMatches)
	if admin != nil {
		mux.HandleFunc("/admin/cache/refresh", admin.RefreshCache)
	}
	return mux
}
