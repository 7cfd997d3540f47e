package config

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	CacheTTL   Duration
	AdminToken string
	ChessCom   ChessComConfig
	Scraper    ScraperConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		CacheTTL:   durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		AdminToken: envOrDefault(envAdminToken, ""),
		ChessCom:   loadChessCom(),
		Scraper:    loadScraper(),
		Metrics:    loadMetrics(),
	}
}
