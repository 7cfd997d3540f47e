package config

import "time"

const (
	envScraperUserAgent = "SCRAPER_USER_AGENT"
	envScraperTimeout   = "SCRAPER_TIMEOUT"

	// Browser-like user agent; forum pages sit behind basic anti-bot filters
	// that reject obviously scripted clients.
	defaultScraperUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	defaultScraperTimeout   = 30 * Duration(time.Second)
)

// ScraperConfig controls forum page scraping.
type ScraperConfig struct {
	UserAgent string
	Timeout   Duration
}

func loadScraper() ScraperConfig {
	return ScraperConfig{
		UserAgent: envOrDefault(envScraperUserAgent, defaultScraperUserAgent),
		Timeout:   durationEnvOrDefault(envScraperTimeout, defaultScraperTimeout),
	}
}
