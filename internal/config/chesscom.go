package config

const (
	envChessComBaseURL   = "CHESSCOM_BASE_URL"
	envChessComUserAgent = "CHESSCOM_USER_AGENT"

	defaultChessComBaseURL = "https://api.chess.com/pub"
	// Identifying header requested by the published-data API guidelines.
	defaultChessComUserAgent = "ChessCom-LFR-Project"
)

// ChessComConfig controls how we talk to the chess.com published-data API.
type ChessComConfig struct {
	BaseURL   string
	UserAgent string
}

func loadChessCom() ChessComConfig {
	return ChessComConfig{
		BaseURL:   envOrDefault(envChessComBaseURL, defaultChessComBaseURL),
		UserAgent: envOrDefault(envChessComUserAgent, defaultChessComUserAgent),
	}
}
