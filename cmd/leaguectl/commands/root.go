package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	appclubs "chess-league-service/internal/app/clubs"
	appmatches "chess-league-service/internal/app/matches"
	appplayers "chess-league-service/internal/app/players"
	"chess-league-service/internal/cache"
	"chess-league-service/internal/chesscom"
	"chess-league-service/internal/config"
	"chess-league-service/internal/logging"
	"chess-league-service/internal/metrics"
	"chess-league-service/internal/scraper"
)

var rootCmd = &cobra.Command{
	Use:   "leaguectl",
	Short: "leaguectl queries chess.com team competitions (CFE, CFT, LFR) from the command line.",
}

var refreshFlag bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&refreshFlag, "refresh", false, "bypass cached data and refetch")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// services bundles everything a subcommand may need. Each invocation is a
// fresh process, so the cache only spans the command's own fetches.
type services struct {
	clubs   *appclubs.Service
	matches *appmatches.Service
	players *appplayers.Service
	scraper *scraper.Scraper
}

func newServices() *services {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   envOr("LOG_LEVEL", "warn"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "leaguectl",
	})
	recorder := metrics.NewRecorder()

	client := chesscom.NewClient(chesscom.Config{
		BaseURL:   cfg.ChessCom.BaseURL,
		UserAgent: cfg.ChessCom.UserAgent,
		Logger:    logger,
	})
	store := cache.New(time.Duration(cfg.CacheTTL))

	return &services{
		clubs:   appclubs.NewService(client, store, logger, recorder),
		matches: appmatches.NewService(client, store, logger, recorder),
		players: appplayers.NewService(client, store, logger, recorder),
		scraper: scraper.New(scraper.Config{
			HTTPClient: &http.Client{Timeout: time.Duration(cfg.Scraper.Timeout)},
			UserAgent:  cfg.Scraper.UserAgent,
			Logger:     logger,
			Metrics:    recorder,
		}),
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
