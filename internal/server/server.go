package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	appclubs "chess-league-service/internal/app/clubs"
	appmatches "chess-league-service/internal/app/matches"
	appplayers "chess-league-service/internal/app/players"
	"chess-league-service/internal/cache"
	"chess-league-service/internal/chesscom"
	"chess-league-service/internal/config"
	"chess-league-service/internal/http/handlers"
	"chess-league-service/internal/http/middleware"
	"chess-league-service/internal/logging"
	"chess-league-service/internal/metrics"
	"chess-league-service/internal/scraper"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg             config.Config
	logger          *slog.Logger
	metrics         *metrics.Recorder
	store           *cache.Store
	clubsService    *appclubs.Service
	matchesService  *appmatches.Service
	playersService  *appplayers.Service
	httpServer      httpServer
	metricsServer   httpServer
	metricsShutdown func(context.Context) error
}

// New constructs a server with default client wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	client := chesscom.NewClient(chesscom.Config{
		BaseURL:   cfg.ChessCom.BaseURL,
		UserAgent: cfg.ChessCom.UserAgent,
		Logger:    logger,
	})
	store := cache.New(time.Duration(cfg.CacheTTL))

	clubSvc := appclubs.NewService(client, store, logger, recorder)
	matchSvc := appmatches.NewService(client, store, logger, recorder)
	playerSvc := appplayers.NewService(client, store, logger, recorder)

	sc := scraper.New(scraper.Config{
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.Scraper.Timeout)},
		UserAgent:  cfg.Scraper.UserAgent,
		Logger:     logger,
		Metrics:    recorder,
	})

	httpSrv := buildHTTPServer(cfg, store, clubSvc, matchSvc, playerSvc, sc, logger, recorder)

	return &Server{
		cfg:             cfg,
		logger:          logger,
		metrics:         recorder,
		store:           store,
		clubsService:    clubSvc,
		matchesService:  matchSvc,
		playersService:  playerSvc,
		httpServer:      httpSrv,
		metricsServer:   metricsSrv,
		metricsShutdown: metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, store *cache.Store, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, store *cache.Store, clubSvc *appclubs.Service, matchSvc *appmatches.Service, playerSvc *appplayers.Service, sc *scraper.Scraper, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(clubSvc, matchSvc, playerSvc, sc, logger)

	// The admin endpoint only mounts when a token is configured.
	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(store, cfg.AdminToken, logger)
	}
	router := handlers.NewRouter(handler, admin)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server and waits for context cancellation to shut down
// gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsShutdown != nil {
		if err := s.metricsShutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Cache exposes the cache store (useful for tests).
func (s *Server) Cache() *cache.Store {
	return s.store
}
