package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"chess-league-service/internal/http/requestutil"
	"chess-league-service/internal/logging"
	"chess-league-service/internal/metrics"
)

// LoggingMiddleware wraps the handler with request logging, request ID support, and metrics.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get("X-Request-ID"))
		w.Header().Set("X-Request-ID", reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = withRequestID(ctx, reqID)
		r = r.WithContext(ctx)
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		if recorder != nil {
			recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), ww.status, duration)
		}

		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

// RequestIDFromContext extracts the request ID stored by the logging middleware.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type requestIDKey struct{}

// normalizePath collapses resource IDs out of paths so metrics keep a bounded
// label set.
func normalizePath(path string) string {
	path = strings.Split(path, "?")[0]
	switch {
	case path == "" || path == "/health" || path == "/ready" || path == "/directory":
		return path
	case strings.HasPrefix(path, "/clubs/"):
		if strings.HasSuffix(path, "/matches") {
			return "/clubs/:id/matches"
		}
		return "/clubs/:id"
	case strings.HasPrefix(path, "/matches/"):
		return "/matches/:id"
	case strings.HasPrefix(path, "/players/"):
		return "/players/:username/matches"
	case strings.HasPrefix(path, "/directory/"):
		return "/directory/:season"
	default:
		return path
	}
}
