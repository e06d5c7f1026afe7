package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

type accessLogKey struct{}

// accessLog collects request facts learned by inner middleware.
type accessLog struct {
	user string
}

// noteUser records the authenticated user for the access log line.
func noteUser(ctx context.Context, user string) {
	if l, ok := ctx.Value(accessLogKey{}).(*accessLog); ok {
		l.user = user
	}
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, request id and the caller's identity.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			entry := &accessLog{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), accessLogKey{}, entry)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if entry.user != "" {
				attrs = append(attrs, slog.String("user", entry.user))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
