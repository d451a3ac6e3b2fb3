package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/forum-api/forum-api/shared/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIdHeader = "X-Request-Id"

type ctxKeyRequestId struct{}

func RequestIdFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestId{}).(string)
	return v
}

// RequestId reuses the caller's X-Request-Id or generates one.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get(RequestIdHeader))
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, rid)
		ctx := context.WithValue(r.Context(), ctxKeyRequestId{}, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// AccessLog writes one line per request.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", RequestIdFromContext(r.Context())),
		)
	})
}
