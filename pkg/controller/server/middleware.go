package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

const requestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds a caller supplied request ID; longer ones are replaced.
const maxRequestIDLength = 128

func requestContext(r *http.Request) (types.RequestID, *slog.Logger, *http.Request) {
	ctx := r.Context()
	if id := r.Header.Get(requestIDHeader); id != "" && len(id) <= maxRequestIDLength {
		ctx = logging.CtxWithRequestID(ctx, types.RequestID(id))
	}
	reqID, ctx := logging.CtxRequestID(ctx)
	logger := logging.Default().With(slog.String("request_id", string(reqID)))
	return reqID, logger, r.WithContext(logging.With(ctx, logger))
}

// preProcess attaches a request scoped logger and request ID, echoes the ID to the
// caller and writes an access log.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, logger, r := requestContext(r)
		w.Header().Set(requestIDHeader, string(reqID))

		lw := &statusCodeLogger{ResponseWriter: w, statusCode: http.StatusOK}
		requestedAt := time.Now()
		next.ServeHTTP(lw, r)

		level := slog.LevelInfo
		if lw.statusCode >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(r.Context(), level, "http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
