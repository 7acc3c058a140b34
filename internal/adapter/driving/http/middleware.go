package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "potcatalog_http_requests_total",
		Help: "HTTP requests served, by method and status code.",
	},
	[]string{"method", "code"},
)

// responseRecorder remembers the status written by the handler.
type responseRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (rr *responseRecorder) WriteHeader(status int) {
	if !rr.wrote {
		rr.status = status
		rr.wrote = true
	}
	rr.ResponseWriter.WriteHeader(status)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	rr.wrote = true
	return rr.ResponseWriter.Write(b)
}

// ApplyMiddleware wraps next so every request is logged and counted, and a
// handler panic becomes a 500 instead of a dropped connection.
func ApplyMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	return requestLog(logger, recoverPanics(logger, next))
}

func requestLog(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		httpRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()

		// Probes and scrapes would drown the log at info.
		level := slog.LevelInfo
		switch {
		case rec.status >= http.StatusInternalServerError:
			level = slog.LevelError
		case r.URL.Path == "/metrics" || r.URL.Path == "/api/v1/health":
			level = slog.LevelDebug
		}
		logger.Log(r.Context(), level, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// recoverPanics turns a handler panic into a 500. If the handler had already
// started the response, the panic is only logged.
func recoverPanics(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := w.(*responseRecorder)
		if !ok {
			rec = &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		}

		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.Error("handler panic",
				"panic", v,
				"method", r.Method,
				"path", r.URL.Path,
				"response_started", rec.wrote,
			)
			if !rec.wrote {
				writeError(rec, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
