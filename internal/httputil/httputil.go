package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates a chi router with standard middleware (RequestID, RealIP, CORS, Timeout, Recoverer, Logger).
// Paths in restricted only accept cross-origin requests from allowedOrigin.
func NewRouter(log *slog.Logger, allowedOrigin string, timeout time.Duration, restricted ...string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(CORS(allowedOrigin, restricted...))
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}
	r.Use(Recoverer(log))
	r.Use(RequestLogger(log))

	return r
}

// WriteJSON writes a JSON response with proper headers.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// HealthHandler returns a simple health check endpoint.
func HealthHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			log.Warn("healthz write failed", "err", err)
		}
	}
}

// MetricsHandler exposes the default Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RequestLogger is a lightweight HTTP logger that uses slog.
func RequestLogger(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// Recoverer logs panics via slog and answers with a JSON 500.
func Recoverer(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error("panic recovered", "panic", rec, "path", r.URL.Path, "method", r.Method, "request_id", middleware.GetReqID(r.Context()))
					WriteJSON(w, http.StatusInternalServerError, ErrorBody{Error: http.StatusText(http.StatusInternalServerError)})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// Fail logs err and writes message as a JSON error response.
func Fail(log *slog.Logger, w http.ResponseWriter, message string, err error, status int) {
	log.Error(message, "err", err)
	if status == 0 {
		status = http.StatusInternalServerError
	}
	WriteJSON(w, status, ErrorBody{Error: message})
}
