package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/2beens/sporttracker/internal/telemetry/metrics"
	"github.com/2beens/sporttracker/pkg"
)

type panicResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// PanicRecovery turns a handler panic into a 500 JSON response, in the same
// shape the API uses for its own errors.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				log.Errorf("http: panic serving %s %s: %v\n%s", req.Method, req.URL.Path, rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}

				span := trace.SpanFromContext(req.Context())
				span.SetStatus(codes.Error, fmt.Sprintf("panic: %v", rec))

				pkg.WriteJSON(w, http.StatusInternalServerError, panicResponse{Error: "Internal server error"})
			}()

			next.ServeHTTP(w, req)
		})
	}
}
