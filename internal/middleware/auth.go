package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/sporttracker/internal/telemetry/tracing"
	"github.com/2beens/sporttracker/pkg"
)

const CronSecretHeader = "X-Cron-Secret"

// BearerTokenAuth lets through requests carrying "Authorization: Bearer <token>"
// where token matches the bcrypt tokenHash. An empty tokenHash rejects everything.
func BearerTokenAuth(tokenHash string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.bearerAuth")
			defer span.End()

			if r.Method == http.MethodOptions {
				span.SetStatus(codes.Ok, "options-ok")
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if tokenHash == "" || !pkg.CheckTokenHash(token, tokenHash) {
				reqIp := pkg.ReadUserIP(r)
				log.Warnf("[invalid token] [auth middleware] unauthorized %s request from %s", r.URL.Path, reqIp)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

// SharedSecret lets through requests whose header value equals secret.
// An empty secret rejects everything.
func SharedSecret(header, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.sharedSecret")
			defer span.End()

			given := r.Header.Get(header)
			if secret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
				reqIp := pkg.ReadUserIP(r)
				log.Warnf("[invalid secret] unauthorized %s request from %s", r.URL.Path, reqIp)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-secret")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
