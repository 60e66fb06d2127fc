package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// webhook updates are small, anything bigger than this is not worth reading
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest discards up to maxDrainBytes of unread request body after
// the handler returns, then closes the body.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			if n, err := io.CopyN(io.Discard, r.Body, maxDrainBytes); err == nil && n == maxDrainBytes {
				log.Tracef("request body of %s %s not fully drained", r.Method, r.URL.Path)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("close request body: %s", err)
			}
		})
	}
}
