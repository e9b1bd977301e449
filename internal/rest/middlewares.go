package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// logRequests tags every request with a generated id and logs it on the
// way out.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		started := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithField("requestID", requestID).
			Debugf("%s %s handled in %s", r.Method, r.URL.Path, time.Since(started))
	})
}
