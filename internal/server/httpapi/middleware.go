package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/mhartwell/equinesocial/internal/common"
	"github.com/mhartwell/equinesocial/internal/server/auth"
)

type contextKey int

const principalKey contextKey = iota

// PrincipalFromContext returns the authenticated user id, if any.
func PrincipalFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(principalKey).(int64)
	return id, ok
}

// principalID returns the authenticated user id or 0 for anonymous requests.
func principalID(ctx context.Context) int64 {
	id, _ := PrincipalFromContext(ctx)
	return id
}

func (s *Server) principalFromCookie(r *http.Request) (int64, error) {
	cookie, err := r.Cookie(common.SessionCookieName)
	if err != nil {
		return 0, common.ErrorUnauthorized
	}

	userID, err := auth.GetUserIDFromToken(cookie.Value, s.secretKey)
	if err != nil {
		return 0, common.ErrorUnauthorized
	}

	return userID, nil
}

// requireAuth rejects requests without a valid session cookie.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.principalFromCookie(r)
		if err != nil {
			writeError(w, common.ErrorUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), principalKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth attaches the principal when a valid session cookie is present
// and lets the request through either way.
func (s *Server) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, err := s.principalFromCookie(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), principalKey, userID))
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
