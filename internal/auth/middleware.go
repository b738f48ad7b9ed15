package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/session"
)

// Middleware gates protected handlers on a valid session cookie.
type Middleware struct {
	service *Service
}

// NewMiddleware constructs Middleware over the auth service.
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth resolves the session cookie to a user and attaches it to the
// request context, or rejects the request with 401.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			unauthorized(w)
			return
		}

		user, err := m.service.Authenticate(r.Context(), cookie.Value)
		if errors.Is(err, domain.ErrUnauthorized) {
			unauthorized(w)
			return
		}
		// Store connectivity failures are not the client's fault.
		if err != nil {
			serverError(w)
			return
		}
		if user == nil {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"type":   "unauthorized",
		"detail": "missing or invalid session",
	})
}

func serverError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"type":   "server_error",
		"detail": "session lookup failed",
	})
}
