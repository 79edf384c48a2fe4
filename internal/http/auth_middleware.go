package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Ujjawall12/HackOnHills7.0/internal/domain"
	"github.com/Ujjawall12/HackOnHills7.0/internal/service/auth"
)

type authContextKey string

const contextKeyUser authContextKey = "manhattan-auth-user"

type contextSetter interface {
	SetContext(context.Context)
}

// requireAuth ensures the request carries a valid bearer token before the
// handler runs. The resolved user is attached to the request context. Every
// rejection reads the same to the client; the reason stays in the logs.
func (r *Router) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		raw, err := bearerToken(req.Header.Get("Authorization"))
		if err != nil {
			r.logger.Warn("authorization header invalid", "error", err, "path", req.URL.Path)
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		user, err := r.auth.Authorize(req.Context(), raw)
		if err != nil {
			if !errors.Is(err, auth.ErrUnauthenticated) {
				r.logger.Error("authorization lookup failed", "error", err, "path", req.URL.Path)
				writeError(w, http.StatusInternalServerError, "Server error")
				return
			}
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		ctx := context.WithValue(req.Context(), contextKeyUser, user)
		if setter, ok := w.(contextSetter); ok {
			setter.SetContext(ctx)
		}
		next(w, req.WithContext(ctx))
	}
}

// userFromContext extracts the guard-resolved user from context.
func userFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(contextKeyUser).(*domain.User)
	return user, ok
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}
