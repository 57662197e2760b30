package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/constants"
	apierrors "github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/errors"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/users"
)

// Context key for the authenticated user
type contextKey string

const currentUserKey contextKey = constants.ContextKeyUser

// SetCurrentUser stores the authenticated user in the context.
func SetCurrentUser(ctx context.Context, user *users.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// CurrentUserFromContext returns the authenticated user, or nil.
func CurrentUserFromContext(ctx context.Context) *users.User {
	if user, ok := ctx.Value(currentUserKey).(*users.User); ok {
		return user
	}
	return nil
}

// MiddlewareConfig holds configuration for the auth middleware.
type MiddlewareConfig struct {
	Auth *BasicAuth

	// ExcludedPaths bypass authentication (slash-tolerant exact match).
	ExcludedPaths []string

	// Errors writes the JSON error responses.
	Errors *apierrors.ErrorHandler
}

// Middleware enforces Basic authentication on all paths not excluded.
// Requests without usable credentials receive 401 with a WWW-Authenticate
// challenge; requests with wrong credentials receive 403.
func Middleware(config MiddlewareConfig) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !RequireAuth(r.URL.Path, config.ExcludedPaths) {
				next(w, r)
				return
			}

			user, err := config.Auth.CurrentUser(r.Context(), r)
			if err != nil {
				switch {
				case errors.Is(err, ErrMissingAuthorization),
					errors.Is(err, ErrInvalidScheme),
					errors.Is(err, ErrInvalidBase64),
					errors.Is(err, ErrMalformedCredentials):
					w.Header().Set(constants.HeaderWWWAuthenticate, constants.BasicRealm)
					config.Errors.WriteError(w, r, apierrors.NewUnauthorizedError("Unauthorized"))
				case errors.Is(err, ErrInvalidCredentials):
					config.Errors.WriteError(w, r, apierrors.NewForbiddenError("Forbidden"))
				default:
					config.Errors.WriteErrorFromError(w, r, err)
				}
				return
			}

			next(w, r.WithContext(SetCurrentUser(r.Context(), user)))
		}
	}
}
