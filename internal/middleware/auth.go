package middleware

import (
	"context"
	"slices"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/roommates/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// PersonIDKey is the context key for the authenticated person ID.
	PersonIDKey contextKey = "person_id"
	// UsernameKey is the context key for the authenticated username.
	UsernameKey contextKey = "username"
)

// GetPersonID extracts the person ID from the context.
// Returns 0 if not found.
func GetPersonID(ctx context.Context) int64 {
	id, _ := ctx.Value(PersonIDKey).(int64)
	return id
}

// GetUsername extracts the username from the context.
// Returns empty string if not found.
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(UsernameKey).(string)
	return username
}

// WithPerson returns a context carrying the authenticated person.
func WithPerson(ctx context.Context, personID int64, username string) context.Context {
	ctx = context.WithValue(ctx, PersonIDKey, personID)
	return context.WithValue(ctx, UsernameKey, username)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// RequireAuth returns an interceptor that validates the bearer token and
// adds the person to the request context. Procedures listed in public are
// let through without a token.
func RequireAuth(jwtManager *auth.JWTManager, public ...string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if slices.Contains(public, req.Spec().Procedure) {
				return next(ctx, req)
			}

			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}
			personID, err := claims.PersonID()
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			return next(WithPerson(ctx, personID, claims.Username), req)
		}
	}
}
