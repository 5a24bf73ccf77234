package utils

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const UserIDKey contextKey = "userID"

// SessionCookie is the cookie the login handler sets and the cookie
// resolver reads. It carries the same JWT as the Authorization header.
const SessionCookie = "fintrack_session"

// GetUserIDFromContext returns the owner identity resolved by RequireAuth.
func GetUserIDFromContext(r *http.Request) (uint, error) {
	userID, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		return 0, errors.New("user ID not found in context")
	}
	return userID, nil
}

// IdentityResolver turns an incoming request into an owner identity.
// Exactly one resolver is active per deployment; every protected route
// consumes the identity it produces and never re-derives it.
type IdentityResolver interface {
	Resolve(r *http.Request) (uint, error)
}

// BearerResolver reads a JWT from the Authorization header.
type BearerResolver struct {
	Secret []byte
}

func (b BearerResolver) Resolve(r *http.Request) (uint, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return 0, ErrUnauthorized
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	return parseToken(tokenString, b.Secret)
}

// CookieResolver reads the same JWT from the session cookie instead of the
// Authorization header, for browser deployments that rely on cookies.
type CookieResolver struct {
	Secret []byte
}

func (c CookieResolver) Resolve(r *http.Request) (uint, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return 0, ErrUnauthorized
	}
	return parseToken(cookie.Value, c.Secret)
}

func parseToken(tokenString string, secret []byte) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrUnauthorized
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrUnauthorized
	}
	return uint(userID), nil
}

// ResolverForMode picks the resolver for the configured auth mode.
// Defaults to bearer tokens.
func ResolverForMode(mode string, secret []byte) IdentityResolver {
	if mode == "cookie" {
		return CookieResolver{Secret: secret}
	}
	return BearerResolver{Secret: secret}
}

// Middleware wraps a handler func, typically with an auth check.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// RequireAuth resolves the owner identity once and injects it into the
// request context, rejecting the request with 401 when resolution fails.
func RequireAuth(resolver IdentityResolver) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			userID, err := resolver.Resolve(r)
			if err != nil {
				WriteError(w, ErrUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next(w, r.WithContext(ctx))
		}
	}
}
