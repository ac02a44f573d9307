package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Context keys for caller identification.
type contextKeyAPIKey struct{}
type contextKeyUserID struct{}

var (
	// ContextKeyAPIKey is exported for use in handlers.
	ContextKeyAPIKey = contextKeyAPIKey{}
	// ContextKeyUserID is exported for use in handlers.
	ContextKeyUserID = contextKeyUserID{}
)

// GetAPIKey retrieves the caller's API key from the context.
func GetAPIKey(ctx context.Context) string {
	key, ok := ctx.Value(ContextKeyAPIKey).(string)
	if !ok {
		return ""
	}
	return key
}

// GetUserID retrieves the authenticated user ID from the context.
func GetUserID(ctx context.Context) string {
	userID, ok := ctx.Value(ContextKeyUserID).(string)
	if !ok {
		return ""
	}
	return userID
}

// Identify attaches caller identity to the request context without ever
// rejecting: the API is public and identification only feeds usage
// analytics. The API key comes from the API-Key header or the apikey query
// parameter; a Bearer token, when present and valid, contributes the user
// ID from its subject claim.
func Identify(signingKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			apiKey := r.Header.Get("API-Key")
			if apiKey == "" {
				apiKey = r.URL.Query().Get("apikey")
			}
			if apiKey != "" {
				ctx = context.WithValue(ctx, ContextKeyAPIKey, apiKey)
			}

			if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && signingKey != "" {
				if subject, err := validateToken(token, signingKey); err != nil {
					logger.DebugContext(ctx, "ignoring invalid bearer token",
						"request_id", GetRequestID(ctx),
						"error", err,
					)
				} else {
					ctx = context.WithValue(ctx, ContextKeyUserID, subject)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateToken(tokenString, signingKey string) (string, error) {
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte(signingKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return "", err
	}
	return token.Claims.GetSubject()
}
