package middleware

import (
	"context"
	"net/http"
	"strings"

	"messages/internal/service"
)

type contextKey int

const identityKey contextKey = 0

// Identity resolves an optional bearer token into the request context.
// Requests without a usable token simply proceed unauthenticated; the
// handlers decide whether that is acceptable for the route.
func Identity(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := BearerToken(r); token != "" {
				identity, err := auth.ResolveToken(token)
				if err == nil && identity != nil {
					ctx := context.WithValue(r.Context(), identityKey, identity)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFrom returns the authenticated identity of the request, or
// nil when the caller is anonymous.
func IdentityFrom(ctx context.Context) *service.Identity {
	identity, _ := ctx.Value(identityKey).(*service.Identity)
	return identity
}

// BearerToken extracts the token of an "Authorization: Bearer" header,
// or "" when the header is absent or differently shaped.
func BearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
