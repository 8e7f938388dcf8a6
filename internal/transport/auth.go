package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type memberKey struct{}

// MemberResolver resolves a member ID from a bearer token.
type MemberResolver interface {
	ResolveMember(ctx context.Context, token string) (string, error)
}

// MemberFromContext returns the member ID from context, if present.
func MemberFromContext(ctx context.Context) (string, bool) {
	memberID, ok := ctx.Value(memberKey{}).(string)
	return memberID, ok
}

// WithMember returns a context carrying the member ID. Exposed for tests
// that exercise handlers without the middleware.
func WithMember(ctx context.Context, memberID string) context.Context {
	return context.WithValue(ctx, memberKey{}, memberID)
}

// AuthMiddleware enforces bearer token authentication.
func AuthMiddleware(resolver MemberResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			memberID, err := resolver.ResolveMember(r.Context(), token)
			if err != nil || memberID == "" {
				http.Error(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), memberKey{}, memberID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
