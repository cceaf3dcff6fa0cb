package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/internal/session"
	"github.com/SYK3S999/tamweeli-sub001/pkg/jwtutil"
	"github.com/SYK3S999/tamweeli-sub001/pkg/response"
)

type contextKey string

const (
	ctxUserID    contextKey = "user_id"
	ctxUserType  contextKey = "user_type"
	ctxSessionID contextKey = "session_id"
)

type AuthMiddleware struct {
	issuer   *jwtutil.Issuer
	sessions *session.Store
}

func NewAuthMiddleware(issuer *jwtutil.Issuer, sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer, sessions: sessions}
}

// RequireAuth verifies the bearer token and checks the session is still
// live, so logout revokes access before token expiry.
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Error(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}

		claims, err := am.issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		if _, err := am.sessions.Get(r.Context(), claims.SessionID); err != nil {
			response.Error(w, http.StatusUnauthorized, "Session expired or revoked")
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
		ctx = context.WithValue(ctx, ctxUserType, claims.UserType)
		ctx = context.WithValue(ctx, ctxSessionID, claims.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a subtree to the listed user types. Must run inside
// RequireAuth.
func RequireRole(types ...domain.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := UserType(r.Context())
			for _, t := range types {
				if current == t {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Error(w, http.StatusForbidden, "Insufficient role")
		})
	}
}

func UserID(ctx context.Context) string {
	v, _ := ctx.Value(ctxUserID).(string)
	return v
}

func UserType(ctx context.Context) domain.UserType {
	v, _ := ctx.Value(ctxUserType).(string)
	return domain.UserType(v)
}

func SessionID(ctx context.Context) string {
	v, _ := ctx.Value(ctxSessionID).(string)
	return v
}
