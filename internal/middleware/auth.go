package middleware

import (
	"context"
	"net/http"

	"github.com/rdiego26/muti-user-task-manager-api/internal/session"
)

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

type AuthMiddleware struct {
	Sessions *session.Service
}

func NewAuthMiddleware(sessions *session.Service) *AuthMiddleware {
	return &AuthMiddleware{Sessions: sessions}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read bearer token header
		token := r.Header.Get(session.TokenHeader)
		if token == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 2. Resolve session; expiry is enforced by the lookup itself
		sess, err := a.Sessions.FindActiveToken(r.Context(), token)
		if err != nil || sess == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3. Attach user_id to context
		ctx := context.WithValue(r.Context(), userIDKey, sess.UserID)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
