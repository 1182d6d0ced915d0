package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/krityagi/auth-service/internal/auth"
	"github.com/krityagi/auth-service/internal/session"
)

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext extracts the authenticated identity from context.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := cookie.Value

		// 2. Load session. A store failure is not "unauthenticated";
		// reporting 401 here would silently log users out whenever the
		// store blips.
		sess, err := a.Store.Get(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "session store unavailable", http.StatusInternalServerError)
			return
		}
		if sess == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3. Enforce session expiry even if the store misses the TTL
		if time.Now().After(sess.ExpiresAt) {
			_ = a.Store.Delete(r.Context(), sessionID)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 4. Attach the identity snapshot to context
		ctx := context.WithValue(r.Context(), identityKey, auth.Identity{
			Email: sess.Email,
			Name:  sess.Name,
			Role:  sess.Role,
		})

		// 5. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
