package middleware

import (
	"context"
	"net/http"

	"github.com/tanish-jain-225/hotel-management-system/internal/session"
	"github.com/tanish-jain-225/hotel-management-system/pkg/config"
	"github.com/tanish-jain-225/hotel-management-system/pkg/logger"
)

type sessionCtxKey struct{}

// Session is the single boundary adapter for the client-persisted session
// token: it reads the cookie, mints a token on first cart access, and puts
// the value on the request context. Business logic below this point always
// receives the token as an explicit parameter.
func Session(cfg config.SessionConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				token = cookie.Value
			}
			if token == "" {
				token = session.Mint()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(cfg.CookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   cfg.CookieSecure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, token)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the session token placed by Session, or "".
func SessionIDFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(sessionCtxKey{}).(string); ok {
		return token
	}
	return ""
}
