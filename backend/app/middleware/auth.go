package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "helpdesk/backend/app/jwt"
	"helpdesk/backend/app/session"
)

type ctxKey int

const ClaimsKey ctxKey = 1

// SessionCookie is the name of the httpOnly cookie carrying the session
// token.
const SessionCookie = "session"

type Auth struct {
	Signer   *jwtutil.Signer
	Sessions session.Store
}

// TokenFromRequest extracts the session token from the Authorization header
// or the session cookie, in that order.
func TokenFromRequest(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			unauthorized(w)
			return
		}
		claims, err := a.Signer.Parse(token)
		if err != nil {
			unauthorized(w)
			return
		}
		uid, ok, err := a.Sessions.UserID(r.Context(), claims.ID)
		if err != nil || !ok || uid != claims.UserID {
			unauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"No autorizado"}`))
}
