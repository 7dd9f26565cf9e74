package http

import (
	"context"
	"net/http"

	"phishguard/internal/logger"
	"phishguard/internal/session"
)

type ctxKey int

const sessionCtxKey ctxKey = iota

// requireSession is the login gate for the HTML pages. Anonymous visitors
// (no cookie, expired token, bad signature) are redirected to /login; for
// authenticated ones the decoded session is stored in the request context.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sess, err := h.sessions.FromRequest(r)
		if err != nil || !sess.Authenticated() {
			log.Debug().Str("uri", r.RequestURI).Msg("unauthenticated, redirecting to login")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromContext returns the session stored by requireSession or
// apiAuth. The zero session is returned when no middleware ran.
func sessionFromContext(ctx context.Context) session.Session {
	sess, _ := ctx.Value(sessionCtxKey).(session.Session)
	return sess
}
