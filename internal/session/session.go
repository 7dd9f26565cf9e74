// Package session implements the client-held session state: a signed JWT
// carrying the authenticated login and the last prediction outcome. The
// token travels in a cookie on the HTML surface and as a Bearer header on
// the JSON API; the server keeps no session table.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"phishguard/internal/config"
	"phishguard/models"
)

// Session is the decoded per-client state threaded through request
// handlers. The zero value is an anonymous session.
type Session struct {
	// User is the authenticated login, empty for anonymous visitors.
	User string

	// LastPrediction is the most recent classification outcome, nil until
	// the first successful predict in this session.
	LastPrediction *models.Prediction
}

// Authenticated reports whether an identity is present.
func (s Session) Authenticated() bool {
	return s.User != ""
}

// LastResult returns the most recent outcome, or ErrNoResult if no
// prediction has been made in this session.
func (s Session) LastResult() (models.Prediction, error) {
	if s.LastPrediction == nil {
		return 0, ErrNoResult
	}
	return *s.LastPrediction, nil
}

// SetLastResult records the most recent outcome.
func (s *Session) SetLastResult(pred models.Prediction) {
	s.LastPrediction = &pred
}

// Manager signs and verifies session tokens with a process-wide secret.
// All fields are read-only after construction, so a single Manager is
// shared by every request.
type Manager struct {
	signKey    string
	issuer     string
	ttl        time.Duration
	cookieName string
}

// NewManager constructs a Manager from the application config.
func NewManager(cfg config.App) *Manager {
	return &Manager{
		signKey:    cfg.TokenSignKey,
		issuer:     cfg.TokenIssuer,
		ttl:        cfg.TokenDuration,
		cookieName: cfg.SessionCookie,
	}
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Issue signs the given session state into a fresh token.
func (m *Manager) Issue(sess Session) (models.Token, error) {
	now := time.Now()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		User: sess.User,
	}
	if sess.LastPrediction != nil {
		last := int(*sess.LastPrediction)
		claims.LastPrediction = &last
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing session token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, Claims: claims}, nil
}

// Parse verifies the signature, issuer, and expiry of a raw token string
// and returns the decoded session. Any validation failure is normalised to
// ErrNoSession so callers treat the client as anonymous.
func (m *Manager) Parse(tokenString string) (Session, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(m.signKey), nil
	}, jwt.WithIssuer(m.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrNoSession, err)
	}

	sess := Session{User: claims.User}
	if claims.LastPrediction != nil {
		pred := models.Prediction(*claims.LastPrediction)
		sess.LastPrediction = &pred
	}

	return sess, nil
}

// Write signs the session and sets it as the session cookie on the
// response. Called after login and after every successful prediction.
func (m *Manager) Write(w http.ResponseWriter, sess Session) error {
	token, err := m.Issue(sess)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl.Seconds()),
	})

	return nil
}

// FromRequest extracts and verifies the session cookie. A missing, expired
// or otherwise invalid cookie yields ErrNoSession.
func (m *Manager) FromRequest(r *http.Request) (Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return Session{}, ErrNoSession
	}

	return m.Parse(cookie.Value)
}

// Clear expires the session cookie, dropping both the authenticated
// identity and the last prediction result.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
