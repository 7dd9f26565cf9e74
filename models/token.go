package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT claim set carried by the client-held session
// token. The same claims travel either in the session cookie (HTML pages)
// or in the "Authorization: Bearer" header (JSON API).
//
// The server keeps no session table: everything the application needs to
// know about a visitor between requests lives in these signed claims.
type SessionClaims struct {
	jwt.RegisteredClaims

	// User is the authenticated login, empty for anonymous visitors.
	User string `json:"user,omitempty"`

	// LastPrediction is the most recent classification outcome for this
	// session (0 legitimate, 1 phishing). Nil until the first prediction.
	LastPrediction *int `json:"last_prediction,omitempty"`
}

// Token wraps the parsed JWT together with its compact serialized form.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims holds the decoded session claim set.
	Claims SessionClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
