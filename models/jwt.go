package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWT = struct {
	AUTHORIZATION_HEADER string
	BEARER_PREFIX        string
	ID_TOKEN_PARAM       string
}{
	AUTHORIZATION_HEADER: "Authorization",
	BEARER_PREFIX:        "Bearer ",
	ID_TOKEN_PARAM:       "id_token",
}

// sessionTokenLeeway absorbs clock skew between the platform and this server.
const sessionTokenLeeway = 5 * time.Second

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims are the claims of a platform session token.
// iss is the shop admin URL, dest the shop URL and aud the app's API key.
type SessionClaims struct {
	Dest      string `json:"dest"`
	SessionID string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// Session is the authenticated caller of an admin request.
type Session struct {
	Shop      string `json:"shop"`
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

// ValidateSessionToken verifies an HS256 session token signed with secret and
// issued for apiKey, and returns the session it carries.
func ValidateSessionToken(tokenString string, apiKey string, secret string) (Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(apiKey),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(sessionTokenLeeway),
	)
	if err != nil || !token.Valid {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	dest, err := url.Parse(claims.Dest)
	if err != nil || dest.Scheme != "https" || dest.Host == "" {
		return Session{}, fmt.Errorf("%w: bad dest claim %q", ErrInvalidSessionToken, claims.Dest)
	}

	iss, err := url.Parse(claims.Issuer)
	if err != nil || iss.Host != dest.Host {
		return Session{}, fmt.Errorf("%w: issuer %q does not match dest %q", ErrInvalidSessionToken, claims.Issuer, claims.Dest)
	}

	return Session{
		Shop:      dest.Host,
		UserID:    claims.Subject,
		SessionID: claims.SessionID,
	}, nil
}
