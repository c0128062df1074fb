// Package identity verifies the signed tokens the identity provider issues
// and mints the session cookies derived from them. Tokens are HS256 JWTs with
// a typ claim discriminating ID tokens from session cookies.
package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Verifier struct {
	Secret     []byte
	Issuer     string
	SessionTTL time.Duration
}

// VerifyIDToken checks signature, issuer, expiry and typ, and returns the
// subject identifier.
func (v Verifier) VerifyIDToken(raw string) (string, error) {
	return v.verify(raw, "id")
}

// CreateSessionCookie exchanges a valid ID token for a session token with its
// own expiry. The subject carries over unchanged.
func (v Verifier) CreateSessionCookie(idToken string) (string, error) {
	subject, err := v.VerifyIDToken(idToken)
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"iss": v.Issuer,
		"sub": subject,
		"typ": "session",
		"iat": now.Unix(),
		"exp": now.Add(v.SessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.Secret)
}

// VerifySessionCookie validates a session token and returns its subject.
func (v Verifier) VerifySessionCookie(raw string) (string, error) {
	return v.verify(raw, "session")
}

func (v Verifier) verify(raw, typ string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return v.Secret, nil
	}, jwt.WithIssuer(v.Issuer), jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims["typ"] != typ {
		return "", ErrInvalidToken
	}
	subject, _ := claims["sub"].(string)
	if subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}

// SignIDToken mints an ID token the way the identity provider would. The
// relay never calls this; it exists for provisioning and tests.
func (v Verifier) SignIDToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"iss": v.Issuer,
		"sub": subject,
		"typ": "id",
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.Secret)
}
