package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

// TokenVerifier validates the signed login tokens used by the
// verification-link flow (e.g. a pending second-factor email link).
type TokenVerifier struct {
	secret   []byte
	issuer   string
	audience string
	clock    clockwork.Clock
}

// NewTokenVerifier builds a verifier bound to the website origin: issuer is
// the website URL, audience its login page.
func NewTokenVerifier(secret, websiteURL string, clock clockwork.Clock) *TokenVerifier {
	return &TokenVerifier{
		secret:   []byte(secret),
		issuer:   websiteURL,
		audience: websiteURL + "/auth/login",
		clock:    clock,
	}
}

// VerifyLoginToken checks the token's signature and claims and returns the
// email claim. Only HS256 is accepted; any other algorithm, a bad signature,
// or a wrong issuer/audience fails verification. A valid token without an
// email claim returns ErrMissingEmailClaim.
func (v *TokenVerifier) VerifyLoginToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithTimeFunc(v.clock.Now),
	)
	if err != nil {
		return "", fmt.Errorf("failed to verify login token: %w", err)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrMissingEmailClaim
	}

	return email, nil
}
