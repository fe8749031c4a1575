package identity

import (
	"crypto/ecdsa"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenVerifier verifies identity-provider access tokens and returns the
// subject id (the Privy DID) of the caller.
type TokenVerifier interface {
	VerifyAccessToken(tokenString string) (string, error)
}

// PrivyTokenVerifier verifies ES256 access tokens issued by Privy
type PrivyTokenVerifier struct {
	appID string
	key   *ecdsa.PublicKey
}

// NewPrivyTokenVerifier creates a verifier from the app id and the
// PEM-encoded verification key published for the app.
func NewPrivyTokenVerifier(appID, verificationKeyPEM string) (*PrivyTokenVerifier, error) {
	key, err := jwt.ParseECPublicKeyFromPEM([]byte(verificationKeyPEM))
	if err != nil {
		return nil, err
	}
	return &PrivyTokenVerifier{appID: appID, key: key}, nil
}

// VerifyAccessToken validates the token signature and claims and returns
// the subject id
func (v *PrivyTokenVerifier) VerifyAccessToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, ErrInvalidToken
		}
		return v.key, nil
	}, jwt.WithAudience(v.appID), jwt.WithIssuer("privy.io"))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
