// Package token issues and verifies the signed access and refresh tokens.
// The two kinds are signed with independent secrets so a leaked secret for
// one cannot forge the other.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification,
// whether the signature is wrong or the token has expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the authenticated user id alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Service is stateless; issuing a token has no side effects.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewService(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// IssueAccessToken produces a short-lived token embedding userID.
func (s *Service) IssueAccessToken(userID string) (string, error) {
	return sign(userID, s.accessSecret, s.accessExpiry)
}

// IssueRefreshToken produces a long-lived token embedding userID. Validity
// additionally requires an exact match against the token stored on the user
// record, which is how logout revokes it.
func (s *Service) IssueRefreshToken(userID string) (string, error) {
	return sign(userID, s.refreshSecret, s.refreshExpiry)
}

// VerifyAccessToken returns the embedded user id or ErrInvalidToken.
func (s *Service) VerifyAccessToken(tokenString string) (string, error) {
	return verify(tokenString, s.accessSecret)
}

// VerifyRefreshToken returns the embedded user id or ErrInvalidToken.
func (s *Service) VerifyRefreshToken(tokenString string) (string, error) {
	return verify(tokenString, s.refreshSecret)
}

func sign(userID string, secret []byte, expiry time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}

func verify(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
