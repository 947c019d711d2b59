package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/justsurfingit/Campus-Job-Board/internal/apperr"
)

// TokenTTL matches the 7-day tokens the clients expect.
const TokenTTL = 7 * 24 * time.Hour

// TokenProvider issues and parses the bearer tokens attached as
// "Authorization: Bearer <token>". The rest of the core treats tokens as
// opaque.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenProvider(secret string) *TokenProvider {
	return &TokenProvider{secret: []byte(secret), ttl: TokenTTL}
}

func (p *TokenProvider) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": strconv.FormatInt(userID, 10),
		"iat":    now.Unix(),
		"exp":    now.Add(p.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", apperr.New(apperr.CodeInternal, "failed to sign token", err)
	}
	return signed, nil
}

func (p *TokenProvider) Parse(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperr.New(apperr.CodeUnauthorized, "invalid token", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.New(apperr.CodeUnauthorized, "invalid token claims", nil)
	}
	raw, ok := claims["userId"].(string)
	if !ok {
		return 0, apperr.New(apperr.CodeUnauthorized, "invalid token claims", nil)
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.New(apperr.CodeUnauthorized, "invalid user id in token", err)
	}
	return userID, nil
}
