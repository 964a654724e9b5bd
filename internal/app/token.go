package app

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the scheme clients put in front of the token.
const TokenType = "Bearer"

var (
	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("token not valid")
	// ErrTokenExpired indicates a well-signed token past its expiration.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the payload of a bearer token.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Token is the login response body.
type Token struct {
	Type      string `json:"token_type"`
	Value     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

func (s *AuthService) issueToken(userID int64, email string) (*Token, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &Token{Type: TokenType, Value: signed, ExpiresIn: int64(s.ttl / time.Second)}, nil
}

// VerifyToken checks the signature and expiry of a token and returns its
// claims. It never touches the store.
func (s *AuthService) VerifyToken(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case err != nil, !parsed.Valid:
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
