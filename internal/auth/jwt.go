package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and validates HS256 session tokens.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManager creates a new JWT manager. secret must be at least 32
// characters.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// sessionClaims carries the user's email as subject and the admin flag.
type sessionClaims struct {
	jwt.RegisteredClaims
	Admin bool `json:"admin,omitempty"`
}

// GenerateToken signs a session token for id and returns it with its
// expiry time.
func (m *JWTManager) GenerateToken(id Identity) (string, time.Time, error) {
	if id.Email == "" {
		return "", time.Time{}, errors.New("token subject is empty")
	}

	now := time.Now()
	expires := now.Add(m.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Admin: id.Admin,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// ValidateToken parses a session token and returns the identity it carries.
func (m *JWTManager) ValidateToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token claims")
	}
	if claims.Subject == "" {
		return Identity{}, errors.New("token subject is empty")
	}

	return Identity{Email: claims.Subject, Admin: claims.Admin}, nil
}
