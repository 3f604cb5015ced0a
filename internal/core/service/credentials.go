package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// tokenClaims keeps the {"user":{"id":...}} payload the web client decodes.
type tokenClaims struct {
	User tokenUser `json:"user"`
	jwt.RegisteredClaims
}

type tokenUser struct {
	ID string `json:"id"`
}

// Credentials hashes passwords with bcrypt and signs HS256 tokens.
type Credentials struct {
	secret   []byte
	tokenTTL time.Duration
	cost     int
	now      func() time.Time
}

func NewCredentials(secret string, tokenTTL time.Duration, bcryptCost int) (*Credentials, error) {
	if secret == "" {
		return nil, errors.New("credentials: signing secret is empty")
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost < bcrypt.DefaultCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Credentials{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		cost:     bcryptCost,
		now:      time.Now,
	}, nil
}

func (c *Credentials) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), c.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (c *Credentials) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (c *Credentials) IssueToken(userID string) (string, error) {
	now := c.now()
	claims := tokenClaims{
		User: tokenUser{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken returns the user ID carried by token, or domain.ErrInvalidToken.
func (c *Credentials) VerifyToken(token string) (string, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}
	if claims.User.ID == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.User.ID, nil
}
