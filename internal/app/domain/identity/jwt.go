// Package identity issues the signed cookie token that scopes saved trips to
// one browser. There are no accounts; the token subject is a random UUID.
package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName = "planner_token"
	issuer     = "tamilnadu-explorer"
	// DefaultTTL keeps a browser's trips reachable for a year.
	DefaultTTL = 365 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid planner token")

type Claims struct {
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue creates a new planner id and its signed token.
func (s *TokenService) Issue() (plannerID, token string, err error) {
	plannerID = uuid.NewString()
	token, err = s.sign(plannerID)
	if err != nil {
		return "", "", err
	}
	return plannerID, token, nil
}

func (s *TokenService) sign(plannerID string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   plannerID,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign planner token: %w", err)
	}
	return signed, nil
}

// Validate returns the planner id carried by token.
func (s *TokenService) Validate(token string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("%w: subject is not a planner id", ErrInvalidToken)
	}
	return claims.Subject, nil
}
