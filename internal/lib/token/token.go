// Package token mints and verifies event-scoped volunteer authorization tokens.
// A token is an HS256 JWT carrying the volunteer email as subject and the event id.
// Nothing is persisted: possession of an unexpired token is the capability.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "synergy"

var (
	ErrInvalidToken = errors.New("invalid or expired event token")
	ErrEmptySecret  = errors.New("token secret is empty")
)

type Claims struct {
	EventID string `json:"event_id"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Issuer)

func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

func NewIssuer(secret string, ttl time.Duration, opts ...Option) (*Issuer, error) {
	const op = "lib.token.NewIssuer"

	if secret == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptySecret)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%s: ttl must be positive, got %s", op, ttl)
	}

	i := &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue returns the signed token and its expiry instant.
func (i *Issuer) Issue(subject, eventID string) (string, time.Time, error) {
	const op = "lib.token.Issue"

	now := i.now()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		EventID: eventID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expiresAt, nil
}

// Verify fails closed: every parse, signature, algorithm, issuer or expiry
// problem is reported as ErrInvalidToken.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.EventID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing event or subject", ErrInvalidToken)
	}

	return claims, nil
}
