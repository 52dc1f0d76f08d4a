// Package token issues and verifies the signed bearer tokens that carry a
// user's identity claim. Tokens are stateless: nothing is stored server-side,
// and a verified claim is the snapshot embedded at issuance. If an account
// changes after a token is issued, the token keeps the old claim until it
// expires; this is a deliberate consistency tradeoff, not a defect.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/servtech/authd/internal/common"
)

// ErrNoSecret reports that no signing secret was configured. Constructors
// returning this must abort the process; it is never a per-request condition.
var ErrNoSecret = errors.New("token: no signing secret configured")

// Identity is the claim payload embedded in every token.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Claims is the on-the-wire JWT claim set: the identity plus the registered
// time claims and a unique token id.
type Claims struct {
	jwt.RegisteredClaims
	Identity
}

// Service signs and verifies tokens with a symmetric HS256 secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token Service. An empty secret yields ErrNoSecret.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying id, valid from now until now+ttl.
func (s *Service) Issue(id Identity) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Identity: id,
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// A bad signature, a malformed token, an unexpected signing algorithm and an
// expired token all collapse into common.ErrInvalidToken.
func (s *Service) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !t.Valid {
		return Identity{}, common.ErrInvalidToken
	}

	return claims.Identity, nil
}
