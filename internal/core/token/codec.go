// Package token encodes member identifiers into signed, stateless bearer
// tokens and verifies them back. Tokens carry a single business claim,
// memberId, signed HS256 with a process-wide key derived from the configured
// secret.
package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/memberhub/member-api/internal/core/domain"
)

const memberIDClaim = "memberId"

// Codec signs and verifies access tokens.
type Codec struct {
	key []byte
	ttl time.Duration
}

// NewCodec builds a Codec from the shared signing secret. A ttl of zero
// issues tokens without an expiry claim.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{key: []byte(secret), ttl: ttl}
}

// Encode issues a compact, URL-safe token for the given member id.
func (c *Codec) Encode(memberID int64) (string, error) {
	claims := jwt.MapClaims{memberIDClaim: memberID}
	if c.ttl > 0 {
		claims["exp"] = time.Now().Add(c.ttl).Unix()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Decode verifies a token and extracts the member id. Every failure mode
// (blank input, wrong algorithm, bad signature, expired or malformed token,
// missing or non-numeric claim) collapses to domain.ErrInvalidToken.
func (c *Codec) Decode(tokenString string) (int64, error) {
	if strings.TrimSpace(tokenString) == "" {
		return 0, domain.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.key, nil
	})
	if err != nil || !parsed.Valid {
		return 0, domain.ErrInvalidToken
	}

	// JSON numbers decode as float64 in MapClaims.
	raw, ok := claims[memberIDClaim].(float64)
	if !ok {
		return 0, domain.ErrInvalidToken
	}
	return int64(raw), nil
}
