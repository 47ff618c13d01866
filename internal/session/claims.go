// Package session owns the single login session: the stored bearer
// token, the claims read out of it, and the expiry eviction timer.
// Claims are decoded without signature verification: this gates UI
// affordances only, and the backend enforces authorization on every
// call regardless of what this package reports.
package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the client-side view of the token payload. Only the
// expiry instant and the role claim are consumed.
type Claims struct {
	Role      string
	ExpiresAt time.Time
}

// DecodeClaims parses the token payload without verifying the
// signature. Any malformed token (wrong segment count, non-JSON
// payload, missing exp claim) fails closed: an error here means the
// token is treated as already expired.
func DecodeClaims(token string) (*Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return nil, err
	}

	exp, err := mc.GetExpirationTime()
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, jwt.ErrTokenInvalidClaims
	}

	role, _ := mc["role"].(string)

	return &Claims{
		Role:      role,
		ExpiresAt: exp.Time,
	}, nil
}

// Expired reports whether the claims' expiry is at or before now.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// TimeUntilExpiry is the remaining lifetime, floored at zero.
func (c *Claims) TimeUntilExpiry(now time.Time) time.Duration {
	d := c.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// HasRole matches the role claim case-insensitively, tolerating the
// Spring-style "ROLE_" prefix the backend has used in some revisions.
func (c *Claims) HasRole(role string) bool {
	have := strings.TrimPrefix(strings.ToUpper(c.Role), "ROLE_")
	want := strings.TrimPrefix(strings.ToUpper(role), "ROLE_")
	return have != "" && have == want
}
