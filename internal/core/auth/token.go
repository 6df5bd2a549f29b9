package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// DefaultTokenTTL is the token lifetime used when none is configured.
const DefaultTokenTTL = 20 * time.Minute

// SessionClaims is the payload of a session token: identity plus the role
// flags as they were at login time. The flags are trusted for the token's
// whole lifetime, so a role change only takes effect once the token is
// reissued.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID     int64 `json:"id"`
	IsAdmin    bool  `json:"is_admin"`
	IsSupplier bool  `json:"is_supplier"`
	IsCustomer bool  `json:"is_customer"`
}

// Codec signs and verifies session tokens with a process-wide HS256 secret.
// The secret is loaded once at startup and never mutated, so the codec is
// safe for concurrent use without locking.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Codec{secret: secret, ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode issues a signed token for user expiring at now+TTL.
func (c *Codec) Encode(user *domain.User, now time.Time) (string, error) {
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID:     user.ID,
		IsAdmin:    user.IsAdmin,
		IsSupplier: user.IsSupplier,
		IsCustomer: user.IsCustomer,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode parses a token and verifies its signature. No claim is returned
// unless the signature checks out; a payload flipped by even one bit fails
// here. Expiry is deliberately not validated at this stage so Resolve can
// report it as its own error.
func (c *Codec) Decode(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Resolve turns an inbound token into validated session claims.
//
// A structurally valid signature is not enough: the subject and user id
// must be present, an expiry must be set, and the expiry must be strictly
// in the future at now (a token resolving exactly at its expiry instant is
// already expired).
func (c *Codec) Resolve(token string, now time.Time) (*SessionClaims, error) {
	claims, err := c.Decode(token)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" || claims.UserID == 0 {
		return nil, domain.ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return nil, domain.ErrMissingExpiry
	}
	if !claims.ExpiresAt.Time.After(now) {
		return nil, domain.ErrTokenExpired
	}
	return claims, nil
}
