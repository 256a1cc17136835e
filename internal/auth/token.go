package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs and verifies session tokens. It is safe for concurrent
// use: the secret and clock are set at construction and never mutated.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a Codec signing with the given symmetric secret and
// issuing sessions valid for ttl. The secret must be non-empty; config
// validation enforces that before the codec is ever constructed.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock returns a copy of the codec using the given clock.
// Used by tests to control issuance and expiry times.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	cp := *c
	cp.now = now
	return &cp
}

// TTL returns the validity window of issued sessions.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs the claim set into an opaque token string safe to store
// in a cookie. It attaches the issued-at timestamp and the codec's
// validity window. Pure function of inputs, secret and clock.
func (c *Codec) Issue(claims Claims) (string, error) {
	now := c.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.Subject,
		"role":  string(claims.Role),
		"name":  claims.DisplayName,
		"email": claims.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(c.ttl).Unix(),
	})
	return tok.SignedString(c.secret)
}

// Verify checks the token's signature, expiry and claim shape, and
// returns the decoded Session, or nil when the token is invalid in any
// way. Bad signature, expiry and malformed claims are deliberately
// indistinguishable to the caller: the uniform nil result leaks nothing
// about why a token was rejected.
func (c *Codec) Verify(token string) *Session {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	// A correctly signed token with missing or mistyped claims is
	// rejected whole, never partially trusted: an undefined role must
	// not grant access.
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil
	}
	roleStr, ok := claims["role"].(string)
	if !ok || !Role(roleStr).IsValid() {
		return nil
	}
	name, ok := claims["name"].(string)
	if !ok {
		return nil
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil
	}

	return &Session{
		Subject:     sub,
		Role:        Role(roleStr),
		DisplayName: name,
		Email:       email,
		ExpiresAt:   time.Unix(int64(exp), 0),
	}
}
