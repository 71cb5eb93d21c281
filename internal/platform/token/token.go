// Package token issues and verifies signed, time-bounded access tokens.
package token

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLifetime is how long an issued token stays valid.
const DefaultLifetime = 3600 * time.Second

// subjectPattern matches a well-formed decimal user id.
// Anything else in the subject claim is rejected before being trusted.
var subjectPattern = regexp.MustCompile(`^\d+$`)

// Issuer signs and verifies access tokens carrying a single subject claim.
// The signing key is derived once at construction and treated as immutable.
type Issuer struct {
	secret  []byte
	appName string
	method  jwt.SigningMethod
	now     func() time.Time
}

// Option customizes an Issuer.
type Option func(*Issuer)

// WithSigningMethod overrides the default HMAC-SHA-512 signing method.
// Callers do not change when the method does.
func WithSigningMethod(m jwt.SigningMethod) Option {
	return func(i *Issuer) { i.method = m }
}

// WithClock injects the time source used for issued-at and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer creates an Issuer. The app name is used as both issuer and
// audience claim. An empty secret is a configuration error; callers in
// cmd/ treat it as fatal at startup.
func NewIssuer(secret, appName string, opts ...Option) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token: empty signing secret")
	}
	i := &Issuer{
		secret:  []byte(secret),
		appName: appName,
		method:  jwt.SigningMethodHS512,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Issue creates a signed token asserting the identity of userID until expiresAt.
func (i *Issuer) Issue(userID uint, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    i.appName,
		Audience:  jwt.ClaimStrings{i.appName},
		IssuedAt:  jwt.NewNumericDate(i.now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature, issuer, audience and expiry of tokenStr
// and returns the subject user id. Any failure, including a subject that is
// not a well-formed positive decimal integer, yields ok=false; verification
// errors never escape this boundary.
func (i *Issuer) Verify(tokenStr string) (userID uint, ok bool) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{i.method.Alg()}),
		jwt.WithIssuer(i.appName),
		jwt.WithAudience(i.appName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return 0, false
	}

	claims, okClaims := parsed.Claims.(*jwt.RegisteredClaims)
	if !okClaims {
		return 0, false
	}
	if !subjectPattern.MatchString(claims.Subject) {
		return 0, false
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
