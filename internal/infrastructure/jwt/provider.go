package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/notification-types-api/internal/config"
)

// Verification failure classes. Callers discriminate with errors.Is; the
// underlying parser error stays attached for logging.
var (
	ErrExpired      = errors.New("token expired")
	ErrInvalid      = errors.New("token invalid")
	ErrVerification = errors.New("token verification failed")
)

// Claims holds the JWT payload fields. Subject carries the principal's
// identifier (RegisteredClaims.Subject).
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HMAC JWTs with a shared secret. Verification
// is a pure function of (token, secret, algorithm, current time).
type Provider struct {
	secret []byte
	method jwt.SigningMethod
	expiry time.Duration
}

// NewProvider builds a provider from the configured shared secret and
// signing algorithm. Only the HMAC family is accepted; tokens signed with
// any other method are rejected at verification time as well.
func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.JWTAlgorithm)
	}
	return &Provider{
		secret: []byte(cfg.JWTSecret),
		method: method,
		expiry: cfg.JWTExpiry,
	}, nil
}

// Sign issues a token for the given principal. The API surface never mints
// tokens; this exists for tests and operational tooling.
func (p *Provider) Sign(subject, username string) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(p.method, claims)
	return token.SignedString(p.secret)
}

// Verify parses and validates the token, checking signature, algorithm and
// expiry. Failures are classified into ErrExpired, ErrInvalid (malformed,
// bad signature, wrong algorithm) or ErrVerification.
func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{p.method.Alg()}))
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	default:
		return nil, fmt.Errorf("%w: %v", ErrVerification, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
