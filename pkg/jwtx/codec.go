package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")

	ErrSecretTooShort = errors.New("jwtx: secret must be at least 32 bytes")
)

// MinSecretLength is the minimum accepted HMAC secret length in bytes.
// Anything shorter than the hash output weakens HS256 for no good reason.
const MinSecretLength = 32

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Codec signs and verifies HS256 tokens against a single shared secret.
// Access and refresh tokens each get their own Codec instance so a token
// minted with one secret can never pass verification against the other.
type Codec struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewCodec builds a Codec for the given secret and expected issuer.
func NewCodec(secret []byte, issuer string) (*Codec, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}

	return &Codec{
		secret: secret,
		issuer: issuer,
		leeway: 30 * time.Second,
	}, nil
}

// Sign produces a compact HS256 JWT for the given claims.
func (c *Codec) Sign(claims Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses the token, checks the HMAC signature and validates issuer
// and time-based claims. Returns zero Claims alongside the mapped error on
// any failure.
func (c *Codec) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrAlgMismatch
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(c.leeway),
	)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if !parsed.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(c.issuer); err != nil {
		return Claims{}, err
	}

	if claims.Subject == "" {
		return Claims{}, ErrInvalidClaim
	}

	return claims, nil
}

// mapParseError collapses the library's error soup into our sentinels so
// callers can use errors.Is without importing golang-jwt.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	default:
		return ErrInvalidClaim
	}
}
