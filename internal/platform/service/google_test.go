package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
)

const testGoogleClientID = "inkwell-test.apps.googleusercontent.com"

type idTokenOpts struct {
	issuer        string
	audience      string
	subject       string
	email         string
	emailVerified bool
	expiresAt     time.Time
}

func signTestIDToken(t *testing.T, key *rsa.PrivateKey, opts idTokenOpts) string {
	t.Helper()

	claims := googleClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    opts.issuer,
			Subject:   opts.subject,
			Audience:  jwt.ClaimStrings{opts.audience},
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(opts.expiresAt),
		},
		Email:         opts.email,
		EmailVerified: opts.emailVerified,
		Name:          "Sonya Marmeladova",
		Picture:       "https://example.com/avatar.png",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newTestGoogleService(t *testing.T) (*GoogleService, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	st := newTestStore(t)
	svc := newGoogleServiceWithKeyfunc(st, testGoogleClientID, func(tok *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	})
	return svc, key
}

func validOpts() idTokenOpts {
	return idTokenOpts{
		issuer:        "https://accounts.google.com",
		audience:      testGoogleClientID,
		subject:       "google-sub-1",
		email:         "sonya@example.com",
		emailVerified: true,
		expiresAt:     time.Now().UTC().Add(time.Hour),
	}
}

func TestVerifyIDToken(t *testing.T) {
	ctx := context.Background()
	svc, key := newTestGoogleService(t)

	t.Run("accepts a valid token", func(t *testing.T) {
		raw := signTestIDToken(t, key, validOpts())

		identity, err := svc.VerifyIDToken(ctx, raw)
		require.NoError(t, err)
		require.Equal(t, "google-sub-1", identity.Subject)
		require.Equal(t, "sonya@example.com", identity.Email)
	})

	t.Run("rejects wrong audience", func(t *testing.T) {
		opts := validOpts()
		opts.audience = "someone-else.apps.googleusercontent.com"

		_, err := svc.VerifyIDToken(ctx, signTestIDToken(t, key, opts))
		require.ErrorIs(t, err, ErrInvalidIDToken)
	})

	t.Run("rejects wrong issuer", func(t *testing.T) {
		opts := validOpts()
		opts.issuer = "https://evil.example.com"

		_, err := svc.VerifyIDToken(ctx, signTestIDToken(t, key, opts))
		require.ErrorIs(t, err, ErrInvalidIDToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		opts := validOpts()
		opts.expiresAt = time.Now().UTC().Add(-2 * time.Minute)

		_, err := svc.VerifyIDToken(ctx, signTestIDToken(t, key, opts))
		require.ErrorIs(t, err, ErrInvalidIDToken)
	})

	t.Run("rejects unverified email", func(t *testing.T) {
		opts := validOpts()
		opts.emailVerified = false

		_, err := svc.VerifyIDToken(ctx, signTestIDToken(t, key, opts))
		require.ErrorIs(t, err, ErrInvalidIDToken)
	})

	t.Run("rejects token signed by another key", func(t *testing.T) {
		otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		_, err = svc.VerifyIDToken(ctx, signTestIDToken(t, otherKey, validOpts()))
		require.ErrorIs(t, err, ErrInvalidIDToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.VerifyIDToken(ctx, "not-a-token")
		require.ErrorIs(t, err, ErrInvalidIDToken)
	})
}

func TestAuthenticateUpsertsUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestGoogleService(t)

	identity := GoogleIdentity{
		Subject: "google-sub-2",
		Email:   "rodion@example.com",
		Name:    "Rodion Raskolnikov",
		Picture: "https://example.com/rodion.png",
	}

	// First login creates a student
	user, err := svc.Authenticate(ctx, identity)
	require.NoError(t, err)
	require.Equal(t, domain.RoleStudent, user.Role)
	require.Equal(t, identity.Email, user.Email)
	require.NotNil(t, user.GoogleID)
	require.Equal(t, identity.Subject, *user.GoogleID)

	// Second login finds the same account and refreshes the profile
	identity.Name = "R. R. Raskolnikov"
	again, err := svc.Authenticate(ctx, identity)
	require.NoError(t, err)
	require.Equal(t, user.ID, again.ID)
	require.Equal(t, "R. R. Raskolnikov", again.Name)

	stored, err := svc.Store.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "R. R. Raskolnikov", stored.Name)
}
