package service

import (
	"context"
	"errors"
	"time"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/pkg/cryptox"
	"github.com/inkwell-edu/inkwell/pkg/idx"
	"github.com/inkwell-edu/inkwell/pkg/jwtx"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
)

// TokenService issues access/refresh pairs and redeems refresh tokens.
// Access tokens are stateless JWTs; refresh tokens are JWTs that are ALSO
// tracked server-side by fingerprint so they can be revoked and rotated.
type TokenService struct {
	AccessCodec  *jwtx.Codec
	RefreshCodec *jwtx.Codec
	Store        store.Store
	Issuer       string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

// IssueAccessToken mints a short-lived access token for a user. Pure
// signing, no store writes.
func (s *TokenService) IssueAccessToken(userID string) (string, error) {
	claims := jwtx.NewClaims(userID, s.AccessTTL, s.Issuer, time.Now().UTC())
	return s.AccessCodec.Sign(claims)
}

// Login issues a fresh token pair for an already-authenticated user. The
// refresh token fingerprint is persisted so it can later be redeemed,
// rotated or revoked.
func (s *TokenService) Login(ctx context.Context, userID string) (*domain.TokenPair, error) {
	now := time.Now().UTC()

	accessToken, err := s.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, record, err := s.mintRefresh(userID, now)
	if err != nil {
		return nil, err
	}

	if err := s.Store.RefreshTokens().CreateRefreshToken(ctx, record); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.AccessTTL.Seconds()),
	}, nil
}

// Refresh redeems a refresh token for a new pair. The presented token must
// verify under the refresh codec AND match an unrevoked, unexpired stored
// fingerprint. Rotation happens atomically: the old fingerprint is revoked
// and the new one created in one transaction, so a crash can't leave two
// live tokens for the same redemption.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	now := time.Now().UTC()
	l := slogx.FromContext(ctx)

	claims, err := s.RefreshCodec.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	fp := cryptox.FingerprintToken(refreshToken)
	rt, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, fp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	if !rt.Usable(now) {
		l.Warn("refresh token reuse or expiry", "user_id", rt.UserID, "revoked", rt.Revoked)
		return nil, ErrInvalidRefresh
	}

	// The JWT subject and the stored row must agree; a mismatch means the
	// fingerprint collided or the row was tampered with.
	if claims.Subject != rt.UserID {
		return nil, ErrInvalidRefresh
	}

	// Confirm the user still exists (deletion revokes implicitly via FK,
	// but the check keeps the invariant explicit).
	user, err := s.Store.Users().GetUserByID(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	accessToken, err := s.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	newRefreshToken, newRecord, err := s.mintRefresh(user.ID, now)
	if err != nil {
		return nil, err
	}

	if err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.RefreshTokens().RevokeRefreshToken(ctx, fp); err != nil {
			return err
		}
		return tx.RefreshTokens().CreateRefreshToken(ctx, newRecord)
	}); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int64(s.AccessTTL.Seconds()),
	}, nil
}

// Revoke revokes a single refresh token (by its presented value). Unknown
// tokens are a no-op; logout should not fail because the token was already
// dead.
func (s *TokenService) Revoke(ctx context.Context, refreshToken string) error {
	fp := cryptox.FingerprintToken(refreshToken)
	return s.Store.RefreshTokens().RevokeRefreshToken(ctx, fp)
}

// RevokeAllForUser revokes every refresh token a user holds.
func (s *TokenService) RevokeAllForUser(ctx context.Context, userID string) error {
	return s.Store.RefreshTokens().RevokeAllUserRefreshTokens(ctx, userID)
}

func (s *TokenService) mintRefresh(userID string, now time.Time) (string, domain.RefreshToken, error) {
	claims := jwtx.NewClaims(userID, s.RefreshTTL, s.Issuer, now)
	token, err := s.RefreshCodec.Sign(claims)
	if err != nil {
		return "", domain.RefreshToken{}, err
	}

	record := domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(s.RefreshTTL),
		Revoked:   false,
	}
	return token, record, nil
}
