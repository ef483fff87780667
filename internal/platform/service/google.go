package service

import (
	"context"
	"errors"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/pkg/idx"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

// googleJWKSURL serves the rotating RSA keys Google signs ID tokens with.
const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

var (
	ErrInvalidIDToken = errors.New("invalid_id_token")
)

// GoogleIdentity is the verified subset of a Google ID token we care about.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type googleClaims struct {
	jwt.RegisteredClaims

	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleConfig carries the OAuth client registration.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GoogleService handles the Google OAuth login flows: building the consent
// URL, exchanging authorization codes, verifying ID tokens against Google's
// JWKS and upserting the local user record.
type GoogleService struct {
	Store store.Store
	OAuth *oauth2.Config

	clientID string
	keyfunc  jwt.Keyfunc
}

// NewGoogleService builds the service and starts the background JWKS
// refresh. The ctx bounds the JWKS lifecycle; cancel it on shutdown.
func NewGoogleService(ctx context.Context, st store.Store, cfg GoogleConfig) (*GoogleService, error) {
	jwks, err := keyfunc.Get(googleJWKSURL, keyfunc.Options{
		Ctx:             ctx,
		RefreshInterval: time.Hour,
		RefreshErrorHandler: func(err error) {
			slogx.FromContext(ctx).Warn("google jwks refresh failed", "err", err)
		},
	})
	if err != nil {
		return nil, err
	}

	return &GoogleService{
		Store: st,
		OAuth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		clientID: cfg.ClientID,
		keyfunc:  jwks.Keyfunc,
	}, nil
}

// newGoogleServiceWithKeyfunc is the test seam: same service, caller-supplied
// key material instead of Google's JWKS.
func newGoogleServiceWithKeyfunc(st store.Store, clientID string, kf jwt.Keyfunc) *GoogleService {
	return &GoogleService{
		Store:    st,
		clientID: clientID,
		keyfunc:  kf,
	}
}

// AuthCodeURL builds the Google consent page URL for the given CSRF state.
func (s *GoogleService) AuthCodeURL(state string) string {
	return s.OAuth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// ExchangeCode redeems an authorization code and verifies the ID token that
// comes back with it.
func (s *GoogleService) ExchangeCode(ctx context.Context, code string) (GoogleIdentity, error) {
	tok, err := s.OAuth.Exchange(ctx, code)
	if err != nil {
		return GoogleIdentity{}, err
	}

	raw, ok := tok.Extra("id_token").(string)
	if !ok || raw == "" {
		return GoogleIdentity{}, ErrInvalidIDToken
	}

	return s.VerifyIDToken(ctx, raw)
}

// VerifyIDToken checks the token's signature against Google's JWKS and
// validates issuer, audience and expiry.
func (s *GoogleService) VerifyIDToken(ctx context.Context, raw string) (GoogleIdentity, error) {
	l := slogx.FromContext(ctx)

	var claims googleClaims
	_, err := jwt.ParseWithClaims(
		raw,
		&claims,
		s.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer("https://accounts.google.com"),
		jwt.WithAudience(s.clientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		l.Warn("google id token rejected", "err", err)
		return GoogleIdentity{}, ErrInvalidIDToken
	}

	if claims.Subject == "" || !claims.EmailVerified {
		return GoogleIdentity{}, ErrInvalidIDToken
	}

	return GoogleIdentity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

// Authenticate upserts the local user for a verified Google identity.
// First login creates a student account; subsequent logins refresh the
// profile fields from Google.
func (s *GoogleService) Authenticate(ctx context.Context, identity GoogleIdentity) (domain.User, error) {
	user, err := s.Store.Users().GetUserByGoogleID(ctx, identity.Subject)
	switch {
	case err == nil:
		if user.Name != identity.Name || user.AvatarURL != identity.Picture {
			if err := s.Store.Users().UpdateProfile(ctx, user.ID, identity.Name, identity.Picture); err != nil {
				return domain.User{}, err
			}
			user.Name = identity.Name
			user.AvatarURL = identity.Picture
		}
		return user, nil

	case errors.Is(err, store.ErrNotFound):
		sub := identity.Subject
		user = domain.User{
			ID:        idx.New().String(),
			GoogleID:  &sub,
			Email:     identity.Email,
			Name:      identity.Name,
			AvatarURL: identity.Picture,
			Role:      domain.RoleStudent,
		}
		if err := s.Store.Users().CreateUser(ctx, user); err != nil {
			return domain.User{}, err
		}
		return user, nil

	default:
		return domain.User{}, err
	}
}
