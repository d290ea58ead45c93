package token_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plazausers/pkg/identity"
	"plazausers/pkg/token"
)

const testSecret = "test-secret-key-12345"

var owner = identity.Identity{UserID: 42, Email: "owner@plaza.co", Role: identity.RoleOwner}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewService(t *testing.T) {
	_, err := token.NewService("", time.Hour)
	require.ErrorIs(t, err, token.ErrEmptySecret)

	_, err = token.NewService(testSecret, -time.Second)
	require.ErrorIs(t, err, token.ErrNegativeTTL)

	_, err = token.NewService(testSecret, 500*time.Millisecond)
	require.ErrorIs(t, err, token.ErrShortTTL)

	_, err = token.NewService(testSecret, token.MinTTL)
	require.NoError(t, err)

	svc, err := token.NewService(testSecret, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(86400000), svc.ExpirationMs())
	assert.Equal(t, 24*time.Hour, svc.TTL())
}

func TestIssueAndValidate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc, err := token.NewService(testSecret, time.Hour, token.WithTimeFunc(fixedClock(now)))
	require.NoError(t, err)

	tok, expiresAt, err := svc.Issue(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := svc.Validate(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, owner.Email, claims.Subject)
	assert.Equal(t, owner.UserID, claims.UserID)
	assert.Equal(t, "OWNER", claims.Role)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())

	assert.True(t, svc.IsValid(ctx, tok))

	userID, ok := svc.ExtractUserID(ctx, tok)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	email, ok := svc.ExtractEmail(ctx, tok)
	assert.True(t, ok)
	assert.Equal(t, owner.Email, email)

	role, ok := svc.ExtractRole(ctx, tok)
	assert.True(t, ok)
	assert.Equal(t, identity.RoleOwner, role)

	id, err := svc.Authenticate(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, owner, id)
}

func TestZeroTTLTokenIsInvalid(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc, err := token.NewService(testSecret, 0, token.WithTimeFunc(fixedClock(now)))
	require.NoError(t, err)

	tok, _, err := svc.Issue(ctx, owner)
	require.NoError(t, err)

	assert.False(t, svc.IsValid(ctx, tok))
	_, ok := svc.ExtractEmail(ctx, tok)
	assert.False(t, ok)
}

func TestExpiredToken(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	issuer, err := token.NewService(testSecret, time.Minute, token.WithTimeFunc(fixedClock(issuedAt)))
	require.NoError(t, err)
	tok, _, err := issuer.Issue(ctx, owner)
	require.NoError(t, err)

	later, err := token.NewService(testSecret, time.Minute, token.WithTimeFunc(fixedClock(issuedAt.Add(2*time.Minute))))
	require.NoError(t, err)

	_, err = later.Validate(ctx, tok)
	require.ErrorIs(t, err, token.ErrExpiredToken)
	assert.False(t, later.IsValid(ctx, tok))
}

func TestRejectedTokens(t *testing.T) {
	ctx := context.Background()
	svc, err := token.NewService(testSecret, time.Hour)
	require.NoError(t, err)

	other, err := token.NewService("another-secret", time.Hour)
	require.NoError(t, err)
	foreign, _, err := other.Issue(ctx, owner)
	require.NoError(t, err)

	valid, _, err := svc.Issue(ctx, owner)
	require.NoError(t, err)
	tampered := valid[:len(valid)-2] + "xx"

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, token.Claims{
		UserID: 1, Email: "x@y.z", Role: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, token.Claims{
		UserID: 1, Email: "x@y.z", Role: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		UserID: 1, Email: "x@y.z", Role: "ADMIN",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"wrong secret": foreign,
		"tampered":     tampered,
		"alg none":     none,
		"alg HS512":    hs512,
		"no exp":       noExp,
	}

	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			assert.False(t, svc.IsValid(ctx, tok))

			_, ok := svc.ExtractUserID(ctx, tok)
			assert.False(t, ok)
			_, ok = svc.ExtractRole(ctx, tok)
			assert.False(t, ok)

			_, err := svc.Validate(ctx, tok)
			assert.Error(t, err)
		})
	}
}

func TestUnknownRoleIsNotExtracted(t *testing.T) {
	ctx := context.Background()
	svc, err := token.NewService(testSecret, time.Hour)
	require.NoError(t, err)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		UserID: 1, Email: "x@y.z", Role: "ROOT",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	assert.True(t, svc.IsValid(ctx, tok))
	_, ok := svc.ExtractRole(ctx, tok)
	assert.False(t, ok)
	_, err = svc.Authenticate(ctx, tok)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestShortestTTLIsValidRightAfterIssue(t *testing.T) {
	ctx := context.Background()
	// Момент выпуска на границе, где округление до секунд сильнее всего сокращает срок.
	now := time.Date(2026, 3, 1, 12, 0, 0, 999_000_000, time.UTC)

	svc, err := token.NewService(testSecret, token.MinTTL, token.WithTimeFunc(fixedClock(now)))
	require.NoError(t, err)

	tok, _, err := svc.Issue(ctx, owner)
	require.NoError(t, err)
	assert.True(t, svc.IsValid(ctx, tok))
}

func TestMissingIdentityClaims(t *testing.T) {
	ctx := context.Background()
	svc, err := token.NewService(testSecret, time.Hour)
	require.NoError(t, err)

	sign := func(t *testing.T, claims token.Claims) string {
		t.Helper()
		claims.RegisteredClaims = jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return tok
	}

	t.Run("error - no userId claim", func(t *testing.T) {
		tok := sign(t, token.Claims{Email: "x@y.z", Role: "OWNER"})

		_, ok := svc.ExtractUserID(ctx, tok)
		assert.False(t, ok)

		email, ok := svc.ExtractEmail(ctx, tok)
		assert.True(t, ok)
		assert.Equal(t, "x@y.z", email)

		_, err := svc.Authenticate(ctx, tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
		assert.ErrorIs(t, err, token.ErrMissingClaim)
	})

	t.Run("error - no email claim", func(t *testing.T) {
		tok := sign(t, token.Claims{UserID: 7, Role: "OWNER"})

		_, ok := svc.ExtractEmail(ctx, tok)
		assert.False(t, ok)

		userID, ok := svc.ExtractUserID(ctx, tok)
		assert.True(t, ok)
		assert.Equal(t, int64(7), userID)

		_, err := svc.Authenticate(ctx, tok)
		assert.ErrorIs(t, err, token.ErrMissingClaim)
	})
}
