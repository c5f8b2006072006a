package services

import (
	"context"
	"testing"
	"time"

	"sgac_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	password := "SecretPass123!"

	hash, err := HashPassword(password)
	assert.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, CheckPassword(password, hash))
	assert.False(t, CheckPassword("WrongPass", hash))
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc.def.ghi")
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)

	_, ok = BearerToken("Basic dXNlcjpwYXNz")
	assert.False(t, ok)
	_, ok = BearerToken("")
	assert.False(t, ok)
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("services-test-secret-0123456789abcdef", time.Minute, time.Hour)
	user := &models.User{ID: 7, Username: "admin", IsStaff: true}

	pair, err := issuer.Issue(user)
	require.NoError(t, err)

	claims, err := issuer.Parse(pair.Access, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.True(t, claims.IsStaff)
	assert.NotEmpty(t, claims.ID)

	t.Run("Wrong type", func(t *testing.T) {
		_, err := issuer.Parse(pair.Refresh, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
		_, err = issuer.Parse(pair.Access, TokenTypeRefresh)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Other secret", func(t *testing.T) {
		other := NewTokenIssuer("another-secret-0123456789abcdefghij", time.Minute, time.Hour)
		_, err := other.Parse(pair.Access, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewTokenIssuer("services-test-secret-0123456789abcdef", -time.Minute, -time.Minute)
		old, err := expired.Issue(user)
		require.NoError(t, err)
		_, err = issuer.Parse(old.Access, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestLoginRefreshRevoke(t *testing.T) {
	gdb := setupTestDB(t)
	prevTokens, prevStore := Tokens, Revocations
	InitAuth(NewTokenIssuer("services-test-secret-0123456789abcdef", time.Minute, time.Hour), NewDBRevocationStore(gdb))
	t.Cleanup(func() { InitAuth(prevTokens, prevStore) })
	ctx := context.Background()

	_, err := CreateUser(gdb, "admin", "admin@uni.edu", "s3cret-pass", true)
	require.NoError(t, err)

	t.Run("Bad credentials", func(t *testing.T) {
		_, _, err := Login(gdb, "admin", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, _, err = Login(gdb, "nobody", "s3cret-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	user, pair, err := Login(gdb, "admin", "s3cret-pass")
	require.NoError(t, err)
	assert.NotNil(t, user.LastLoginAt)

	access, err := RefreshAccess(ctx, gdb, pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	claims, err := RevokeRefresh(ctx, pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, err = RefreshAccess(ctx, gdb, pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Revoking twice is harmless
	_, err = RevokeRefresh(ctx, pair.Refresh)
	assert.NoError(t, err)

	t.Run("Inactive user cannot refresh", func(t *testing.T) {
		_, fresh, err := Login(gdb, "admin", "s3cret-pass")
		require.NoError(t, err)
		require.NoError(t, gdb.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

		_, err = RefreshAccess(ctx, gdb, fresh.Refresh)
		assert.ErrorIs(t, err, ErrInactiveUser)
	})
}

func TestCreateUser(t *testing.T) {
	gdb := setupTestDB(t)

	user, err := CreateUser(gdb, "  clerk ", "clerk@uni.edu", "long-enough-1", false)
	require.NoError(t, err)
	assert.Equal(t, "clerk", user.Username)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "long-enough-1", user.Password)

	_, err = CreateUser(gdb, "clerk", "", "long-enough-1", false)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = CreateUser(gdb, "short", "", "1234", false)
	assert.Error(t, err)
	_, err = CreateUser(gdb, " ", "", "long-enough-1", false)
	assert.Error(t, err)
}

func TestDBRevocationStore(t *testing.T) {
	gdb := setupTestDB(t)
	store := NewDBRevocationStore(gdb)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "live", 1, time.Now().Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "stale", 1, time.Now().Add(-time.Hour)))

	revoked, err := store.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, revoked)

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	revoked, _ = store.IsRevoked(ctx, "live")
	assert.True(t, revoked)
}
