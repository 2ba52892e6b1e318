package repository

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"ra3d/config"
	models "ra3d/internal/auth/model"
	appdb "ra3d/internal/db"
	apperrors "ra3d/pkg/errors"
	"ra3d/pkg/logger"
	"ra3d/pkg/utils"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	db, err := appdb.Connect(&config.Config{})
	if err != nil {
		log.Printf("failed to open test database: %v", err)
		os.Exit(1)
	}

	if err := appdb.CreateSchema(ctx, db); err != nil {
		log.Printf("failed to create schema: %v", err)
		os.Exit(1)
	}

	testDB = db
	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

func cleanupTokens(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), "DELETE FROM auth_tokens")
		require.NoError(t, err)
	})
}

func newToken(user uuid.UUID, expiresAt *time.Time) *models.AuthToken {
	return &models.AuthToken{
		TokenID:     utils.NewTokenID(),
		UserUUID:    user,
		AccessToken: []byte("access"),
		ExpiresAt:   expiresAt,
	}
}

func Test_IssueAndGet(t *testing.T) {
	cleanupTokens(t)
	repo := NewTokenRepository(testDB, logger.Logger{})

	user := uuid.New()
	deviceID := "device-1"
	token := newToken(user, nil)
	token.RefreshToken = []byte("refresh")
	token.DeviceID = &deviceID
	require.NoError(t, repo.Issue(context.Background(), token))

	fetched, err := repo.Get(context.Background(), token.TokenID)
	require.NoError(t, err)
	assert.Equal(t, user, fetched.UserUUID)
	assert.Equal(t, []byte("access"), fetched.AccessToken)
	assert.Equal(t, []byte("refresh"), fetched.RefreshToken)
	require.NotNil(t, fetched.DeviceID)
	assert.Equal(t, deviceID, *fetched.DeviceID)
	assert.False(t, fetched.Revoked)

	t.Run("not found", func(t *testing.T) {
		_, err := repo.Get(context.Background(), "ghost")
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})
}

func Test_FindActive(t *testing.T) {
	cleanupTokens(t)
	repo := NewTokenRepository(testDB, logger.Logger{})

	user := uuid.New()
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	unexpiring := newToken(user, nil)
	unexpired := newToken(user, &future)
	expired := newToken(user, &past)
	revoked := newToken(user, &future)
	foreign := newToken(uuid.New(), nil)

	for _, token := range []*models.AuthToken{unexpiring, unexpired, expired, revoked, foreign} {
		require.NoError(t, repo.Issue(context.Background(), token))
	}
	require.NoError(t, repo.Revoke(context.Background(), revoked.TokenID))

	active, err := repo.FindActive(context.Background(), user, now)
	require.NoError(t, err)
	require.Len(t, active, 2)

	ids := []string{active[0].TokenID, active[1].TokenID}
	assert.Contains(t, ids, unexpiring.TokenID)
	assert.Contains(t, ids, unexpired.TokenID)
	// Revoked wins even though the token has not expired.
	assert.NotContains(t, ids, revoked.TokenID)
	assert.NotContains(t, ids, expired.TokenID)
}

func Test_Revoke(t *testing.T) {
	cleanupTokens(t)
	repo := NewTokenRepository(testDB, logger.Logger{})

	token := newToken(uuid.New(), nil)
	require.NoError(t, repo.Issue(context.Background(), token))

	require.NoError(t, repo.Revoke(context.Background(), token.TokenID))
	fetched, err := repo.Get(context.Background(), token.TokenID)
	require.NoError(t, err)
	assert.True(t, fetched.Revoked)

	t.Run("not found", func(t *testing.T) {
		assert.ErrorIs(t, repo.Revoke(context.Background(), "ghost"), apperrors.ErrTokenNotFound)
	})
}

func Test_RevokeAllForUser(t *testing.T) {
	cleanupTokens(t)
	repo := NewTokenRepository(testDB, logger.Logger{})

	user := uuid.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Issue(context.Background(), newToken(user, nil)))
	}
	bystander := newToken(uuid.New(), nil)
	require.NoError(t, repo.Issue(context.Background(), bystander))

	n, err := repo.RevokeAllForUser(context.Background(), user)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	active, err := repo.FindActive(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, active)

	// The other user's token is untouched.
	fetched, err := repo.Get(context.Background(), bystander.TokenID)
	require.NoError(t, err)
	assert.False(t, fetched.Revoked)

	t.Run("idempotent", func(t *testing.T) {
		n, err := repo.RevokeAllForUser(context.Background(), user)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
