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
	appdb "ra3d/internal/db"
	apperrors "ra3d/pkg/errors"
	"ra3d/pkg/logger"
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

func cleanupTrust(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), "DELETE FROM trust_state")
		require.NoError(t, err)
	})
}

func Test_RecordFirstContact(t *testing.T) {
	cleanupTrust(t)
	repo := NewTrustRepository(testDB, logger.Logger{})

	peer := uuid.New()
	require.NoError(t, repo.RecordFirstContact(context.Background(), peer, []byte("fp-1")))

	state, err := repo.Get(context.Background(), peer)
	require.NoError(t, err)
	assert.Equal(t, []byte("fp-1"), state.Fingerprint)
	assert.False(t, state.Verified)
	assert.Nil(t, state.VerifiedAt)
	assert.False(t, state.FirstSeenAt.IsZero())

	t.Run("already known", func(t *testing.T) {
		err := repo.RecordFirstContact(context.Background(), peer, []byte("fp-other"))
		assert.ErrorIs(t, err, apperrors.ErrPeerKnown)

		// First-contact fingerprint stays untouched.
		state, err := repo.Get(context.Background(), peer)
		require.NoError(t, err)
		assert.Equal(t, []byte("fp-1"), state.Fingerprint)
	})
}

func Test_CheckFingerprint(t *testing.T) {
	cleanupTrust(t)
	repo := NewTrustRepository(testDB, logger.Logger{})

	peer := uuid.New()
	require.NoError(t, repo.RecordFirstContact(context.Background(), peer, []byte("fp-1")))

	assert.NoError(t, repo.CheckFingerprint(context.Background(), peer, []byte("fp-1")))

	t.Run("mismatch is an integrity violation", func(t *testing.T) {
		err := repo.CheckFingerprint(context.Background(), peer, []byte("fp-forged"))
		assert.ErrorIs(t, err, apperrors.ErrFingerprintMismatch)
		assert.True(t, apperrors.IsIntegrity(err))

		// Never auto-corrected.
		state, getErr := repo.Get(context.Background(), peer)
		require.NoError(t, getErr)
		assert.Equal(t, []byte("fp-1"), state.Fingerprint)
	})

	t.Run("unknown peer", func(t *testing.T) {
		err := repo.CheckFingerprint(context.Background(), uuid.New(), []byte("fp-1"))
		assert.ErrorIs(t, err, apperrors.ErrUnknownPeer)
	})
}

func Test_Verify(t *testing.T) {
	cleanupTrust(t)
	repo := NewTrustRepository(testDB, logger.Logger{})

	peer := uuid.New()
	require.NoError(t, repo.RecordFirstContact(context.Background(), peer, []byte("fp-1")))

	verifiedAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Verify(context.Background(), peer, verifiedAt))

	state, err := repo.Get(context.Background(), peer)
	require.NoError(t, err)
	assert.True(t, state.Verified)
	require.NotNil(t, state.VerifiedAt)
	assert.WithinDuration(t, verifiedAt, *state.VerifiedAt, time.Second)

	t.Run("unknown peer", func(t *testing.T) {
		assert.ErrorIs(t, repo.Verify(context.Background(), uuid.New(), verifiedAt), apperrors.ErrUnknownPeer)
	})
}
