package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "ra3d/internal/auth/model"
	appdb "ra3d/internal/db"
	apperrors "ra3d/pkg/errors"
	"ra3d/pkg/logger"
)

type TokenRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewTokenRepository(db *bun.DB, logger logger.Logger) *TokenRepository {
	return &TokenRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *TokenRepository) Issue(ctx context.Context, token *models.AuthToken) error {
	_, err := r.db.NewInsert().Model(token).Exec(ctx)
	if err != nil {
		return errors.Wrap(appdb.Translate(err), "tokenRepo.Issue.Insert")
	}
	return nil
}

func (r *TokenRepository) Get(ctx context.Context, tokenID string) (*models.AuthToken, error) {
	token := new(models.AuthToken)
	err := r.db.NewSelect().Model(token).Where("token_id = ?", tokenID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, errors.Wrap(appdb.Translate(err), "tokenRepo.Get.Scan")
	}
	return token, nil
}

func (r *TokenRepository) Revoke(ctx context.Context, tokenID string) error {
	return appdb.RetryBusy(ctx, func() error {
		res, err := r.db.NewUpdate().
			Model((*models.AuthToken)(nil)).
			Set("revoked = ?", true).
			Where("token_id = ?", tokenID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "tokenRepo.Revoke.Update")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return apperrors.ErrTokenNotFound
		}
		return nil
	})
}

func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userUUID uuid.UUID) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*models.AuthToken)(nil)).
		Set("revoked = ?", true).
		Where("user_uuid = ? AND revoked = ?", userUUID, false).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(appdb.Translate(err), "tokenRepo.RevokeAllForUser.Update")
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *TokenRepository) FindActive(ctx context.Context, userUUID uuid.UUID, now time.Time) ([]models.AuthToken, error) {
	var tokens []models.AuthToken
	// Hits the (user_uuid, revoked) index.
	err := r.db.NewSelect().
		Model(&tokens).
		Where("user_uuid = ? AND revoked = ?", userUUID, false).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(appdb.Translate(err), "tokenRepo.FindActive.Scan")
	}
	return tokens, nil
}
