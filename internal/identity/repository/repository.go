package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	appdb "ra3d/internal/db"
	models "ra3d/internal/identity/model"
	apperrors "ra3d/pkg/errors"
	"ra3d/pkg/logger"
)

type IdentityRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewIdentityRepository(db *bun.DB, logger logger.Logger) *IdentityRepository {
	return &IdentityRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *IdentityRepository) CreateIdentity(ctx context.Context, user *models.User) error {
	_, err := r.db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		if apperrors.CodeOf(appdb.Translate(err)) == apperrors.CodeAlreadyExists {
			return apperrors.ErrIdentityExists
		}
		return errors.Wrap(appdb.Translate(err), "identityRepo.CreateIdentity.Insert")
	}
	return nil
}

func (r *IdentityRepository) GetByUUID(ctx context.Context, userUUID uuid.UUID) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("user_uuid = ?", userUUID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, errors.Wrap(appdb.Translate(err), "identityRepo.GetByUUID.Scan")
	}
	return user, nil
}

func (r *IdentityRepository) Current(ctx context.Context) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("current").Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNoIdentity
		}
		return nil, errors.Wrap(appdb.Translate(err), "identityRepo.Current.Scan")
	}
	return user, nil
}

// SetCurrent uses the same flip-in-one-transaction shape as key
// activation: clear every current flag, then set the target's.
func (r *IdentityRepository) SetCurrent(ctx context.Context, userUUID uuid.UUID) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.User)(nil)).
			Where("user_uuid = ?", userUUID).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "setCurrent.exists")
		}
		if !exists {
			return apperrors.ErrIdentityNotFound
		}

		_, err = tx.NewUpdate().
			Model((*models.User)(nil)).
			Set("current = ?", false).
			Where("current").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "setCurrent.clear")
		}

		_, err = tx.NewUpdate().
			Model((*models.User)(nil)).
			Set("current = ?", true).
			Where("user_uuid = ?", userUUID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "setCurrent.set")
		}
		return nil
	})
	if err != nil {
		if apperrors.CodeOf(err) != apperrors.CodeUnknown {
			return err
		}
		return appdb.Translate(err)
	}
	return nil
}
