package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	appdb "ra3d/internal/db"
	model "ra3d/internal/device/model"
	apperrors "ra3d/pkg/errors"
	"ra3d/pkg/logger"
)

type DeviceRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewDeviceRepository(db *bun.DB, logger logger.Logger) *DeviceRepository {
	return &DeviceRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *DeviceRepository) Register(ctx context.Context, device *model.Device) error {
	_, err := r.db.NewInsert().Model(device).Exec(ctx)
	if err != nil {
		return errors.Wrap(appdb.Translate(err), "deviceRepo.Register.Insert")
	}
	return nil
}

func (r *DeviceRepository) Get(ctx context.Context, deviceID string) (*model.Device, error) {
	device := new(model.Device)
	err := r.db.NewSelect().Model(device).Where("device_id = ?", deviceID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrDeviceNotFound
		}
		return nil, errors.Wrap(appdb.Translate(err), "deviceRepo.Get.Scan")
	}
	return device, nil
}

func (r *DeviceRepository) ListByUser(ctx context.Context, userUUID uuid.UUID) ([]model.Device, error) {
	var devices []model.Device
	err := r.db.NewSelect().
		Model(&devices).
		Where("user_uuid = ?", userUUID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(appdb.Translate(err), "deviceRepo.ListByUser.Scan")
	}
	return devices, nil
}

func (r *DeviceRepository) Touch(ctx context.Context, deviceID string, seenAt time.Time) error {
	return appdb.RetryBusy(ctx, func() error {
		res, err := r.db.NewUpdate().
			Model((*model.Device)(nil)).
			Set("last_seen = ?", seenAt).
			Where("device_id = ?", deviceID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "deviceRepo.Touch.Update")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return apperrors.ErrDeviceNotFound
		}
		return nil
	})
}

func (r *DeviceRepository) Revoke(ctx context.Context, deviceID string) error {
	res, err := r.db.NewDelete().
		Model((*model.Device)(nil)).
		Where("device_id = ?", deviceID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(appdb.Translate(err), "deviceRepo.Revoke.Delete")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrDeviceNotFound
	}
	return nil
}
