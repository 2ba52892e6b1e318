package device

import (
	"context"
	"time"

	"github.com/google/uuid"
	model "ra3d/internal/device/model"
)

type DeviceRepository interface {
	Register(ctx context.Context, device *model.Device) error
	Get(ctx context.Context, deviceID string) (*model.Device, error)
	ListByUser(ctx context.Context, userUUID uuid.UUID) ([]model.Device, error)
	// Touch records observed activity.
	Touch(ctx context.Context, deviceID string, seenAt time.Time) error
	// Revoke removes the device. Devices are never cascade-deleted.
	Revoke(ctx context.Context, deviceID string) error
}
