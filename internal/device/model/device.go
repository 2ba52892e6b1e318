package model

import (
	"time"

	"github.com/google/uuid"
)

// Device is a known device, local or peer. UserUUID is a soft reference;
// devices are never cascade-deleted, only explicitly revoked.
type Device struct {
	DeviceID string `bun:",pk"`

	UserUUID uuid.UUID `bun:",notnull,type:uuid"`

	DevicePubKey []byte `bun:",notnull"`

	LastSeen  *time.Time `bun:",nullzero"`
	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
}
