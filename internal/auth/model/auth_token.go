package models

import (
	"time"

	"github.com/google/uuid"
)

type AuthToken struct {
	TokenID string `bun:",pk"`

	UserUUID uuid.UUID `bun:",notnull,type:uuid"`

	AccessToken  []byte `bun:",notnull"`
	RefreshToken []byte `bun:",nullzero"`

	// NULL ExpiresAt means the token never expires on its own.
	ExpiresAt *time.Time `bun:",nullzero"`

	// DeviceID scopes the token to one device when set.
	DeviceID *string `bun:",nullzero"`

	// Revoked wins over ExpiresAt: a revoked token is never valid.
	Revoked bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
