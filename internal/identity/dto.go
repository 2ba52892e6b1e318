package identity

import (
	"time"

	"github.com/google/uuid"
)

// Input commands
type CreateIdentityCommand struct {
	UserUUID   uuid.UUID
	PublicKey  []byte // opaque, produced by the crypto provider
	PrivateKey []byte
}

// Output DTOs. The private key never crosses this boundary.
type IdentityDTO struct {
	UserUUID  uuid.UUID
	PublicKey []byte
	CreatedAt time.Time
}
