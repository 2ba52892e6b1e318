package identity

import (
	"context"

	"github.com/google/uuid"
	models "ra3d/internal/identity/model"
)

type IdentityRepository interface {
	CreateIdentity(ctx context.Context, user *models.User) error
	GetByUUID(ctx context.Context, userUUID uuid.UUID) (*models.User, error)
	// Current returns the identity the client operates as.
	Current(ctx context.Context) (*models.User, error)
	// SetCurrent designates one identity, clearing any other, in a
	// single transaction.
	SetCurrent(ctx context.Context, userUUID uuid.UUID) error
}
