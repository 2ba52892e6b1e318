package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	models "ra3d/internal/auth/model"
)

type TokenRepository interface {
	Issue(ctx context.Context, token *models.AuthToken) error
	Get(ctx context.Context, tokenID string) (*models.AuthToken, error)
	Revoke(ctx context.Context, tokenID string) error
	// RevokeAllForUser invalidates every token of a user (device loss).
	RevokeAllForUser(ctx context.Context, userUUID uuid.UUID) (int64, error)
	// FindActive returns tokens that are not revoked and not expired at
	// the given instant. A NULL expiry never expires. Revoked always
	// wins over an unexpired ExpiresAt.
	FindActive(ctx context.Context, userUUID uuid.UUID, now time.Time) ([]models.AuthToken, error)
}
