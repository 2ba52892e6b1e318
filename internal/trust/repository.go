package trust

import (
	"context"
	"time"

	"github.com/google/uuid"
	model "ra3d/internal/trust/model"
)

type TrustRepository interface {
	// RecordFirstContact stores the fingerprint seen on first contact,
	// unverified. Fails if the peer is already known.
	RecordFirstContact(ctx context.Context, peerUUID uuid.UUID, fingerprint []byte) error
	// Verify marks the peer verified after out-of-band comparison.
	Verify(ctx context.Context, peerUUID uuid.UUID, verifiedAt time.Time) error
	// CheckFingerprint compares the observed fingerprint against the
	// recorded one. A mismatch is returned as an integrity violation
	// and is never auto-corrected.
	CheckFingerprint(ctx context.Context, peerUUID uuid.UUID, observed []byte) error
	Get(ctx context.Context, peerUUID uuid.UUID) (*model.TrustState, error)
}
