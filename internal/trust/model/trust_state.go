package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TrustState records trust-on-first-use state for one peer. The
// fingerprint written at first contact is immutable: a later mismatch is
// evidence of impersonation and must be surfaced, not overwritten.
type TrustState struct {
	bun.BaseModel `bun:"table:trust_state"`

	PeerUUID uuid.UUID `bun:",pk,type:uuid"`

	Fingerprint []byte `bun:",notnull"`

	Verified   bool       `bun:",notnull,default:false"`
	VerifiedAt *time.Time `bun:",nullzero"`

	FirstSeenAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
