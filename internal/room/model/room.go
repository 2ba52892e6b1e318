package model

import (
	"time"

	"github.com/google/uuid"
)

// Room binds the local identity to one peer. PeerUUID is a soft
// reference — peers are external and may not exist in any local table.
type Room struct {
	RoomID string `bun:",pk"`

	PeerUUID uuid.UUID `bun:",notnull,type:uuid"`

	// Shared secret halves as negotiated at room creation. Rotation
	// never touches these; it snapshots into room_keys instead.
	PeerPubShared     []byte `bun:",notnull"`
	PersonalPubShared []byte `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
