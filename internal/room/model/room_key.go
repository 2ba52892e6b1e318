package model

import "time"

// RoomKey is one versioned snapshot of a room's shared-secret material.
// Rows are retained forever (short of room deletion) because historical
// messages reference the version that encrypted them.
type RoomKey struct {
	KeyID string `bun:",pk"`

	RoomID string `bun:",notnull"`
	Room   *Room  `bun:"rel:belongs-to,join:room_id=room_id"`

	PeerPubShared     []byte `bun:",notnull"`
	PersonalPubShared []byte `bun:",notnull"`

	// Version strictly increases per room and is never reused.
	Version int64 `bun:",notnull"`

	// Active: at most one true row per room, flipped atomically on
	// rotation. A partial unique index backs this up at the engine.
	Active bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
