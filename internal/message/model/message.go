package model

import (
	"time"

	"github.com/google/uuid"
	room "ra3d/internal/room/model"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
)

type Type string

const (
	TypeText Type = "text"
	TypeFile Type = "file"

	// TypeSystem is a local control record. System messages carry no
	// key reference because their content is not encrypted.
	TypeSystem Type = "system"
)

type Message struct {
	MessageID string `bun:",pk"`

	RoomID string     `bun:",notnull"`
	Room   *room.Room `bun:"rel:belongs-to,join:room_id=room_id"`

	SenderUUID uuid.UUID `bun:",notnull,type:uuid"`

	Status Status `bun:",notnull"`
	Type   Type   `bun:",notnull"`

	// AEAD output, opaque to the store.
	Content []byte `bun:",notnull"`
	IV      []byte `bun:",notnull"`
	Tag     []byte `bun:",notnull"`

	// Seq is the room-local total order. Allocated inside the append
	// transaction; unique per room.
	Seq int64 `bun:",nullzero"`

	// MsgHash chains this message to the previous one. Computed by the
	// caller's hashing collaborator; persisted verbatim.
	MsgHash []byte `bun:",nullzero"`

	// KeyID references the RoomKey version that encrypted the content.
	// NULL means an unencrypted system message.
	KeyID *string `bun:",nullzero"`

	DeletedAt *time.Time `bun:",soft_delete"`
	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
}
