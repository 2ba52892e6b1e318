package message

import (
	"time"

	"github.com/google/uuid"
	model "ra3d/internal/message/model"
)

// Hasher is the external hashing collaborator used for the
// tamper-evident chain. The store never computes hashes itself.
type Hasher interface {
	Sum(prevHash, content []byte) []byte
}

// Input commands
type RecordMessageCommand struct {
	// MessageID may be empty; one is minted then.
	MessageID string

	RoomID     string
	SenderUUID uuid.UUID

	Type   model.Type
	Status model.Status // defaults to pending

	// AEAD output from the crypto provider.
	Content []byte
	IV      []byte
	Tag     []byte

	// KeyID must reference a key of the room. Empty is allowed only
	// for system messages, which are stored unencrypted.
	KeyID string

	// MsgHash chains to the previous message; computed by the caller.
	MsgHash []byte
}

type AttachCommand struct {
	AttachmentID string // may be empty; minted then
	MessageID    string
	MimeType     string
	Size         int64
	Content      []byte
	IV           []byte
	Tag          []byte
}

type HistoryQuery struct {
	RoomID         string
	AfterSeq       int64
	Limit          int
	IncludeDeleted bool
}

// Output DTOs
type MessageDTO struct {
	MessageID  string
	RoomID     string
	SenderUUID uuid.UUID
	Status     model.Status
	Type       model.Type
	Content    []byte
	IV         []byte
	Tag        []byte
	Seq        int64
	MsgHash    []byte
	KeyID      string // empty for system messages
	Deleted    bool
	CreatedAt  time.Time
}
