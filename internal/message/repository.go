package message

import (
	"context"

	model "ra3d/internal/message/model"
)

type MessageRepository interface {
	// Append allocates the room-local sequence number and inserts the
	// message in one transaction. Sets msg.Seq on success.
	Append(ctx context.Context, msg *model.Message) error
	Get(ctx context.Context, messageID string) (*model.Message, error)
	// List returns messages with seq > afterSeq in ascending order.
	// Soft-deleted rows are excluded unless includeDeleted is set.
	List(ctx context.Context, roomID string, afterSeq int64, limit int, includeDeleted bool) ([]model.Message, error)
	// Last returns the highest-seq message including soft-deleted rows,
	// the hash-chain tip for the next append.
	Last(ctx context.Context, roomID string) (*model.Message, error)
	MarkStatus(ctx context.Context, messageID string, status model.Status) error

	SoftDelete(ctx context.Context, messageID string) error
	// Purge hard-deletes the message and its attachments. Retention
	// enforcement only.
	Purge(ctx context.Context, messageID string) error

	AddAttachment(ctx context.Context, att *model.Attachment) error
	GetAttachment(ctx context.Context, attachmentID string) (*model.Attachment, error)
	ListAttachments(ctx context.Context, messageID string) ([]model.Attachment, error)
}
