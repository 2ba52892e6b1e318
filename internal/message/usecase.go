package message

import (
	"context"

	model "ra3d/internal/message/model"
)

type MessageUsecase interface {
	// Record appends to the room's log and returns the id and the
	// allocated sequence number.
	Record(ctx context.Context, cmd RecordMessageCommand) (messageID string, seq int64, err error)

	History(ctx context.Context, q HistoryQuery) ([]MessageDTO, error)

	// VerifyChain recomputes the hash chain over the full log with the
	// caller's hasher. The first broken link is an integrity violation.
	VerifyChain(ctx context.Context, roomID string, h Hasher) error

	MarkStatus(ctx context.Context, messageID string, status model.Status) error

	// Redact soft-deletes; the row stays for audit/sync.
	Redact(ctx context.Context, messageID string) error
	// EnforceRetention hard-deletes the message and its attachments.
	EnforceRetention(ctx context.Context, messageID string) error

	Attach(ctx context.Context, cmd AttachCommand) (attachmentID string, err error)
}
