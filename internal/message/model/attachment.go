package model

import "time"

// Attachment is an independently encrypted binary payload hanging off a
// message. Immutable once written; removed only via message cascade.
type Attachment struct {
	AttachmentID string `bun:",pk"`

	MessageID string   `bun:",notnull"`
	Message   *Message `bun:"rel:belongs-to,join:message_id=message_id"`

	MimeType string `bun:",notnull"`
	Size     int64  `bun:",notnull"` // declared byte length, validated by caller

	Content []byte `bun:",notnull"`
	IV      []byte `bun:",notnull"`
	Tag     []byte `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
