package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"ra3d/internal/message"
	model "ra3d/internal/message/model"
	"ra3d/pkg/errors"
	"ra3d/pkg/logger"
	"ra3d/pkg/utils"
)

type MessageUsecase struct {
	repo   message.MessageRepository
	logger logger.Logger
}

func NewMessageUsecase(repo message.MessageRepository, logger logger.Logger) *MessageUsecase {
	return &MessageUsecase{repo: repo, logger: logger}
}

func (uc *MessageUsecase) Record(ctx context.Context, cmd message.RecordMessageCommand) (string, int64, error) {
	if cmd.RoomID == "" {
		return "", 0, errors.InvalidArg("room id is required")
	}
	if cmd.SenderUUID == uuid.Nil {
		return "", 0, errors.InvalidArg("sender uuid is required")
	}

	// Unkeyed messages are unencrypted control records. Anything else
	// must name the key version that encrypted it.
	if cmd.KeyID == "" && cmd.Type != model.TypeSystem {
		return "", 0, errors.InvalidArg("non-system message requires a key id")
	}
	if cmd.KeyID != "" && cmd.Type == model.TypeSystem {
		return "", 0, errors.InvalidArg("system message must not reference a key")
	}

	status := cmd.Status
	if status == "" {
		status = model.StatusPending
	}

	messageID := cmd.MessageID
	if messageID == "" {
		messageID = utils.NewMessageID()
	}

	msg := &model.Message{
		MessageID:  messageID,
		RoomID:     cmd.RoomID,
		SenderUUID: cmd.SenderUUID,
		Status:     status,
		Type:       cmd.Type,
		Content:    cmd.Content,
		IV:         cmd.IV,
		Tag:        cmd.Tag,
		MsgHash:    cmd.MsgHash,
	}
	if cmd.KeyID != "" {
		keyID := cmd.KeyID
		msg.KeyID = &keyID
	}

	if err := uc.repo.Append(ctx, msg); err != nil {
		return "", 0, err
	}
	return messageID, msg.Seq, nil
}

func (uc *MessageUsecase) History(ctx context.Context, q message.HistoryQuery) ([]message.MessageDTO, error) {
	if q.RoomID == "" {
		return nil, errors.InvalidArg("room id is required")
	}

	msgs, err := uc.repo.List(ctx, q.RoomID, q.AfterSeq, q.Limit, q.IncludeDeleted)
	if err != nil {
		return nil, err
	}

	dtos := make([]message.MessageDTO, 0, len(msgs))
	for i := range msgs {
		dtos = append(dtos, toDTO(&msgs[i]))
	}
	return dtos, nil
}

// VerifyChain walks the full log, soft-deleted rows included, and
// recomputes every persisted hash against the previous link.
func (uc *MessageUsecase) VerifyChain(ctx context.Context, roomID string, h message.Hasher) error {
	msgs, err := uc.repo.List(ctx, roomID, 0, 0, true)
	if err != nil {
		return err
	}

	var prev []byte
	for i := range msgs {
		msg := &msgs[i]
		if len(msg.MsgHash) == 0 {
			continue
		}
		if computed := h.Sum(prev, msg.Content); !bytes.Equal(computed, msg.MsgHash) {
			return errors.Integrity(fmt.Sprintf("hash chain broken at seq %d in room %s", msg.Seq, roomID))
		}
		prev = msg.MsgHash
	}
	return nil
}

func (uc *MessageUsecase) MarkStatus(ctx context.Context, messageID string, status model.Status) error {
	switch status {
	case model.StatusPending, model.StatusSent, model.StatusDelivered, model.StatusRead:
	default:
		return errors.InvalidArg("unknown message status")
	}
	return uc.repo.MarkStatus(ctx, messageID, status)
}

func (uc *MessageUsecase) Redact(ctx context.Context, messageID string) error {
	return uc.repo.SoftDelete(ctx, messageID)
}

func (uc *MessageUsecase) EnforceRetention(ctx context.Context, messageID string) error {
	return uc.repo.Purge(ctx, messageID)
}

func (uc *MessageUsecase) Attach(ctx context.Context, cmd message.AttachCommand) (string, error) {
	if cmd.MessageID == "" {
		return "", errors.InvalidArg("message id is required")
	}
	if cmd.MimeType == "" {
		return "", errors.InvalidArg("mime type is required")
	}
	if cmd.Size < 0 {
		return "", errors.InvalidArg("size must not be negative")
	}

	attachmentID := cmd.AttachmentID
	if attachmentID == "" {
		attachmentID = utils.NewAttachmentID()
	}

	att := &model.Attachment{
		AttachmentID: attachmentID,
		MessageID:    cmd.MessageID,
		MimeType:     cmd.MimeType,
		Size:         cmd.Size,
		Content:      cmd.Content,
		IV:           cmd.IV,
		Tag:          cmd.Tag,
	}
	if err := uc.repo.AddAttachment(ctx, att); err != nil {
		return "", err
	}
	return attachmentID, nil
}

func toDTO(m *model.Message) message.MessageDTO {
	dto := message.MessageDTO{
		MessageID:  m.MessageID,
		RoomID:     m.RoomID,
		SenderUUID: m.SenderUUID,
		Status:     m.Status,
		Type:       m.Type,
		Content:    m.Content,
		IV:         m.IV,
		Tag:        m.Tag,
		Seq:        m.Seq,
		MsgHash:    m.MsgHash,
		Deleted:    m.DeletedAt != nil && !m.DeletedAt.IsZero(),
		CreatedAt:  m.CreatedAt,
	}
	if m.KeyID != nil {
		dto.KeyID = *m.KeyID
	}
	return dto
}
