package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	appdb "ra3d/internal/db"
	model "ra3d/internal/message/model"
	roommodel "ra3d/internal/room/model"
	apperrors "ra3d/pkg/errors"
	"ra3d/pkg/logger"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessageRepository(db *bun.DB, logger logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: &logger,
	}
}

// Append computes seq = 1 + max(seq) and inserts within one transaction
// so two concurrent appends cannot allocate the same number. The unique
// (room_id, seq) index is the backstop; on an engine abort the whole
// operation surfaces as retryable and the caller re-runs it.
func (r *MessageRepository) Append(ctx context.Context, msg *model.Message) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*roommodel.Room)(nil)).
			Where("room_id = ?", msg.RoomID).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "append.roomExists")
		}
		if !exists {
			return apperrors.ErrRoomNotFound
		}

		if msg.KeyID != nil {
			known, err := tx.NewSelect().
				Model((*roommodel.RoomKey)(nil)).
				Where("room_id = ? AND key_id = ?", msg.RoomID, *msg.KeyID).
				Exists(ctx)
			if err != nil {
				return errors.Wrap(err, "append.keyExists")
			}
			if !known {
				return apperrors.ErrKeyNotFound
			}
		}

		var maxSeq int64
		err = tx.NewSelect().
			Model((*model.Message)(nil)).
			ColumnExpr("COALESCE(MAX(seq), 0)").
			Where("room_id = ?", msg.RoomID).
			WhereAllWithDeleted().
			Scan(ctx, &maxSeq)
		if err != nil {
			return errors.Wrap(err, "append.maxSeq")
		}

		msg.Seq = maxSeq + 1
		_, err = tx.NewInsert().Model(msg).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "append.insert")
		}
		return nil
	})
	if err != nil {
		if apperrors.CodeOf(err) != apperrors.CodeUnknown {
			return err
		}
		return appdb.Translate(err)
	}
	return nil
}

func (r *MessageRepository) Get(ctx context.Context, messageID string) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).Where("message_id = ?", messageID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, errors.Wrap(appdb.Translate(err), "messageRepo.Get.Scan")
	}
	return msg, nil
}

func (r *MessageRepository) List(ctx context.Context, roomID string, afterSeq int64, limit int, includeDeleted bool) ([]model.Message, error) {
	var msgs []model.Message
	q := r.db.NewSelect().Model(&msgs)
	if includeDeleted {
		q = q.WhereAllWithDeleted()
	}
	q = q.Where("room_id = ? AND seq > ?", roomID, afterSeq).
		Order("seq ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(appdb.Translate(err), "messageRepo.List.Scan")
	}
	return msgs, nil
}

func (r *MessageRepository) Last(ctx context.Context, roomID string) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().
		Model(msg).
		WhereAllWithDeleted().
		Where("room_id = ?", roomID).
		Order("seq DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, errors.Wrap(appdb.Translate(err), "messageRepo.Last.Scan")
	}
	return msg, nil
}

func (r *MessageRepository) MarkStatus(ctx context.Context, messageID string, status model.Status) error {
	res, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("status = ?", status).
		Where("message_id = ?", messageID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(appdb.Translate(err), "messageRepo.MarkStatus.Update")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) SoftDelete(ctx context.Context, messageID string) error {
	// bun turns this into UPDATE ... SET deleted_at = now.
	res, err := r.db.NewDelete().
		Model((*model.Message)(nil)).
		Where("message_id = ?", messageID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(appdb.Translate(err), "messageRepo.SoftDelete.Delete")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) Purge(ctx context.Context, messageID string) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*model.Message)(nil)).
			WhereAllWithDeleted().
			Where("message_id = ?", messageID).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "purge.exists")
		}
		if !exists {
			return apperrors.ErrMessageNotFound
		}

		_, err = tx.NewDelete().
			Model((*model.Attachment)(nil)).
			Where("message_id = ?", messageID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "purge.attachments")
		}

		_, err = tx.NewDelete().
			Model((*model.Message)(nil)).
			Where("message_id = ?", messageID).
			ForceDelete().
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "purge.message")
		}
		return nil
	})
	if err != nil {
		if apperrors.CodeOf(err) != apperrors.CodeUnknown {
			return err
		}
		return appdb.Translate(err)
	}
	return nil
}

func (r *MessageRepository) AddAttachment(ctx context.Context, att *model.Attachment) error {
	exists, err := r.db.NewSelect().
		Model((*model.Message)(nil)).
		WhereAllWithDeleted().
		Where("message_id = ?", att.MessageID).
		Exists(ctx)
	if err != nil {
		return errors.Wrap(appdb.Translate(err), "messageRepo.AddAttachment.exists")
	}
	if !exists {
		return apperrors.ErrMessageNotFound
	}

	_, err = r.db.NewInsert().Model(att).Exec(ctx)
	if err != nil {
		return errors.Wrap(appdb.Translate(err), "messageRepo.AddAttachment.Insert")
	}
	return nil
}

func (r *MessageRepository) GetAttachment(ctx context.Context, attachmentID string) (*model.Attachment, error) {
	att := new(model.Attachment)
	err := r.db.NewSelect().Model(att).Where("attachment_id = ?", attachmentID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAttachmentNotFound
		}
		return nil, errors.Wrap(appdb.Translate(err), "messageRepo.GetAttachment.Scan")
	}
	return att, nil
}

func (r *MessageRepository) ListAttachments(ctx context.Context, messageID string) ([]model.Attachment, error) {
	var atts []model.Attachment
	err := r.db.NewSelect().
		Model(&atts).
		Where("message_id = ?", messageID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(appdb.Translate(err), "messageRepo.ListAttachments.Scan")
	}
	return atts, nil
}
