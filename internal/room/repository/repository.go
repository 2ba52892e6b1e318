package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	appdb "ra3d/internal/db"
	messagemodel "ra3d/internal/message/model"
	model "ra3d/internal/room/model"
	apperrors "ra3d/pkg/errors"
	"ra3d/pkg/logger"
)

type RoomRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewRoomRepository(db *bun.DB, logger logger.Logger) *RoomRepository {
	return &RoomRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *RoomRepository) CreateRoom(ctx context.Context, room *model.Room) error {
	_, err := r.db.NewInsert().Model(room).Exec(ctx)
	if err != nil {
		if apperrors.CodeOf(appdb.Translate(err)) == apperrors.CodeAlreadyExists {
			return apperrors.ErrDuplicateRoom
		}
		return errors.Wrap(appdb.Translate(err), "roomRepo.CreateRoom.Insert")
	}
	return nil
}

func (r *RoomRepository) GetRoom(ctx context.Context, roomID string) (*model.Room, error) {
	room := new(model.Room)
	err := r.db.NewSelect().Model(room).Where("room_id = ?", roomID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, errors.Wrap(appdb.Translate(err), "roomRepo.GetRoom.Scan")
	}
	return room, nil
}

// DeleteRoom cascades explicitly, children first, so the guarantee does
// not depend on the engine honoring the schema-level cascade clauses.
func (r *RoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*model.Room)(nil)).
			Where("room_id = ?", roomID).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "deleteRoom.exists")
		}
		if !exists {
			return apperrors.ErrRoomNotFound
		}

		_, err = tx.NewDelete().
			Model((*messagemodel.Attachment)(nil)).
			Where("message_id IN (SELECT message_id FROM messages WHERE room_id = ?)", roomID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "deleteRoom.attachments")
		}

		_, err = tx.NewDelete().
			Model((*messagemodel.Message)(nil)).
			Where("room_id = ?", roomID).
			ForceDelete().
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "deleteRoom.messages")
		}

		_, err = tx.NewDelete().
			Model((*model.RoomKey)(nil)).
			Where("room_id = ?", roomID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "deleteRoom.roomKeys")
		}

		_, err = tx.NewDelete().
			Model((*model.Room)(nil)).
			Where("room_id = ?", roomID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "deleteRoom.room")
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

// ActivateKey rotates in one transaction: version = previous max + 1,
// old active row flipped off, new row inserted active. A failure leaves
// the previous key active; partial application never commits.
func (r *RoomRepository) ActivateKey(ctx context.Context, key *model.RoomKey) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*model.Room)(nil)).
			Where("room_id = ?", key.RoomID).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "activateKey.roomExists")
		}
		if !exists {
			return apperrors.ErrRoomNotFound
		}

		var maxVersion int64
		err = tx.NewSelect().
			Model((*model.RoomKey)(nil)).
			ColumnExpr("COALESCE(MAX(version), 0)").
			Where("room_id = ?", key.RoomID).
			Scan(ctx, &maxVersion)
		if err != nil {
			return errors.Wrap(err, "activateKey.maxVersion")
		}

		_, err = tx.NewUpdate().
			Model((*model.RoomKey)(nil)).
			Set("active = ?", false).
			Where("room_id = ? AND active", key.RoomID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "activateKey.deactivate")
		}

		key.Version = maxVersion + 1
		key.Active = true
		_, err = tx.NewInsert().Model(key).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "activateKey.insert")
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

func (r *RoomRepository) GetActiveKey(ctx context.Context, roomID string) (*model.RoomKey, error) {
	var keys []model.RoomKey
	err := r.db.NewSelect().
		Model(&keys).
		Where("room_id = ? AND active", roomID).
		Limit(2).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(appdb.Translate(err), "roomRepo.GetActiveKey.Scan")
	}
	switch len(keys) {
	case 0:
		return nil, apperrors.ErrNoActiveKey
	case 1:
		return &keys[0], nil
	default:
		// Prior corruption: the single-active invariant is broken.
		return nil, apperrors.Integrity("more than one active key for room " + roomID)
	}
}

func (r *RoomRepository) GetKeyByID(ctx context.Context, roomID, keyID string) (*model.RoomKey, error) {
	key := new(model.RoomKey)
	err := r.db.NewSelect().
		Model(key).
		Where("room_id = ? AND key_id = ?", roomID, keyID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrKeyNotFound
		}
		return nil, errors.Wrap(appdb.Translate(err), "roomRepo.GetKeyByID.Scan")
	}
	return key, nil
}

func (r *RoomRepository) ListKeys(ctx context.Context, roomID string) ([]model.RoomKey, error) {
	var keys []model.RoomKey
	err := r.db.NewSelect().
		Model(&keys).
		Where("room_id = ?", roomID).
		Order("version ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(appdb.Translate(err), "roomRepo.ListKeys.Scan")
	}
	return keys, nil
}
