package usecase

import (
	"context"

	"github.com/google/uuid"

	"ra3d/internal/room"
	model "ra3d/internal/room/model"
	"ra3d/internal/trust"
	"ra3d/pkg/errors"
	"ra3d/pkg/logger"
	"ra3d/pkg/utils"
)

type RoomUsecase struct {
	repo   room.RoomRepository
	trust  trust.TrustRepository
	logger logger.Logger
}

func NewRoomUsecase(repo room.RoomRepository, trust trust.TrustRepository, logger logger.Logger) *RoomUsecase {
	return &RoomUsecase{repo: repo, trust: trust, logger: logger}
}

func (uc *RoomUsecase) EstablishSession(ctx context.Context, cmd room.EstablishSessionCommand) (*room.RoomSnapshotDTO, error) {
	if cmd.PeerUUID == uuid.Nil {
		return nil, errors.InvalidArg("peer uuid is required")
	}
	if len(cmd.PeerPubShared) == 0 || len(cmd.PersonalPubShared) == 0 {
		return nil, errors.InvalidArg("shared secret material is required")
	}
	if len(cmd.PeerFingerprint) == 0 {
		return nil, errors.InvalidArg("peer fingerprint is required")
	}

	// Trust gate before any write: unknown peers get a TOFU record,
	// known peers must present the recorded fingerprint.
	err := uc.trust.CheckFingerprint(ctx, cmd.PeerUUID, cmd.PeerFingerprint)
	switch {
	case err == nil:
	case errors.CodeOf(err) == errors.CodeNotFound:
		if err := uc.trust.RecordFirstContact(ctx, cmd.PeerUUID, cmd.PeerFingerprint); err != nil {
			uc.logger.Error("failed to record first contact", "err", err)
			return nil, err
		}
	default:
		// Integrity violations included: propagate untouched.
		return nil, err
	}

	roomID := cmd.RoomID
	if roomID == "" {
		roomID = utils.NewRoomID()
	}

	rm := &model.Room{
		RoomID:            roomID,
		PeerUUID:          cmd.PeerUUID,
		PeerPubShared:     cmd.PeerPubShared,
		PersonalPubShared: cmd.PersonalPubShared,
	}
	if err := uc.repo.CreateRoom(ctx, rm); err != nil {
		return nil, err
	}

	key := &model.RoomKey{
		KeyID:             utils.NewKeyID(),
		RoomID:            roomID,
		PeerPubShared:     cmd.PeerPubShared,
		PersonalPubShared: cmd.PersonalPubShared,
	}
	if err := uc.repo.ActivateKey(ctx, key); err != nil {
		uc.logger.Error("session established without initial key", "room_id", roomID, "err", err)
		return nil, errors.ErrSessionEstablishFailed(err)
	}

	return &room.RoomSnapshotDTO{
		RoomID:           roomID,
		PeerUUID:         cmd.PeerUUID,
		CreatedAt:        rm.CreatedAt,
		ActiveKeyID:      key.KeyID,
		ActiveKeyVersion: key.Version,
	}, nil
}

func (uc *RoomUsecase) RotateKey(ctx context.Context, cmd room.RotateKeyCommand) (*room.KeyDTO, error) {
	if len(cmd.PeerPubShared) == 0 || len(cmd.PersonalPubShared) == 0 {
		return nil, errors.InvalidArg("shared secret material is required")
	}

	rm, err := uc.repo.GetRoom(ctx, cmd.RoomID)
	if err != nil {
		return nil, err
	}

	if len(cmd.ObservedFingerprint) > 0 {
		if err := uc.trust.CheckFingerprint(ctx, rm.PeerUUID, cmd.ObservedFingerprint); err != nil {
			return nil, err
		}
	}

	key := &model.RoomKey{
		KeyID:             utils.NewKeyID(),
		RoomID:            cmd.RoomID,
		PeerPubShared:     cmd.PeerPubShared,
		PersonalPubShared: cmd.PersonalPubShared,
	}
	if err := uc.repo.ActivateKey(ctx, key); err != nil {
		if errors.Retryable(err) {
			return nil, err
		}
		return nil, errors.ErrRotationFailed(err)
	}

	return &room.KeyDTO{
		KeyID:   key.KeyID,
		RoomID:  key.RoomID,
		Version: key.Version,
		Active:  key.Active,
	}, nil
}

func (uc *RoomUsecase) Teardown(ctx context.Context, roomID string) error {
	return uc.repo.DeleteRoom(ctx, roomID)
}

func (uc *RoomUsecase) Snapshot(ctx context.Context, roomID string) (*room.RoomSnapshotDTO, error) {
	rm, err := uc.repo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	dto := &room.RoomSnapshotDTO{
		RoomID:    rm.RoomID,
		PeerUUID:  rm.PeerUUID,
		CreatedAt: rm.CreatedAt,
	}

	active, err := uc.repo.GetActiveKey(ctx, roomID)
	switch {
	case err == nil:
		dto.ActiveKeyID = active.KeyID
		dto.ActiveKeyVersion = active.Version
	case errors.CodeOf(err) == errors.CodeFailedPrecondition:
		// Room exists but no key was ever activated.
	default:
		return nil, err
	}
	return dto, nil
}
