package repository

import (
	"bytes"
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	appdb "ra3d/internal/db"
	model "ra3d/internal/trust/model"
	apperrors "ra3d/pkg/errors"
	"ra3d/pkg/logger"
)

type TrustRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewTrustRepository(db *bun.DB, logger logger.Logger) *TrustRepository {
	return &TrustRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *TrustRepository) RecordFirstContact(ctx context.Context, peerUUID uuid.UUID, fingerprint []byte) error {
	state := &model.TrustState{
		PeerUUID:    peerUUID,
		Fingerprint: fingerprint,
	}
	_, err := r.db.NewInsert().Model(state).Exec(ctx)
	if err != nil {
		if apperrors.CodeOf(appdb.Translate(err)) == apperrors.CodeAlreadyExists {
			return apperrors.ErrPeerKnown
		}
		return errors.Wrap(appdb.Translate(err), "trustRepo.RecordFirstContact.Insert")
	}
	return nil
}

func (r *TrustRepository) Verify(ctx context.Context, peerUUID uuid.UUID, verifiedAt time.Time) error {
	res, err := r.db.NewUpdate().
		Model((*model.TrustState)(nil)).
		Set("verified = ?", true).
		Set("verified_at = ?", verifiedAt).
		Where("peer_uuid = ?", peerUUID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(appdb.Translate(err), "trustRepo.Verify.Update")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrUnknownPeer
	}
	return nil
}

func (r *TrustRepository) CheckFingerprint(ctx context.Context, peerUUID uuid.UUID, observed []byte) error {
	state, err := r.Get(ctx, peerUUID)
	if err != nil {
		return err
	}
	if !bytes.Equal(state.Fingerprint, observed) {
		r.logger.Warn("peer fingerprint mismatch", "peer_uuid", peerUUID.String())
		return apperrors.ErrFingerprintMismatch
	}
	return nil
}

func (r *TrustRepository) Get(ctx context.Context, peerUUID uuid.UUID) (*model.TrustState, error) {
	state := new(model.TrustState)
	err := r.db.NewSelect().Model(state).Where("peer_uuid = ?", peerUUID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUnknownPeer
		}
		return nil, errors.Wrap(appdb.Translate(err), "trustRepo.Get.Scan")
	}
	return state, nil
}
