package usecase

import (
	"context"

	"github.com/google/uuid"

	"ra3d/internal/identity"
	models "ra3d/internal/identity/model"
	"ra3d/pkg/errors"
	"ra3d/pkg/logger"
)

type IdentityUsecase struct {
	repo   identity.IdentityRepository
	logger logger.Logger
}

func NewIdentityUsecase(repo identity.IdentityRepository, logger logger.Logger) *IdentityUsecase {
	return &IdentityUsecase{repo: repo, logger: logger}
}

func (uc *IdentityUsecase) EnsureIdentity(ctx context.Context, cmd identity.CreateIdentityCommand) (*identity.IdentityDTO, error) {
	current, err := uc.repo.Current(ctx)
	if err == nil {
		return toDTO(current), nil
	}
	if errors.CodeOf(err) != errors.CodeFailedPrecondition {
		uc.logger.Error("failed to read current identity", "err", err)
		return nil, err
	}

	if cmd.UserUUID == uuid.Nil {
		return nil, errors.InvalidArg("user uuid is required")
	}
	if len(cmd.PublicKey) == 0 || len(cmd.PrivateKey) == 0 {
		return nil, errors.InvalidArg("identity keypair is required")
	}

	u := &models.User{
		UserUUID:   cmd.UserUUID,
		PublicKey:  cmd.PublicKey,
		PrivateKey: cmd.PrivateKey,
	}
	if err := uc.repo.CreateIdentity(ctx, u); err != nil {
		uc.logger.Error("failed to create identity", "err", err)
		return nil, err
	}
	if err := uc.repo.SetCurrent(ctx, cmd.UserUUID); err != nil {
		uc.logger.Error("failed to designate current identity", "err", err)
		return nil, err
	}

	created, err := uc.repo.GetByUUID(ctx, cmd.UserUUID)
	if err != nil {
		return nil, err
	}
	return toDTO(created), nil
}

func (uc *IdentityUsecase) CurrentIdentity(ctx context.Context) (*identity.IdentityDTO, error) {
	current, err := uc.repo.Current(ctx)
	if err != nil {
		return nil, err
	}
	return toDTO(current), nil
}

func toDTO(u *models.User) *identity.IdentityDTO {
	return &identity.IdentityDTO{
		UserUUID:  u.UserUUID,
		PublicKey: u.PublicKey,
		CreatedAt: u.CreatedAt,
	}
}
