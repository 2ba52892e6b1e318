package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ra3d/internal/identity"
	"ra3d/internal/identity/mocks"
	models "ra3d/internal/identity/model"
	apperrors "ra3d/pkg/errors"
	"ra3d/pkg/logger"
)

func Test_EnsureIdentity_CreatesWhenNone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdentityRepository(ctrl)
	uc := NewIdentityUsecase(repo, logger.Logger{})

	cmd := identity.CreateIdentityCommand{
		UserUUID:   uuid.New(),
		PublicKey:  []byte("pub"),
		PrivateKey: []byte("priv"),
	}

	repo.EXPECT().Current(gomock.Any()).Return(nil, apperrors.ErrNoIdentity)
	repo.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().SetCurrent(gomock.Any(), cmd.UserUUID).Return(nil)
	repo.EXPECT().GetByUUID(gomock.Any(), cmd.UserUUID).
		Return(&models.User{UserUUID: cmd.UserUUID, PublicKey: cmd.PublicKey, Current: true}, nil)

	dto, err := uc.EnsureIdentity(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, cmd.UserUUID, dto.UserUUID)
	assert.Equal(t, cmd.PublicKey, dto.PublicKey)
}

// An existing identity is returned as-is; no writes happen.
func Test_EnsureIdentity_ReturnsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdentityRepository(ctrl)
	uc := NewIdentityUsecase(repo, logger.Logger{})

	existing := uuid.New()
	repo.EXPECT().Current(gomock.Any()).
		Return(&models.User{UserUUID: existing, PublicKey: []byte("pub"), Current: true}, nil)

	dto, err := uc.EnsureIdentity(context.Background(), identity.CreateIdentityCommand{
		UserUUID:   uuid.New(),
		PublicKey:  []byte("other"),
		PrivateKey: []byte("other"),
	})
	require.NoError(t, err)
	assert.Equal(t, existing, dto.UserUUID)
}

func Test_EnsureIdentity_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdentityRepository(ctrl)
	uc := NewIdentityUsecase(repo, logger.Logger{})

	cases := map[string]identity.CreateIdentityCommand{
		"missing uuid":    {PublicKey: []byte("pub"), PrivateKey: []byte("priv")},
		"missing keypair": {UserUUID: uuid.New()},
	}
	for name, cmd := range cases {
		t.Run(name, func(t *testing.T) {
			repo.EXPECT().Current(gomock.Any()).Return(nil, apperrors.ErrNoIdentity)
			_, err := uc.EnsureIdentity(context.Background(), cmd)
			assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
		})
	}
}

func Test_CurrentIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdentityRepository(ctrl)
	uc := NewIdentityUsecase(repo, logger.Logger{})

	user := uuid.New()
	repo.EXPECT().Current(gomock.Any()).
		Return(&models.User{UserUUID: user, PublicKey: []byte("pub")}, nil)

	dto, err := uc.CurrentIdentity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user, dto.UserUUID)

	t.Run("no identity", func(t *testing.T) {
		repo.EXPECT().Current(gomock.Any()).Return(nil, apperrors.ErrNoIdentity)
		_, err := uc.CurrentIdentity(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrNoIdentity)
	})
}
