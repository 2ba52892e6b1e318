package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ra3d/internal/room"
	roommocks "ra3d/internal/room/mocks"
	model "ra3d/internal/room/model"
	trustmocks "ra3d/internal/trust/mocks"
	apperrors "ra3d/pkg/errors"
	"ra3d/pkg/logger"
)

func newEstablishCommand(peer uuid.UUID) room.EstablishSessionCommand {
	return room.EstablishSessionCommand{
		PeerUUID:          peer,
		PeerFingerprint:   []byte("fp"),
		PeerPubShared:     []byte("peer-shared"),
		PersonalPubShared: []byte("personal-shared"),
	}
}

func Test_EstablishSession_FirstContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rooms := roommocks.NewMockRoomRepository(ctrl)
	trust := trustmocks.NewMockTrustRepository(ctrl)
	uc := NewRoomUsecase(rooms, trust, logger.Logger{})

	peer := uuid.New()
	cmd := newEstablishCommand(peer)

	trust.EXPECT().CheckFingerprint(gomock.Any(), peer, cmd.PeerFingerprint).
		Return(apperrors.ErrUnknownPeer)
	trust.EXPECT().RecordFirstContact(gomock.Any(), peer, cmd.PeerFingerprint).
		Return(nil)
	rooms.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(nil)
	rooms.EXPECT().ActivateKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key *model.RoomKey) error {
			key.Version = 1
			key.Active = true
			return nil
		})

	snapshot, err := uc.EstablishSession(context.Background(), cmd)
	require.NoError(t, err)
	assert.NotEmpty(t, snapshot.RoomID)
	assert.Equal(t, peer, snapshot.PeerUUID)
	assert.EqualValues(t, 1, snapshot.ActiveKeyVersion)
	assert.NotEmpty(t, snapshot.ActiveKeyID)
}

func Test_EstablishSession_KnownPeer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rooms := roommocks.NewMockRoomRepository(ctrl)
	trust := trustmocks.NewMockTrustRepository(ctrl)
	uc := NewRoomUsecase(rooms, trust, logger.Logger{})

	peer := uuid.New()
	cmd := newEstablishCommand(peer)
	cmd.RoomID = "room-1"

	trust.EXPECT().CheckFingerprint(gomock.Any(), peer, cmd.PeerFingerprint).Return(nil)
	rooms.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rm *model.Room) error {
			assert.Equal(t, "room-1", rm.RoomID)
			return nil
		})
	rooms.EXPECT().ActivateKey(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := uc.EstablishSession(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "room-1", snapshot.RoomID)
}

// A fingerprint mismatch must stop the flow before anything is written.
func Test_EstablishSession_FingerprintMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rooms := roommocks.NewMockRoomRepository(ctrl)
	trust := trustmocks.NewMockTrustRepository(ctrl)
	uc := NewRoomUsecase(rooms, trust, logger.Logger{})

	peer := uuid.New()
	cmd := newEstablishCommand(peer)

	trust.EXPECT().CheckFingerprint(gomock.Any(), peer, cmd.PeerFingerprint).
		Return(apperrors.ErrFingerprintMismatch)

	_, err := uc.EstablishSession(context.Background(), cmd)
	assert.ErrorIs(t, err, apperrors.ErrFingerprintMismatch)
	assert.True(t, apperrors.IsIntegrity(err))
}

func Test_EstablishSession_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRoomUsecase(roommocks.NewMockRoomRepository(ctrl), trustmocks.NewMockTrustRepository(ctrl), logger.Logger{})

	cases := map[string]room.EstablishSessionCommand{
		"missing peer uuid": {
			PeerFingerprint:   []byte("fp"),
			PeerPubShared:     []byte("p"),
			PersonalPubShared: []byte("q"),
		},
		"missing secret material": {
			PeerUUID:        uuid.New(),
			PeerFingerprint: []byte("fp"),
		},
		"missing fingerprint": {
			PeerUUID:          uuid.New(),
			PeerPubShared:     []byte("p"),
			PersonalPubShared: []byte("q"),
		},
	}
	for name, cmd := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.EstablishSession(context.Background(), cmd)
			assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
		})
	}
}

func Test_RotateKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rooms := roommocks.NewMockRoomRepository(ctrl)
	trust := trustmocks.NewMockTrustRepository(ctrl)
	uc := NewRoomUsecase(rooms, trust, logger.Logger{})

	peer := uuid.New()
	cmd := room.RotateKeyCommand{
		RoomID:              "room-1",
		ObservedFingerprint: []byte("fp"),
		PeerPubShared:       []byte("p2"),
		PersonalPubShared:   []byte("q2"),
	}

	rooms.EXPECT().GetRoom(gomock.Any(), "room-1").
		Return(&model.Room{RoomID: "room-1", PeerUUID: peer}, nil)
	trust.EXPECT().CheckFingerprint(gomock.Any(), peer, cmd.ObservedFingerprint).Return(nil)
	rooms.EXPECT().ActivateKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key *model.RoomKey) error {
			key.Version = 2
			key.Active = true
			return nil
		})

	dto, err := uc.RotateKey(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "room-1", dto.RoomID)
	assert.EqualValues(t, 2, dto.Version)
	assert.True(t, dto.Active)
}

func Test_RotateKey_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rooms := roommocks.NewMockRoomRepository(ctrl)
	trust := trustmocks.NewMockTrustRepository(ctrl)
	uc := NewRoomUsecase(rooms, trust, logger.Logger{})

	cmd := room.RotateKeyCommand{
		RoomID:            "room-1",
		PeerPubShared:     []byte("p"),
		PersonalPubShared: []byte("q"),
	}

	t.Run("room not found", func(t *testing.T) {
		rooms.EXPECT().GetRoom(gomock.Any(), "room-1").Return(nil, apperrors.ErrRoomNotFound)
		_, err := uc.RotateKey(context.Background(), cmd)
		assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	})

	t.Run("aborted passes through retryable", func(t *testing.T) {
		rooms.EXPECT().GetRoom(gomock.Any(), "room-1").
			Return(&model.Room{RoomID: "room-1", PeerUUID: uuid.New()}, nil)
		rooms.EXPECT().ActivateKey(gomock.Any(), gomock.Any()).
			Return(apperrors.Aborted("database is locked"))

		_, err := uc.RotateKey(context.Background(), cmd)
		assert.True(t, apperrors.Retryable(err))
	})
}

func Test_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rooms := roommocks.NewMockRoomRepository(ctrl)
	trust := trustmocks.NewMockTrustRepository(ctrl)
	uc := NewRoomUsecase(rooms, trust, logger.Logger{})

	peer := uuid.New()
	rooms.EXPECT().GetRoom(gomock.Any(), "room-1").
		Return(&model.Room{RoomID: "room-1", PeerUUID: peer}, nil)
	rooms.EXPECT().GetActiveKey(gomock.Any(), "room-1").
		Return(&model.RoomKey{KeyID: "key-1", RoomID: "room-1", Version: 3, Active: true}, nil)

	snapshot, err := uc.Snapshot(context.Background(), "room-1")
	require.NoError(t, err)
	assert.Equal(t, "key-1", snapshot.ActiveKeyID)
	assert.EqualValues(t, 3, snapshot.ActiveKeyVersion)

	t.Run("no key activated yet", func(t *testing.T) {
		rooms.EXPECT().GetRoom(gomock.Any(), "room-2").
			Return(&model.Room{RoomID: "room-2", PeerUUID: peer}, nil)
		rooms.EXPECT().GetActiveKey(gomock.Any(), "room-2").
			Return(nil, apperrors.ErrNoActiveKey)

		snapshot, err := uc.Snapshot(context.Background(), "room-2")
		require.NoError(t, err)
		assert.Empty(t, snapshot.ActiveKeyID)
		assert.Zero(t, snapshot.ActiveKeyVersion)
	})
}

func Test_Teardown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rooms := roommocks.NewMockRoomRepository(ctrl)
	uc := NewRoomUsecase(rooms, trustmocks.NewMockTrustRepository(ctrl), logger.Logger{})

	rooms.EXPECT().DeleteRoom(gomock.Any(), "room-1").Return(nil)
	assert.NoError(t, uc.Teardown(context.Background(), "room-1"))
}
