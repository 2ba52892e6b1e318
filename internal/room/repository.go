package room

import (
	"context"

	model "ra3d/internal/room/model"
)

type RoomRepository interface {
	// CreateRoom inserts an immutable room record. The caller mints a
	// collision-resistant RoomID.
	CreateRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, roomID string) (*model.Room, error)
	// DeleteRoom removes the room and, in the same transaction, every
	// key, message and attachment that belongs to it.
	DeleteRoom(ctx context.Context, roomID string) error

	// ActivateKey assigns version = max+1, deactivates the previously
	// active key and inserts the new one atomically.
	ActivateKey(ctx context.Context, key *model.RoomKey) error
	GetActiveKey(ctx context.Context, roomID string) (*model.RoomKey, error)
	// GetKeyByID fetches a historical key for decrypting old messages.
	GetKeyByID(ctx context.Context, roomID, keyID string) (*model.RoomKey, error)
	ListKeys(ctx context.Context, roomID string) ([]model.RoomKey, error)
}
