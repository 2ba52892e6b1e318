package room

import "context"

type RoomUsecase interface {
	// EstablishSession records trust state for the peer (first contact
	// or fingerprint check), creates the room and activates key
	// version 1. A fingerprint mismatch aborts before anything is
	// written.
	EstablishSession(ctx context.Context, cmd EstablishSessionCommand) (*RoomSnapshotDTO, error)

	// RotateKey activates a fresh key version; the previous one stays
	// fetchable for decrypting old messages.
	RotateKey(ctx context.Context, cmd RotateKeyCommand) (*KeyDTO, error)

	// Teardown deletes the room and everything that hangs off it.
	Teardown(ctx context.Context, roomID string) error

	Snapshot(ctx context.Context, roomID string) (*RoomSnapshotDTO, error)
}
