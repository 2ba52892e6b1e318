package room

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from the caller into the usecase,
// DTOs travel back out.

// Input commands
type EstablishSessionCommand struct {
	// RoomID may be empty; one is minted then.
	RoomID string

	PeerUUID        uuid.UUID
	PeerFingerprint []byte // checked against the trust store

	// Shared-secret halves from the key-exchange collaborator.
	PeerPubShared     []byte
	PersonalPubShared []byte
}

type RotateKeyCommand struct {
	RoomID string

	// ObservedFingerprint, when set, is re-checked before rotating.
	ObservedFingerprint []byte

	PeerPubShared     []byte
	PersonalPubShared []byte
}

// Output DTOs
type RoomSnapshotDTO struct {
	RoomID    string
	PeerUUID  uuid.UUID
	CreatedAt time.Time

	ActiveKeyID      string
	ActiveKeyVersion int64
}

type KeyDTO struct {
	KeyID   string
	RoomID  string
	Version int64
	Active  bool
}
