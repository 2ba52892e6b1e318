package utils

import "github.com/google/uuid"

// Identifiers are minted client-side so two devices can create rows
// offline without colliding.

func NewRoomID() string       { return uuid.NewString() }
func NewKeyID() string        { return uuid.NewString() }
func NewMessageID() string    { return uuid.NewString() }
func NewAttachmentID() string { return uuid.NewString() }
func NewDeviceID() string     { return uuid.NewString() }
func NewTokenID() string      { return uuid.NewString() }
