package errors

var (
	// Domain errors — used in usecase/repository
	ErrDuplicateRoom      = AlreadyExists("room already exists")
	ErrRoomNotFound       = NotFound("room not found")
	ErrNoActiveKey        = FailedPrecondition("room has no active key")
	ErrKeyNotFound        = NotFound("room key not found")
	ErrMessageNotFound    = NotFound("message not found")
	ErrAttachmentNotFound = NotFound("attachment not found")
	ErrDeviceNotFound     = NotFound("device not found")
	ErrPeerKnown          = AlreadyExists("peer already recorded")
	ErrUnknownPeer        = NotFound("no trust record for peer")
	ErrTokenNotFound      = NotFound("auth token not found")
	ErrIdentityExists     = AlreadyExists("local identity already created")
	ErrIdentityNotFound   = NotFound("identity not found")
	ErrNoIdentity         = FailedPrecondition("no local identity designated")

	// Security-relevant: observed fingerprint differs from the recorded
	// one. Possible impersonation — surfaced, never auto-corrected.
	ErrFingerprintMismatch = Integrity("peer fingerprint mismatch")
)

func ErrSessionEstablishFailed(cause error) error {
	return Wrap(CodeInternal, "failed to establish secure session", cause)
}

func ErrRotationFailed(cause error) error {
	return Wrap(CodeInternal, "key rotation failed", cause)
}
