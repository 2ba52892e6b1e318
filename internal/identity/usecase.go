package identity

import "context"

type IdentityUsecase interface {
	// EnsureIdentity creates the local identity at first run and
	// designates it current. If a current identity already exists it is
	// returned unchanged; the keypair in the command is ignored then.
	EnsureIdentity(ctx context.Context, cmd CreateIdentityCommand) (*IdentityDTO, error)

	CurrentIdentity(ctx context.Context) (*IdentityDTO, error)
}
