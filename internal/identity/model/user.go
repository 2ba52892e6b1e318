package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a local identity. The keypair blobs are opaque to the store;
// the crypto provider generates and consumes them.
type User struct {
	ID int64 `bun:",pk,autoincrement"`

	UserUUID uuid.UUID `bun:",unique,notnull,type:uuid"`

	PublicKey  []byte `bun:",notnull"`
	PrivateKey []byte `bun:",notnull"` // never leaves the identity layer

	// Current marks the identity the client operates as. The table
	// permits many rows; the identity layer keeps exactly one current.
	Current bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
