package db

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"ra3d/config"
	authmodels "ra3d/internal/auth/model"
	devicemodel "ra3d/internal/device/model"
	identitymodels "ra3d/internal/identity/model"
	messagemodel "ra3d/internal/message/model"
	roommodel "ra3d/internal/room/model"
	trustmodel "ra3d/internal/trust/model"
	"ra3d/pkg/errors"
)

const (
	defaultBusyTimeoutMS = 5000

	// Bounded retry for single-statement operations hitting lock
	// contention. Multi-step transactions are retried by the caller.
	busyAttempts = 3
	busyBackoff  = 50 * time.Millisecond
)

// Connect opens the single-file store. An empty path opens a shared
// in-memory database (tests).
func Connect(cfg *config.Config) (*bun.DB, error) {
	dsn := "file::memory:?cache=shared"
	if cfg.Store.Path != "" {
		dsn = "file:" + cfg.Store.Path
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "open database", err)
	}

	// One connection keeps the session pragmas in force and serializes
	// writers through the pool, matching the single-handle model.
	sqldb.SetMaxOpenConns(1)

	busy := cfg.Store.BusyTimeoutMS
	if busy <= 0 {
		busy = defaultBusyTimeoutMS
	}

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = " + strconv.Itoa(busy),
	} {
		if _, err := sqldb.Exec(pragma); err != nil {
			sqldb.Close()
			return nil, errors.Wrap(errors.CodeInternal, "apply pragma", err)
		}
	}

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// CreateSchema creates all tables and indexes. Idempotent. The FK
// cascade clauses are a backstop; deletion cascades are also executed
// explicitly so the guarantee survives an engine without them.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*identitymodels.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "create users", err)
	}

	if _, err := db.NewCreateTable().
		Model((*roommodel.Room)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "create rooms", err)
	}

	if _, err := db.NewCreateTable().
		Model((*roommodel.RoomKey)(nil)).
		IfNotExists().
		ForeignKey(`("room_id") REFERENCES "rooms" ("room_id") ON DELETE CASCADE`).
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "create room_keys", err)
	}

	if _, err := db.NewCreateTable().
		Model((*messagemodel.Message)(nil)).
		IfNotExists().
		ForeignKey(`("room_id") REFERENCES "rooms" ("room_id") ON DELETE CASCADE`).
		ForeignKey(`("key_id") REFERENCES "room_keys" ("key_id")`).
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "create messages", err)
	}

	if _, err := db.NewCreateTable().
		Model((*messagemodel.Attachment)(nil)).
		IfNotExists().
		ForeignKey(`("message_id") REFERENCES "messages" ("message_id") ON DELETE CASCADE`).
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "create attachments", err)
	}

	if _, err := db.NewCreateTable().
		Model((*devicemodel.Device)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "create devices", err)
	}

	if _, err := db.NewCreateTable().
		Model((*trustmodel.TrustState)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "create trust_state", err)
	}

	if _, err := db.NewCreateTable().
		Model((*authmodels.AuthToken)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "create auth_tokens", err)
	}

	return createIndexes(ctx, db)
}

func createIndexes(ctx context.Context, db *bun.DB) error {
	// Duplicate-seq backstop for concurrent appends.
	if _, err := db.NewCreateIndex().
		Model((*messagemodel.Message)(nil)).
		IfNotExists().
		Unique().
		Index("idx_messages_room_seq").
		Column("room_id", "seq").
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "index messages(room_id, seq)", err)
	}

	if _, err := db.NewCreateIndex().
		Model((*messagemodel.Message)(nil)).
		IfNotExists().
		Index("idx_messages_time").
		Column("created_at").
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "index messages(created_at)", err)
	}

	if _, err := db.NewCreateIndex().
		Model((*roommodel.RoomKey)(nil)).
		IfNotExists().
		Index("idx_room_keys_active").
		Column("room_id", "active").
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "index room_keys(room_id, active)", err)
	}

	// Single-active-key backstop: at most one active row per room.
	if _, err := db.NewCreateIndex().
		Model((*roommodel.RoomKey)(nil)).
		IfNotExists().
		Unique().
		Index("idx_room_keys_one_active").
		Column("room_id").
		Where("active").
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "index room_keys single active", err)
	}

	if _, err := db.NewCreateIndex().
		Model((*authmodels.AuthToken)(nil)).
		IfNotExists().
		Index("idx_auth_tokens_user").
		Column("user_uuid", "revoked").
		Exec(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "index auth_tokens(user_uuid, revoked)", err)
	}

	return nil
}

// Translate maps engine errors to typed codes at the component boundary.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return errors.Wrap(errors.CodeAlreadyExists, "constraint violation", err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return errors.Wrap(errors.CodeFailedPrecondition, "referenced row missing", err)
	case strings.Contains(msg, "database is locked"),
		strings.Contains(msg, "database table is locked"),
		strings.Contains(msg, "SQLITE_BUSY"):
		return errors.Wrap(errors.CodeAborted, "storage engine busy", err)
	}
	return err
}

// RetryBusy runs fn, retrying a bounded number of times when the engine
// reports lock contention. Only safe for single-statement operations.
func RetryBusy(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < busyAttempts; attempt++ {
		err = Translate(fn())
		if !errors.Retryable(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(errors.CodeAborted, "canceled while retrying", ctx.Err())
		case <-time.After(busyBackoff << attempt):
		}
	}
	return err
}
