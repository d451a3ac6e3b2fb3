package pg

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/forum-api/forum-api/backend/internal/service"
	"github.com/forum-api/forum-api/shared/config"
	"github.com/forum-api/forum-api/shared/logger"
	sharedpg "github.com/forum-api/forum-api/shared/storage/pg"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	_ service.ThreadRepository  = (*Storage)(nil)
	_ service.CommentRepository = (*Storage)(nil)
)

// foreignKeyViolation is the postgres SQLSTATE for a missing referenced row.
const foreignKeyViolation = "23503"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// IdGenerator returns the random part of a new entity id.
type IdGenerator func() string

type Storage struct {
	db    *sqlx.DB
	newId IdGenerator
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db")
	connCfg := sharedpg.DefaultConnectionConfig().WithOverrides(cfg.Public.PgPool)
	db, err := sharedpg.Connect(ctx, cfg.Private.Pg, connCfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return NewWithDB(db, uuid.NewString), nil
}

// NewWithDB wraps an existing handle. Tests pass a fixed id generator.
func NewWithDB(db *sqlx.DB, newId IdGenerator) *Storage {
	return &Storage{db: db, newId: newId}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
