package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/forum-api/forum-api/shared/domain"
	internal_errors "github.com/forum-api/forum-api/shared/errors"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	query, args, err := psql.Insert("threads").
		Columns("id", "title", "body", "owner").
		Values("thread-"+s.newId(), thread.Title, thread.Body, thread.Owner).
		Suffix("RETURNING id, title, owner").
		ToSql()
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to build thread insert: %w", err)
	}

	var added domain.AddedThread
	if err := s.db.GetContext(ctx, &added, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return domain.AddedThread{}, internal_errors.NewNotFound("user %s tidak ditemukan", thread.Owner)
		}
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyThreadAvailability(ctx context.Context, id domain.ThreadId) error {
	query, args, err := psql.Select("id").
		From("threads").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build thread lookup: %w", err)
	}

	var found domain.ThreadId
	if err := s.db.GetContext(ctx, &found, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("thread tidak ditemukan")
		}
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	return nil
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	query, args, err := psql.Select("t.id", "t.title", "t.body", "t.created_at AS date", "u.username").
		From("threads t").
		Join("users u ON u.id = t.owner").
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return domain.ThreadDetail{}, fmt.Errorf("failed to build thread query: %w", err)
	}

	var thread domain.ThreadDetail
	if err := s.db.GetContext(ctx, &thread, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadDetail{}, internal_errors.NewNotFound("thread tidak ditemukan")
		}
		return domain.ThreadDetail{}, fmt.Errorf("failed to get thread: %w", err)
	}
	return thread, nil
}
