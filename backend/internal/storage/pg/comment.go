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

func (s *Storage) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	query, args, err := psql.Insert("comments").
		Columns("id", "content", "owner", "thread_id").
		Values("comment-"+s.newId(), comment.Content, comment.Owner, comment.ThreadId).
		Suffix("RETURNING id, content, owner").
		ToSql()
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to build comment insert: %w", err)
	}

	var added domain.AddedComment
	if err := s.db.GetContext(ctx, &added, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return domain.AddedComment{}, internal_errors.NewNotFound("thread atau user tidak ditemukan")
		}
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

// FindCommentByThread returns every comment of the thread, deleted ones
// included, oldest first.
func (s *Storage) FindCommentByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	query, args, err := psql.Select("c.id", "u.username", "c.created_at AS date", "c.content", "c.is_deleted").
		From("comments c").
		Join("users u ON u.id = c.owner").
		Where(squirrel.Eq{"c.thread_id": threadId}).
		OrderBy("c.created_at ASC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build comments query: %w", err)
	}

	rows := []domain.CommentRow{}
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return rows, nil
}

func (s *Storage) VerifyOwner(ctx context.Context, ownership domain.CommentOwnership) (domain.UserId, error) {
	query, args, err := psql.Select("owner").
		From("comments").
		Where(squirrel.Eq{"id": ownership.Id}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build owner query: %w", err)
	}

	var owner domain.UserId
	if err := s.db.GetContext(ctx, &owner, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.NewNotFound("comment tidak ditemukan")
		}
		return "", fmt.Errorf("failed to verify comment owner: %w", err)
	}
	if owner != ownership.Owner {
		return "", internal_errors.NewAuthorization("anda tidak berhak mengakses resource ini")
	}
	return owner, nil
}

// DeleteComment flags the comment as deleted. The row is kept so the
// thread still shows its position.
func (s *Storage) DeleteComment(ctx context.Context, locator domain.CommentLocator) (domain.CommentId, error) {
	query, args, err := psql.Update("comments").
		Set("is_deleted", true).
		Where(squirrel.Eq{"id": locator.Id, "thread_id": locator.ThreadId}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build comment delete: %w", err)
	}

	var id domain.CommentId
	if err := s.db.GetContext(ctx, &id, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.NewNotFound("comment tidak ditemukan")
		}
		return "", fmt.Errorf("failed to delete comment: %w", err)
	}
	return id, nil
}
