package service

import (
	"context"

	"github.com/forum-api/forum-api/shared/domain"
	internal_errors "github.com/forum-api/forum-api/shared/errors"
)

// DeletedCommentContent replaces the content of soft-deleted comments.
const DeletedCommentContent = "**komentar telah dihapus**"

type ThreadService interface {
	Create(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error)
	VerifyThreadAvailability(ctx context.Context, id domain.ThreadId) error
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type Sanitizer interface {
	Text(text string) string
}

type Thread struct {
	threads   ThreadRepository
	comments  CommentRepository
	sanitizer Sanitizer
}

func NewThread(threads ThreadRepository, comments CommentRepository, sanitizer Sanitizer) ThreadService {
	return &Thread{threads: threads, comments: comments, sanitizer: sanitizer}
}

// Create stores a validated thread. Owner must be set by the caller.
func (t *Thread) Create(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	thread.Title = t.sanitizer.Text(thread.Title)
	thread.Body = t.sanitizer.Text(thread.Body)
	if thread.Title == "" || thread.Body == "" {
		return domain.AddedThread{}, &internal_errors.ValidationError{
			Code:    "CREATE_THREAD." + internal_errors.CodeMissingProperty,
			Message: "title and body must contain text",
		}
	}

	return t.threads.AddThread(ctx, thread)
}

// Get returns the thread with its comments ordered oldest first.
// Deleted comments keep their slot but their content is replaced.
// Dates are returned in UTC whatever the database session zone is.
func (t *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if err := t.threads.VerifyThreadAvailability(ctx, id); err != nil {
		return domain.ThreadDetail{}, err
	}

	thread, err := t.threads.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	rows, err := t.comments.FindCommentByThread(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	thread.Date = thread.Date.UTC()
	thread.Comments = presentComments(rows)
	return thread, nil
}

func presentComments(rows []domain.CommentRow) []domain.ThreadComment {
	comments := make([]domain.ThreadComment, 0, len(rows))
	for _, row := range rows {
		content := row.Content
		if row.IsDeleted {
			content = DeletedCommentContent
		}
		comments = append(comments, domain.ThreadComment{
			Id:       row.Id,
			Username: row.Username,
			Date:     row.Date.UTC(),
			Content:  content,
		})
	}
	return comments
}
