package service

import (
	"context"

	"github.com/forum-api/forum-api/shared/domain"
	internal_errors "github.com/forum-api/forum-api/shared/errors"
)

type CommentService interface {
	Create(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error)
	Delete(ctx context.Context, params DeleteCommentParams) error
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error)
	FindCommentByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error)
	// VerifyOwner returns the owner on success, NotFoundError for an unknown
	// comment and AuthorizationError when the owner differs.
	VerifyOwner(ctx context.Context, ownership domain.CommentOwnership) (domain.UserId, error)
	DeleteComment(ctx context.Context, locator domain.CommentLocator) (domain.CommentId, error)
}

type DeleteCommentParams struct {
	Id       domain.CommentId
	ThreadId domain.ThreadId
	Owner    domain.UserId
}

type Comment struct {
	threads   ThreadRepository
	comments  CommentRepository
	sanitizer Sanitizer
}

func NewComment(threads ThreadRepository, comments CommentRepository, sanitizer Sanitizer) CommentService {
	return &Comment{threads: threads, comments: comments, sanitizer: sanitizer}
}

func (c *Comment) Create(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	if err := c.threads.VerifyThreadAvailability(ctx, comment.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}

	comment.Content = c.sanitizer.Text(comment.Content)
	if comment.Content == "" {
		return domain.AddedComment{}, &internal_errors.ValidationError{
			Code:    "CREATE_COMMENT." + internal_errors.CodeMissingProperty,
			Message: "content must contain text",
		}
	}

	return c.comments.AddComment(ctx, comment)
}

// Delete soft-deletes a comment owned by params.Owner.
// Deleting an already deleted comment succeeds.
func (c *Comment) Delete(ctx context.Context, params DeleteCommentParams) error {
	if err := c.threads.VerifyThreadAvailability(ctx, params.ThreadId); err != nil {
		return err
	}

	if _, err := c.comments.VerifyOwner(ctx, domain.CommentOwnership{Id: params.Id, Owner: params.Owner}); err != nil {
		return err
	}

	_, err := c.comments.DeleteComment(ctx, domain.CommentLocator{Id: params.Id, ThreadId: params.ThreadId})
	return err
}
