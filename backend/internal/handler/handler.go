package handler

import (
	"context"
	"net/http"

	"github.com/forum-api/forum-api/backend/internal/service"
	"github.com/forum-api/forum-api/shared/domain"
	internal_errors "github.com/forum-api/forum-api/shared/errors"
	mw "github.com/forum-api/forum-api/shared/middleware"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread  service.ThreadService
	comment service.CommentService
	health  HealthChecker
}

func New(thread service.ThreadService, comment service.CommentService, health HealthChecker) *Handler {
	return &Handler{thread: thread, comment: comment, health: health}
}

// currentUser returns the caller set by the auth middleware.
func currentUser(r *http.Request) (*domain.User, error) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Missing authentication", StatusCode: http.StatusUnauthorized}
	}
	return user, nil
}
