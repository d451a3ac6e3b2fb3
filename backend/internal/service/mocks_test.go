package service

import (
	"context"
	"sync"

	"github.com/forum-api/forum-api/shared/domain"
)

// --- Mocks ---

// MockThreadRepository mocks the ThreadRepository interface.
type MockThreadRepository struct {
	addThreadFunc    func(thread domain.NewThread) (domain.AddedThread, error)
	verifyThreadFunc func(id domain.ThreadId) error
	getThreadFunc    func(id domain.ThreadId) (domain.ThreadDetail, error)

	mu    sync.Mutex
	calls *[]string
}

func (m *MockThreadRepository) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls != nil {
		*m.calls = append(*m.calls, name)
	}
}

func (m *MockThreadRepository) AddThread(_ context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	m.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadRepository) VerifyThreadAvailability(_ context.Context, id domain.ThreadId) error {
	m.record("VerifyThreadAvailability")
	if m.verifyThreadFunc != nil {
		return m.verifyThreadFunc(id)
	}
	return nil
}

func (m *MockThreadRepository) GetThreadById(_ context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	m.record("GetThreadById")
	if m.getThreadFunc != nil {
		return m.getThreadFunc(id)
	}
	return domain.ThreadDetail{Id: id}, nil
}

// MockCommentRepository mocks the CommentRepository interface.
type MockCommentRepository struct {
	addCommentFunc    func(comment domain.NewComment) (domain.AddedComment, error)
	findByThreadFunc  func(threadId domain.ThreadId) ([]domain.CommentRow, error)
	verifyOwnerFunc   func(ownership domain.CommentOwnership) (domain.UserId, error)
	deleteCommentFunc func(locator domain.CommentLocator) (domain.CommentId, error)

	mu                 sync.Mutex
	calls              *[]string
	deleteCommentCalls int
	deleteLocatorArg   domain.CommentLocator
}

func (m *MockCommentRepository) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls != nil {
		*m.calls = append(*m.calls, name)
	}
}

func (m *MockCommentRepository) AddComment(_ context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	m.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.AddedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentRepository) FindCommentByThread(_ context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	m.record("FindCommentByThread")
	if m.findByThreadFunc != nil {
		return m.findByThreadFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentRepository) VerifyOwner(_ context.Context, ownership domain.CommentOwnership) (domain.UserId, error) {
	m.record("VerifyOwner")
	if m.verifyOwnerFunc != nil {
		return m.verifyOwnerFunc(ownership)
	}
	return ownership.Owner, nil
}

func (m *MockCommentRepository) DeleteComment(_ context.Context, locator domain.CommentLocator) (domain.CommentId, error) {
	m.record("DeleteComment")
	m.mu.Lock()
	m.deleteCommentCalls++
	m.deleteLocatorArg = locator
	m.mu.Unlock()

	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(locator)
	}
	return locator.Id, nil
}

// passthroughSanitizer leaves text untouched so tests assert on exact input.
type passthroughSanitizer struct{}

func (passthroughSanitizer) Text(text string) string { return text }
