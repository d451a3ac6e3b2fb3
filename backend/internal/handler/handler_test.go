package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/forum-api/forum-api/backend/internal/service"
	"github.com/forum-api/forum-api/shared/domain"
	mw "github.com/forum-api/forum-api/shared/middleware"
)

// --- Mocks ---

type MockThreadService struct {
	MockCreate func(thread domain.NewThread) (domain.AddedThread, error)
	MockGet    func(id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(_ context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(thread)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadService) Get(_ context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.ThreadDetail{Id: id, Comments: []domain.ThreadComment{}}, nil
}

type MockCommentService struct {
	MockCreate func(comment domain.NewComment) (domain.AddedComment, error)
	MockDelete func(params service.DeleteCommentParams) error

	createCalled bool
}

func (m *MockCommentService) Create(_ context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	m.createCalled = true
	if m.MockCreate != nil {
		return m.MockCreate(comment)
	}
	return domain.AddedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentService) Delete(_ context.Context, params service.DeleteCommentParams) error {
	if m.MockDelete != nil {
		return m.MockDelete(params)
	}
	return nil
}

// --- Helpers ---

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}

// newTestRouter mounts the handlers like the real router, with a fake auth
// middleware that injects user when it is not nil.
func newTestRouter(h *Handler, user *domain.User) http.Handler {
	r := chi.NewRouter()
	r.Get("/threads/{threadId}", h.GetThread)
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if user != nil {
					req = req.WithContext(mw.WithUser(req.Context(), user))
				}
				next.ServeHTTP(w, req)
			})
		})
		r.Post("/threads", h.AddThread)
		r.Post("/threads/{threadId}/comments", h.AddComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	})
	return r
}

func serve(t *testing.T, router http.Handler, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}
