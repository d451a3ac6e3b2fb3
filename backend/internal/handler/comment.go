package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forum-api/forum-api/backend/internal/service"
	"github.com/forum-api/forum-api/shared/api"
	"github.com/forum-api/forum-api/shared/domain"
	"github.com/forum-api/forum-api/shared/middleware/metrics"
	"github.com/forum-api/forum-api/shared/utils"
)

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	newComment, err := domain.NewCommentFromPayload(payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	newComment.ThreadId = chi.URLParam(r, "threadId")
	newComment.Owner = user.Id

	added, err := h.comment.Create(r.Context(), newComment)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.RecordCommentCreated()
	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedCommentData{AddedComment: added}))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err = h.comment.Delete(r.Context(), service.DeleteCommentParams{
		Id:       chi.URLParam(r, "commentId"),
		ThreadId: chi.URLParam(r, "threadId"),
		Owner:    user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.RecordCommentDeleted()
	utils.WriteJSON(w, http.StatusOK, api.Response{Status: api.StatusSuccess})
}
