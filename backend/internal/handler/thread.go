package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forum-api/forum-api/shared/api"
	"github.com/forum-api/forum-api/shared/domain"
	"github.com/forum-api/forum-api/shared/middleware/metrics"
	"github.com/forum-api/forum-api/shared/utils"
)

func (h *Handler) AddThread(w http.ResponseWriter, r *http.Request) {
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

	newThread, err := domain.NewThreadFromPayload(payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	newThread.Owner = user.Id

	added, err := h.thread.Create(r.Context(), newThread)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.RecordThreadCreated()
	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedThreadData{AddedThread: added}))
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, err := h.thread.Get(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(api.ThreadData{Thread: thread}))
}
