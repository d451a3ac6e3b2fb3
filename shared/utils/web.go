package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/forum-api/forum-api/shared/api"
	"github.com/forum-api/forum-api/shared/domain"
	"github.com/forum-api/forum-api/shared/errors"
	"github.com/forum-api/forum-api/shared/logger"
	"go.uber.org/zap"
)

const maxPayloadBytes = 1 << 20

// WriteErrorAndStatusCode answers with the status matching err.
// Server errors are logged and never echoed to the client.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	status := errors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed", zap.Error(err))
		WriteJSON(w, status, api.Response{Status: api.StatusError, Message: "internal server error"})
		return
	}
	WriteJSON(w, status, api.Response{Status: api.StatusFail, Message: err.Error()})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
	w.Write([]byte("\n"))
}

// DecodePayload reads a JSON object without imposing a schema,
// so the entity validators can tell missing fields from mistyped ones.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	var payload domain.Payload
	if err := json.NewDecoder(io.LimitReader(r, maxPayloadBytes)).Decode(&payload); err != nil {
		logger.Log.Debug("invalid json body", zap.Error(err))
		return nil, &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	if payload == nil {
		return nil, &errors.ErrorWithStatusCode{Message: "Body must be a json object", StatusCode: http.StatusBadRequest}
	}
	return payload, nil
}
