package api

import (
	"github.com/forum-api/forum-api/shared/domain"
)

// Response DTOs

type AddedThreadData struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

// ThreadData wraps a full thread with its comments
type ThreadData struct {
	Thread domain.ThreadDetail `json:"thread"`
}
