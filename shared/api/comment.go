package api

import (
	"github.com/forum-api/forum-api/shared/domain"
)

type AddedCommentData struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}
