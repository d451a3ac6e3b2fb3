package domain

import "time"

type NewComment struct {
	Content  CommentContent `validate:"max=10000"`
	ThreadId ThreadId
	Owner    UserId
}

type AddedComment struct {
	Id      CommentId      `json:"id" db:"id"`
	Content CommentContent `json:"content" db:"content"`
	Owner   UserId         `json:"owner" db:"owner"`
}

// CommentRow is a comment as stored, including the soft-delete flag.
type CommentRow struct {
	Id        CommentId      `db:"id"`
	Username  Username       `db:"username"`
	Date      time.Time      `db:"date"`
	Content   CommentContent `db:"content"`
	IsDeleted bool           `db:"is_deleted"`
}

// ThreadComment is a comment as presented inside a thread.
type ThreadComment struct {
	Id       CommentId      `json:"id"`
	Username Username       `json:"username"`
	Date     time.Time      `json:"date"`
	Content  CommentContent `json:"content"`
}

// CommentOwnership asks whether Owner owns comment Id.
type CommentOwnership struct {
	Id    CommentId
	Owner UserId
}

// CommentLocator addresses a comment inside its thread.
type CommentLocator struct {
	Id       CommentId
	ThreadId ThreadId
}
