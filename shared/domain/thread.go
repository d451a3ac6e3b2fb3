package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type NewThread struct {
	Title ThreadTitle `validate:"max=255"`
	Body  ThreadBody  `validate:"max=10000"`
	Owner UserId
}

type AddedThread struct {
	Id    ThreadId    `json:"id" db:"id"`
	Title ThreadTitle `json:"title" db:"title"`
	Owner UserId      `json:"owner" db:"owner"`
}

// ThreadDetail is the read model of a single thread.
// Comments is filled by the service, storage leaves it empty.
type ThreadDetail struct {
	Id       ThreadId        `json:"id" db:"id"`
	Title    ThreadTitle     `json:"title" db:"title"`
	Body     ThreadBody      `json:"body" db:"body"`
	Date     time.Time       `json:"date" db:"date"`
	Username Username        `json:"username" db:"username"`
	Comments []ThreadComment `json:"comments" db:"-"`
}
