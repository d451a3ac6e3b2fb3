package domain

type (
	UserId   = string
	Username = string

	ThreadId    = string
	ThreadTitle = string
	ThreadBody  = string

	CommentId      = string
	CommentContent = string
)

// Payload is a decoded JSON object as received from a client.
type Payload = map[string]any
