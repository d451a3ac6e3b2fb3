package api

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the envelope of every JSON answer.
// Status is "fail" for client errors and "error" for server errors.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Response {
	return Response{Status: StatusSuccess, Data: data}
}
