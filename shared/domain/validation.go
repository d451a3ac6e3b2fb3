package domain

import (
	"errors"
	"fmt"
	"strings"

	internal_errors "github.com/forum-api/forum-api/shared/errors"
	"github.com/go-playground/validator/v10"
)

const (
	createThreadPrefix  = "CREATE_THREAD"
	createCommentPrefix = "CREATE_COMMENT"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewThreadFromPayload validates a thread creation payload.
// Owner is left empty, it comes from the authenticated caller.
func NewThreadFromPayload(p Payload) (NewThread, error) {
	fields, err := requireStrings(createThreadPrefix, p, "title", "body")
	if err != nil {
		return NewThread{}, err
	}

	thread := NewThread{Title: fields["title"], Body: fields["body"]}
	if err := checkLimits(createThreadPrefix, thread); err != nil {
		return NewThread{}, err
	}
	return thread, nil
}

// NewCommentFromPayload validates a comment creation payload.
// ThreadId and Owner are taken from the request path and the caller.
func NewCommentFromPayload(p Payload) (NewComment, error) {
	fields, err := requireStrings(createCommentPrefix, p, "content")
	if err != nil {
		return NewComment{}, err
	}

	comment := NewComment{Content: fields["content"]}
	if err := checkLimits(createCommentPrefix, comment); err != nil {
		return NewComment{}, err
	}
	return comment, nil
}

// requireStrings reports missing properties before type mismatches,
// so {"title": true} with no body is a missing-property error.
func requireStrings(prefix string, p Payload, keys ...string) (map[string]string, error) {
	for _, key := range keys {
		value, ok := p[key]
		if !ok || value == nil {
			return nil, missingProperty(prefix, key)
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			return nil, missingProperty(prefix, key)
		}
	}

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		s, ok := p[key].(string)
		if !ok {
			return nil, &internal_errors.ValidationError{
				Code:    prefix + "." + internal_errors.CodeTypeMismatch,
				Message: fmt.Sprintf("%s must be a string", key),
			}
		}
		out[key] = strings.TrimSpace(s)
	}
	return out, nil
}

func missingProperty(prefix, key string) error {
	return &internal_errors.ValidationError{
		Code:    prefix + "." + internal_errors.CodeMissingProperty,
		Message: fmt.Sprintf("%s is required", key),
	}
}

func checkLimits(prefix string, entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &internal_errors.ValidationError{
			Code:    prefix + "." + internal_errors.CodeLimitExceeded,
			Message: fmt.Sprintf("%s must be at most %s characters", strings.ToLower(fe.Field()), fe.Param()),
		}
	}
	return err
}
