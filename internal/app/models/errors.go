package models

import "errors"

// Domain specific errors. Handlers map these to status codes and user notices.
var (
	ErrNotFound      = errors.New("requested item not found")
	ErrValidation    = errors.New("validation failed")
	ErrUpstream      = errors.New("generative AI request failed")
	ErrEmptyResponse = errors.New("generative AI returned no text")
	ErrStorage       = errors.New("trip storage failure")
)

// ErrorKind classifies err for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, ErrStorage):
		return "storage"
	default:
		return "internal"
	}
}
