package middleware

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyChatRequest = errors.New("either message or city must be provided")
	ErrMessageTooLong   = errors.New("message must be at most 4000 characters")
	ErrInvalidTodoID    = errors.New("invalid todo ID format")
	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title cannot exceed 500 characters")
	ErrNoFieldsToUpdate = errors.New("at least one of title or completed must be provided")
	ErrTodoNotFound     = errors.New("todo not found")
)

type ErrorResponse struct {
	Success bool   `json:"success" description:"Always false"`
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code" description:"HTTP status code"`
	Message string `json:"message,omitempty" description:"Additional error details"`
}

// HandleError writes err as an ErrorResponse with the given status.
func HandleError(resp *restful.Response, err error, status int) {
	HandleErrorWithDetails(resp, err.Error(), "", status)
}

func HandleErrorWithDetails(resp *restful.Response, message string, details string, status int) {
	errorResponse := ErrorResponse{
		Success: false,
		Error:   message,
		Code:    status,
		Message: details,
	}

	if writeErr := resp.WriteHeaderAndEntity(status, errorResponse); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// StatusFor maps known errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrEmptyChatRequest),
		errors.Is(err, ErrMessageTooLong),
		errors.Is(err, ErrInvalidTodoID),
		errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrNoFieldsToUpdate):
		return http.StatusBadRequest
	case errors.Is(err, ErrTodoNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
