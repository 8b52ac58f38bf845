package todo

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/middleware"
)

const MaxTitleLength = 500

var ErrNotFound = middleware.ErrTodoNotFound

type Todo struct {
	ID        uuid.UUID `json:"id" description:"Todo ID"`
	Title     string    `json:"title" description:"Task title"`
	Completed bool      `json:"completed" description:"Completion status"`
	CreatedAt time.Time `json:"createdAt" description:"Creation time"`
	UpdatedAt time.Time `json:"updatedAt" description:"Last update time"`
}

type ListFilter struct {
	Completed *bool
}

type CreateTodoRequest struct {
	Title     string `json:"title" description:"Task title (required)"`
	Completed *bool  `json:"completed,omitempty" description:"Completion status (default: false)"`
}

type UpdateTodoRequest struct {
	Title     *string `json:"title,omitempty" description:"New task title"`
	Completed *bool   `json:"completed,omitempty" description:"New completion status"`
}

type ListResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Data    []Todo `json:"data"`
}

type ItemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Todo   `json:"data"`
}

type DeleteResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    struct{} `json:"data"`
}

// Normalize trims the title and validates the request.
func (r *CreateTodoRequest) Normalize() error {
	r.Title = strings.TrimSpace(r.Title)
	return validateTitle(r.Title)
}

// Normalize trims the title, if any, and validates the request. At least one
// field must be set.
func (r *UpdateTodoRequest) Normalize() error {
	if r.Title == nil && r.Completed == nil {
		return middleware.ErrNoFieldsToUpdate
	}

	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if err := validateTitle(title); err != nil {
			return err
		}
		r.Title = &title
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return middleware.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return middleware.ErrTitleTooLong
	}
	return nil
}

// ParseID parses a todo ID from a path parameter.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, middleware.ErrInvalidTodoID
	}
	return id, nil
}
