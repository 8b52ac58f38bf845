package todo

import (
	"context"

	"github.com/google/uuid"
)

// Store persists todos.
type Store interface {
	List(ctx context.Context, filter ListFilter) ([]Todo, error)
	Get(ctx context.Context, id uuid.UUID) (Todo, error)
	Create(ctx context.Context, req CreateTodoRequest) (Todo, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTodoRequest) (Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
