package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	id         UUID PRIMARY KEY,
	title      VARCHAR(500) NOT NULL,
	completed  BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS todos_created_at_idx ON todos (created_at DESC);`

const todoColumns = `id, title, completed, created_at, updated_at`

// DBTX is the subset of pgxpool.Pool the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStore struct {
	db     DBTX
	logger *zerolog.Logger
}

func NewPostgresStore(db DBTX, logger *zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the todos table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create todos schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, filter ListFilter) ([]Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos
	WHERE ($1::boolean IS NULL OR completed = $1)
	ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, filter.Completed)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read todos: %w", err)
	}

	return todos, nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`

	todo, err := scanTodo(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return Todo{}, fmt.Errorf("failed to get todo %s: %w", id, err)
	}
	return todo, nil
}

func (s *PostgresStore) Create(ctx context.Context, req CreateTodoRequest) (Todo, error) {
	completed := req.Completed != nil && *req.Completed

	query := `INSERT INTO todos (id, title, completed)
	VALUES ($1, $2, $3)
	RETURNING ` + todoColumns

	todo, err := scanTodo(s.db.QueryRow(ctx, query, uuid.New(), req.Title, completed))
	if err != nil {
		return Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Info().Str("todo_id", todo.ID.String()).Msg("Todo created")
	return todo, nil
}

func (s *PostgresStore) Update(ctx context.Context, id uuid.UUID, req UpdateTodoRequest) (Todo, error) {
	query := `UPDATE todos
	SET title = COALESCE($2, title),
	    completed = COALESCE($3, completed),
	    updated_at = now()
	WHERE id = $1
	RETURNING ` + todoColumns

	todo, err := scanTodo(s.db.QueryRow(ctx, query, id, req.Title, req.Completed))
	if err != nil {
		return Todo{}, fmt.Errorf("failed to update todo %s: %w", id, err)
	}

	s.logger.Info().Str("todo_id", id.String()).Msg("Todo updated")
	return todo, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		s.logger.Warn().Str("todo_id", id.String()).Msg("Todo not found")
		return ErrNotFound
	}

	s.logger.Info().Str("todo_id", id.String()).Msg("Todo deleted")
	return nil
}

func scanTodo(row pgx.Row) (Todo, error) {
	var todo Todo
	err := row.Scan(&todo.ID, &todo.Title, &todo.Completed, &todo.CreatedAt, &todo.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Todo{}, ErrNotFound
	}
	if err != nil {
		return Todo{}, fmt.Errorf("failed to scan todo: %w", err)
	}
	return todo, nil
}
