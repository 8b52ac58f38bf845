package todo

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/middleware"
	"github.com/rs/zerolog"
)

type Handler struct {
	store  Store
	logger *zerolog.Logger
}

func NewHandler(store Store, logger *zerolog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// List handles GET /api/v1/todos
func (h *Handler) List(req *restful.Request, resp *restful.Response) {
	var filter ListFilter
	if raw := req.QueryParameter("completed"); raw != "" {
		completed := raw == "true"
		filter.Completed = &completed
	}

	todos, err := h.store.List(req.Request.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("Error fetching todos")
		middleware.HandleError(resp, err, middleware.StatusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, ListResponse{
		Success: true,
		Count:   len(todos),
		Data:    todos,
	})
}

// Get handles GET /api/v1/todos/{id}
func (h *Handler) Get(req *restful.Request, resp *restful.Response) {
	id, err := ParseID(req.PathParameter("id"))
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	todo, err := h.store.Get(req.Request.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("todo_id", id.String()).Msg("Error fetching todo")
		middleware.HandleError(resp, err, middleware.StatusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, ItemResponse{Success: true, Data: todo})
}

// Create handles POST /api/v1/todos
func (h *Handler) Create(req *restful.Request, resp *restful.Response) {
	var createRequest CreateTodoRequest
	if err := req.ReadEntity(&createRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := createRequest.Normalize(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	todo, err := h.store.Create(req.Request.Context(), createRequest)
	if err != nil {
		h.logger.Error().Err(err).Msg("Error creating todo")
		middleware.HandleError(resp, err, middleware.StatusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusCreated, ItemResponse{
		Success: true,
		Message: "Todo created successfully",
		Data:    todo,
	})
}

// Update handles PUT /api/v1/todos/{id}
func (h *Handler) Update(req *restful.Request, resp *restful.Response) {
	id, err := ParseID(req.PathParameter("id"))
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	var updateRequest UpdateTodoRequest
	if err := req.ReadEntity(&updateRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := updateRequest.Normalize(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	todo, err := h.store.Update(req.Request.Context(), id, updateRequest)
	if err != nil {
		h.logger.Error().Err(err).Str("todo_id", id.String()).Msg("Error updating todo")
		middleware.HandleError(resp, err, middleware.StatusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, ItemResponse{
		Success: true,
		Message: "Todo updated successfully",
		Data:    todo,
	})
}

// Delete handles DELETE /api/v1/todos/{id}
func (h *Handler) Delete(req *restful.Request, resp *restful.Response) {
	id, err := ParseID(req.PathParameter("id"))
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := h.store.Delete(req.Request.Context(), id); err != nil {
		h.logger.Error().Err(err).Str("todo_id", id.String()).Msg("Error deleting todo")
		middleware.HandleError(resp, err, middleware.StatusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, DeleteResponse{
		Success: true,
		Message: "Todo deleted successfully",
	})
}
