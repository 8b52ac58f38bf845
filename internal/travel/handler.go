package travel

import (
	"errors"
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/agent"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/middleware"
	"github.com/rs/zerolog"
)

const agentFailureMessage = "Failed to get response from travel agent"

type Handler struct {
	service *Service
	logger  *zerolog.Logger
}

func NewHandler(service *Service, logger *zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Chat handles POST /api/v1/travel/chat
func (h *Handler) Chat(req *restful.Request, resp *restful.Response) {
	var chatRequest ChatRequest
	if err := req.ReadEntity(&chatRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Chat(req.Request.Context(), chatRequest)
	if err != nil {
		if errors.Is(err, middleware.ErrEmptyChatRequest) || errors.Is(err, middleware.ErrMessageTooLong) {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}

		h.logger.Error().Err(err).Msg("Error in travel chat endpoint")
		middleware.HandleErrorWithDetails(resp, agentFailureMessage, err.Error(), http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Str("city", result.City).
		Str("state", result.State).
		Msg("Chat answered")

	resp.WriteHeaderAndEntity(http.StatusOK, ChatResponse{
		Success:   true,
		Response:  result.Response,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Health handles GET /api/v1/travel/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Success: true,
		Message: "Travel agent service is running",
		Agent:   agent.AgentName,
	})
}
