package travel

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1/travel").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Travel agent health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"travel"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/chat").
			To(handler.Chat).
			Doc("Chat with Tom the travel agent").
			Metadata(restfulspec.KeyOpenAPITags, []string{"travel"}).
			Reads(ChatRequest{}).
			Writes(ChatResponse{}).
			Returns(200, "OK", ChatResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
