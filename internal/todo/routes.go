package todo

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1/todos").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	tags := []string{"todos"}
	idParam := ws.PathParameter("id", "Todo ID (UUID)").DataType("string")

	ws.
		Route(ws.GET("").
			To(handler.List).
			Doc("List todos, newest first").
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Param(ws.QueryParameter("completed", "Filter by completion status (true|false)").DataType("boolean").Required(false)).
			Writes(ListResponse{}).
			Returns(200, "OK", ListResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("").
			To(handler.Create).
			Doc("Create a todo").
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Reads(CreateTodoRequest{}).
			Writes(ItemResponse{}).
			Returns(201, "Created", ItemResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/{id}").
			To(handler.Get).
			Doc("Get a todo").
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Param(idParam).
			Writes(ItemResponse{}).
			Returns(200, "OK", ItemResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.PUT("/{id}").
			To(handler.Update).
			Doc("Update a todo's title and/or completion status").
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Param(idParam).
			Reads(UpdateTodoRequest{}).
			Writes(ItemResponse{}).
			Returns(200, "OK", ItemResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.DELETE("/{id}").
			To(handler.Delete).
			Doc("Delete a todo").
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Param(idParam).
			Writes(DeleteResponse{}).
			Returns(200, "OK", DeleteResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Not Found", middleware.ErrorResponse{}))

	container.Add(ws)
}
