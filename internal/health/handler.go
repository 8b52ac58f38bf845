package health

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
)

const Version = "1.0.0"

type Response struct {
	Status  string `json:"status" description:"ok when the API is serving"`
	Version string `json:"version" description:"API version"`
}

func Check(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, Response{
		Status:  "ok",
		Version: Version,
	})
}

func RegisterRoutes(container *restful.Container) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1/health").
		Produces(restful.MIME_JSON)

	ws.Route(ws.GET("").
		To(Check).
		Doc("Service health check").
		Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
		Writes(Response{}).
		Returns(200, "OK", Response{}))

	container.Add(ws)
}
