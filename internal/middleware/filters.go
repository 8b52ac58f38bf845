package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

// Logger logs every request once the chain has run.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()

	chain.ProcessFilter(req, resp)

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("HTTP request")
}

// RecoverPanic turns a panicking handler into a 500 response.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("path", req.Request.URL.Path).
				Str("stack", string(debug.Stack())).
				Msgf("Recovered from panic: %v", r)

			HandleErrorWithDetails(resp, "Internal server error", fmt.Sprint(r), http.StatusInternalServerError)
		}
	}()

	chain.ProcessFilter(req, resp)
}
