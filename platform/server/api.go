package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"codecircle/monitor"
	"codecircle/pkg/utils/resp"
	"codecircle/platform/client"
	"codecircle/platform/service"
)

func (s *Server) registerRoutes() {
	s.GET("/health", s.handleHealth())
	s.GET("/metrics", gin.WrapH(monitor.Handler()))

	s.workspaceRouter()
	s.setupRouter()
	s.aiConfigRouter()
	s.servicesRouter()
}

// writeError maps the platform error taxonomy to HTTP. Synchronous upstream
// failures are relayed with the downstream status; transport failures become
// a bad gateway.
func writeError(c *gin.Context, err error) {
	var upstream *client.UpstreamError
	var transport *client.TransportError

	switch {
	case errors.Is(err, service.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSlugTaken), errors.Is(err, service.ErrFixAILinked):
		resp.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, service.ErrNoLinkedServices),
		errors.Is(err, service.ErrUnknownService):
		resp.BadRequest(c, err.Error())
	case errors.As(err, &upstream):
		resp.Status(c, upstream.Status, err.Error())
	case errors.As(err, &transport):
		resp.BadGateway(c, err.Error())
	default:
		resp.Error(c, err.Error())
	}
}
