package server

import (
	"github.com/gin-gonic/gin"

	"codecircle/pkg/utils/resp"
)

// handleHealth aggregates downstream health. The endpoint itself always
// answers 200; degradation is reported in the body.
func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp.OK(c, s.healthService.Check(c.Request.Context()))
	}
}
