package server

import (
	"github.com/gin-gonic/gin"

	"codecircle/pkg/utils/resp"
	"codecircle/platform/dto"
)

func (s *Server) setupRouter() {
	setupGroup := s.Group("/api/platform/setup")
	{
		setupGroup.PATCH("/:id/ai", s.handleSaveAIStep())
		setupGroup.PATCH("/:id/metrics", s.handleSaveMetricsStep())
		setupGroup.PATCH("/:id/logs", s.handleSaveLogsStep())
		setupGroup.PATCH("/:id/code", s.handleSaveCodeStep())
		setupGroup.POST("/:id/provision", s.handleProvision())
		setupGroup.POST("/complete", s.handleSetupComplete())
	}
}

func (s *Server) handleSaveAIStep() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AIStep
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}

		workspaceVo, err := s.setupController.SaveAIStep(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, workspaceVo)
	}
}

func (s *Server) handleSaveMetricsStep() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.MetricsStep
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}

		workspaceVo, err := s.setupController.SaveMetricsStep(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, workspaceVo)
	}
}

func (s *Server) handleSaveLogsStep() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LogsStep
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}

		workspaceVo, err := s.setupController.SaveLogsStep(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, workspaceVo)
	}
}

func (s *Server) handleSaveCodeStep() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CodeStep
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}

		workspaceVo, err := s.setupController.SaveCodeStep(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, workspaceVo)
	}
}

// handleProvision replies 200 even when provisioning ends in error status:
// per-service failures live on the workspace, not in the HTTP status.
func (s *Server) handleProvision() gin.HandlerFunc {
	return func(c *gin.Context) {
		workspaceVo, err := s.setupController.Provision(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, workspaceVo)
	}
}

func (s *Server) handleSetupComplete() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SetupCompleteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}

		workspaceVo, err := s.setupController.Complete(c.Request.Context(), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.Created(c, workspaceVo)
	}
}
