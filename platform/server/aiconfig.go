package server

import (
	"github.com/gin-gonic/gin"

	"codecircle/pkg/utils/resp"
	"codecircle/platform/dto"
)

func (s *Server) aiConfigRouter() {
	aiGroup := s.Group("/api/platform/ai-config")
	{
		aiGroup.GET("", s.handleGetAIConfig(false))
		aiGroup.PUT("", s.handleSaveAIConfig(false))
		aiGroup.GET("/raw", s.handleRawAIConfig())
	}
}

// scoped handlers are registered under the workspace router.
func (s *Server) handleGetWorkspaceAIConfig() gin.HandlerFunc {
	return s.handleGetAIConfig(true)
}

func (s *Server) handleSaveWorkspaceAIConfig() gin.HandlerFunc {
	return s.handleSaveAIConfig(true)
}

func scopeID(c *gin.Context, scoped bool) *string {
	if !scoped {
		return nil
	}
	id := c.Param("id")
	return &id
}

func (s *Server) handleGetAIConfig(scoped bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := s.aiConfigController.GetAIConfig(c.Request.Context(), scopeID(c, scoped))
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, cfg)
	}
}

func (s *Server) handleSaveAIConfig(scoped bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AIConfigUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}

		cfg, err := s.aiConfigController.SaveAIConfig(c.Request.Context(), scopeID(c, scoped), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, cfg)
	}
}

// handleRawAIConfig returns the credential itself. It exists for sibling
// services bootstrapping on an internal network and must never be exposed
// publicly.
func (s *Server) handleRawAIConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := s.aiConfigController.RawAIConfig(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, cfg)
	}
}
