package server

import (
	"github.com/gin-gonic/gin"

	"codecircle/pkg/utils/resp"
	"codecircle/platform/dto"
)

func (s *Server) workspaceRouter() {
	workspaceGroup := s.Group("/api/platform/workspaces")
	{
		workspaceGroup.GET("", s.handleListWorkspaces())
		workspaceGroup.POST("", s.handleCreateWorkspace())
		workspaceGroup.GET("/:id", s.handleGetWorkspace())
		workspaceGroup.DELETE("/:id", s.handleDeleteWorkspace())
		workspaceGroup.POST("/:id/connect", s.handleConnectService())
		workspaceGroup.DELETE("/:id/disconnect/:service", s.handleDisconnectService())
		workspaceGroup.POST("/:id/create-fixai-org", s.handleCreateFixAIOrg())
		workspaceGroup.GET("/:id/ai-config", s.handleGetWorkspaceAIConfig())
		workspaceGroup.PUT("/:id/ai-config", s.handleSaveWorkspaceAIConfig())
	}
}

func (s *Server) handleListWorkspaces() gin.HandlerFunc {
	return func(c *gin.Context) {
		workspaces, err := s.workspaceController.ListWorkspaces(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, workspaces)
	}
}

func (s *Server) handleCreateWorkspace() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.WorkspaceCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}

		workspaceVo, err := s.workspaceController.CreateWorkspace(c.Request.Context(), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.Created(c, workspaceVo)
	}
}

func (s *Server) handleGetWorkspace() gin.HandlerFunc {
	return func(c *gin.Context) {
		workspaceVo, err := s.workspaceController.GetWorkspace(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, workspaceVo)
	}
}

func (s *Server) handleDeleteWorkspace() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.workspaceController.DeleteWorkspace(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		resp.NoContent(c)
	}
}

func (s *Server) handleConnectService() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ConnectServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}

		workspaceVo, err := s.workspaceController.ConnectService(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, workspaceVo)
	}
}

func (s *Server) handleDisconnectService() gin.HandlerFunc {
	return func(c *gin.Context) {
		workspaceVo, err := s.workspaceController.DisconnectService(c.Request.Context(), c.Param("id"), c.Param("service"))
		if err != nil {
			writeError(c, err)
			return
		}
		resp.OK(c, workspaceVo)
	}
}

func (s *Server) handleCreateFixAIOrg() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateFixAIOrgRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}

		workspaceVo, err := s.workspaceController.CreateFixAIOrg(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.Created(c, workspaceVo)
	}
}
