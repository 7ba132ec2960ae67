package controller

import (
	"context"

	"codecircle/platform/dto"
	"codecircle/platform/service"
	"codecircle/platform/vo"
)

type WorkspaceController interface {
	CreateWorkspace(ctx context.Context, req *dto.WorkspaceCreate) (*vo.WorkspaceVo, error)
	ListWorkspaces(ctx context.Context) ([]*vo.WorkspaceVo, error)
	GetWorkspace(ctx context.Context, id string) (*vo.WorkspaceVo, error)
	DeleteWorkspace(ctx context.Context, id string) error
	ConnectService(ctx context.Context, id string, req *dto.ConnectServiceRequest) (*vo.WorkspaceVo, error)
	DisconnectService(ctx context.Context, id, svc string) (*vo.WorkspaceVo, error)
	CreateFixAIOrg(ctx context.Context, id string, req *dto.CreateFixAIOrgRequest) (*vo.WorkspaceVo, error)
}

type workspaceController struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceController(workspaceService service.WorkspaceService) WorkspaceController {
	return &workspaceController{workspaceService: workspaceService}
}

func (c *workspaceController) CreateWorkspace(ctx context.Context, req *dto.WorkspaceCreate) (*vo.WorkspaceVo, error) {
	return c.workspaceService.Create(ctx, req)
}

func (c *workspaceController) ListWorkspaces(ctx context.Context) ([]*vo.WorkspaceVo, error) {
	return c.workspaceService.List(ctx)
}

func (c *workspaceController) GetWorkspace(ctx context.Context, id string) (*vo.WorkspaceVo, error) {
	return c.workspaceService.Get(ctx, id)
}

func (c *workspaceController) DeleteWorkspace(ctx context.Context, id string) error {
	return c.workspaceService.Delete(ctx, id)
}

func (c *workspaceController) ConnectService(ctx context.Context, id string, req *dto.ConnectServiceRequest) (*vo.WorkspaceVo, error) {
	return c.workspaceService.Connect(ctx, id, req)
}

func (c *workspaceController) DisconnectService(ctx context.Context, id, svc string) (*vo.WorkspaceVo, error) {
	return c.workspaceService.Disconnect(ctx, id, svc)
}

func (c *workspaceController) CreateFixAIOrg(ctx context.Context, id string, req *dto.CreateFixAIOrgRequest) (*vo.WorkspaceVo, error) {
	return c.workspaceService.CreateFixAIOrg(ctx, id, req)
}
