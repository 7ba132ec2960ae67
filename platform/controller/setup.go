package controller

import (
	"context"

	"codecircle/platform/dto"
	"codecircle/platform/service"
	"codecircle/platform/vo"
)

type SetupController interface {
	SaveAIStep(ctx context.Context, id string, req *dto.AIStep) (*vo.WorkspaceVo, error)
	SaveMetricsStep(ctx context.Context, id string, req *dto.MetricsStep) (*vo.WorkspaceVo, error)
	SaveLogsStep(ctx context.Context, id string, req *dto.LogsStep) (*vo.WorkspaceVo, error)
	SaveCodeStep(ctx context.Context, id string, req *dto.CodeStep) (*vo.WorkspaceVo, error)
	Provision(ctx context.Context, id string) (*vo.WorkspaceVo, error)
	Complete(ctx context.Context, req *dto.SetupCompleteRequest) (*vo.WorkspaceVo, error)
}

type setupController struct {
	setupService service.SetupService
}

func NewSetupController(setupService service.SetupService) SetupController {
	return &setupController{setupService: setupService}
}

func (c *setupController) SaveAIStep(ctx context.Context, id string, req *dto.AIStep) (*vo.WorkspaceVo, error) {
	return c.setupService.SaveAIStep(ctx, id, req)
}

func (c *setupController) SaveMetricsStep(ctx context.Context, id string, req *dto.MetricsStep) (*vo.WorkspaceVo, error) {
	return c.setupService.SaveMetricsStep(ctx, id, req)
}

func (c *setupController) SaveLogsStep(ctx context.Context, id string, req *dto.LogsStep) (*vo.WorkspaceVo, error) {
	return c.setupService.SaveLogsStep(ctx, id, req)
}

func (c *setupController) SaveCodeStep(ctx context.Context, id string, req *dto.CodeStep) (*vo.WorkspaceVo, error) {
	return c.setupService.SaveCodeStep(ctx, id, req)
}

func (c *setupController) Provision(ctx context.Context, id string) (*vo.WorkspaceVo, error) {
	return c.setupService.Provision(ctx, id)
}

func (c *setupController) Complete(ctx context.Context, req *dto.SetupCompleteRequest) (*vo.WorkspaceVo, error) {
	return c.setupService.Complete(ctx, req)
}
